package http

import (
	"net/http"

	"markblog/internal/usecase"
	"markblog/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         logger,
	}
}

type CommentRequest struct {
	Content string `json:"content"`
}

// ListComments godoc
// @Summary      List comments
// @Description  Get all comments for a post, newest first, with author fields. An unknown post yields an empty list.
// @Tags         comments
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	postID := c.Param("id")

	comments, err := h.commentUseCase.ListComments(postID)
	if err != nil {
		respondError(c, err, "Failed to fetch comments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments, "count": len(comments)})
}

// CreateComment godoc
// @Summary      Create a comment
// @Description  Add a comment to a post. Content must be non-empty.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body CommentRequest true "Comment fields"
// @Success      201  {object}  entity.Comment
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	postID := c.Param("id")
	actorID := c.GetString("user_id")

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentUseCase.CreateComment(actorID, postID, req.Content)
	if err != nil {
		respondError(c, err, "Failed to create comment")
		return
	}

	c.JSON(http.StatusCreated, comment)
}
