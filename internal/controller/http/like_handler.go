package http

import (
	"net/http"

	"markblog/internal/usecase"
	"markblog/pkg/logger"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeUseCase usecase.LikeUseCase
	logger      *logger.Logger
}

func NewLikeHandler(likeUseCase usecase.LikeUseCase, logger *logger.Logger) *LikeHandler {
	return &LikeHandler{
		likeUseCase: likeUseCase,
		logger:      logger,
	}
}

// GetLikeStatus godoc
// @Summary      Get like status
// @Description  Whether the current user likes the post. Anonymous callers always get liked=false.
// @Tags         likes
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id}/like-status [get]
func (h *LikeHandler) GetLikeStatus(c *gin.Context) {
	postID := c.Param("id")
	actorID := c.GetString("user_id")

	liked, err := h.likeUseCase.GetLikeStatus(actorID, postID)
	if err != nil {
		respondError(c, err, "Failed to get like status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// ToggleLike godoc
// @Summary      Toggle like
// @Description  Flip the like state for the current user on this post and return the new state.
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id}/like [post]
func (h *LikeHandler) ToggleLike(c *gin.Context) {
	postID := c.Param("id")
	actorID := c.GetString("user_id")

	liked, err := h.likeUseCase.ToggleLike(actorID, postID)
	if err != nil {
		respondError(c, err, "Failed to toggle like")
		return
	}

	message := "Post liked"
	if !liked {
		message = "Post unliked"
	}

	c.JSON(http.StatusOK, gin.H{"message": message, "liked": liked})
}
