package usecase

import (
	"fmt"
	"strings"

	"markblog/internal/entity"
	"markblog/internal/repo/persistent"
	"markblog/pkg/logger"
)

type CommentUseCase interface {
	ListComments(postID string) ([]*entity.Comment, error)
	CreateComment(actorID, postID, content string) (*entity.Comment, error)
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	logger      *logger.Logger
}

func NewCommentUseCase(commentRepo persistent.CommentRepository, logger *logger.Logger) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// ListComments is deliberately existence-agnostic: an unknown post yields an
// empty list. Callers needing existence assurance should fetch the post first.
func (uc *commentUseCase) ListComments(postID string) ([]*entity.Comment, error) {
	comments, err := uc.commentRepo.ListByPost(postID)
	if err != nil {
		uc.logger.Error("Failed to list comments for post %s: %v", postID, err)
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

func (uc *commentUseCase) CreateComment(actorID, postID, content string) (*entity.Comment, error) {
	if actorID == "" {
		return nil, entity.ErrUnauthenticated
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content must not be empty", entity.ErrInvalidInput)
	}

	comment := &entity.Comment{
		Content:  content,
		PostID:   postID,
		AuthorID: actorID,
	}

	if err := uc.commentRepo.Create(comment); err != nil {
		uc.logger.Error("Failed to create comment on post %s: %v", postID, err)
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}
