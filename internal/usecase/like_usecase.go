package usecase

import (
	"errors"
	"fmt"

	"markblog/internal/entity"
	"markblog/internal/repo/persistent"
	"markblog/pkg/logger"

	"gorm.io/gorm"
)

type LikeUseCase interface {
	GetLikeStatus(actorID, postID string) (bool, error)
	ToggleLike(actorID, postID string) (bool, error)
}

type likeUseCase struct {
	likeRepo persistent.LikeRepository
	logger   *logger.Logger
}

func NewLikeUseCase(likeRepo persistent.LikeRepository, logger *logger.Logger) LikeUseCase {
	return &likeUseCase{
		likeRepo: likeRepo,
		logger:   logger,
	}
}

// GetLikeStatus reports false for anonymous callers without error.
func (uc *likeUseCase) GetLikeStatus(actorID, postID string) (bool, error) {
	if actorID == "" {
		return false, nil
	}

	liked, err := uc.likeRepo.IsLiked(actorID, postID)
	if err != nil {
		uc.logger.Error("Failed to get like status for post %s: %v", postID, err)
		return false, fmt.Errorf("failed to get like status: %w", err)
	}
	return liked, nil
}

// ToggleLike strictly flips the persisted state. When a concurrent toggle by
// the same user wins the insert, the unique index rejects ours; retrying
// observes the winner's row and flips it instead.
func (uc *likeUseCase) ToggleLike(actorID, postID string) (bool, error) {
	if actorID == "" {
		return false, entity.ErrUnauthenticated
	}

	for attempt := 0; attempt < 2; attempt++ {
		liked, err := uc.likeRepo.Toggle(actorID, postID)
		if err == nil {
			return liked, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			continue
		}
		uc.logger.Error("Failed to toggle like on post %s: %v", postID, err)
		return false, fmt.Errorf("failed to toggle like: %w", err)
	}

	return false, fmt.Errorf("failed to toggle like: conflicting concurrent toggles")
}
