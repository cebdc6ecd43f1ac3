package persistent

import (
	"markblog/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LikeRepository interface {
	Toggle(userID, postID string) (bool, error)
	IsLiked(userID, postID string) (bool, error)
	CountByPost(postID string) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Toggle flips the like state for (postID, userID) as a single transactional
// conditional write: delete-if-present, otherwise insert. The unique index on
// (post_id, user_id) backstops a concurrent insert; the caller may retry on
// gorm.ErrDuplicatedKey.
func (r *likeRepository) Toggle(userID, postID string) (bool, error) {
	liked := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&model.LikeModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			liked = false
			return nil
		}

		likeModel := &model.LikeModel{
			ID:     uuid.New().String(),
			PostID: postID,
			UserID: userID,
		}
		if err := tx.Create(likeModel).Error; err != nil {
			return err
		}
		liked = true
		return nil
	})
	return liked, err
}

func (r *likeRepository) IsLiked(userID, postID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error
	return count > 0, err
}

func (r *likeRepository) CountByPost(postID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
