package persistent

import (
	"markblog/internal/entity"
	"markblog/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *entity.Comment) error
	ListByPost(postID string) ([]*entity.Comment, error)
	CountByPost(postID string) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if commentModel.ID == "" {
		commentModel.ID = uuid.New().String()
	}

	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}

	if err := r.db.Preload("Author").First(commentModel, "id = ?", commentModel.ID).Error; err != nil {
		return err
	}

	*comment = *ToCommentEntity(commentModel)
	return nil
}

// ListByPost is existence-agnostic: an unknown post yields an empty slice,
// not an error.
func (r *commentRepository) ListByPost(postID string) ([]*entity.Comment, error) {
	var commentModels []model.CommentModel
	query := r.db.Preload("Author").Where("post_id = ?", postID).Order("created_at DESC")
	if err := query.Find(&commentModels).Error; err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}

func (r *commentRepository) CountByPost(postID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.CommentModel{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
