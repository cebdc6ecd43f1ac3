package usecase

import (
	"errors"
	"fmt"
	"strings"

	"markblog/internal/entity"
	"markblog/internal/repo/persistent"
	"markblog/pkg/logger"

	"gorm.io/gorm"
)

// PostView is a post joined with its read-time aggregates.
type PostView struct {
	*entity.Post
	Counts entity.PostCounts `json:"counts"`
}

type PostUseCase interface {
	ListPosts() ([]*PostView, error)
	ListPostsByAuthor(actorID string) ([]*PostView, error)
	GetPost(id string) (*PostView, error)
	CreatePost(actorID, title, content string) (*entity.Post, error)
	UpdatePost(actorID, id, title, content string) (*PostView, error)
	DeletePost(actorID, id string) error
}

type postUseCase struct {
	postRepo    persistent.PostRepository
	commentRepo persistent.CommentRepository
	likeRepo    persistent.LikeRepository
	logger      *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	commentRepo persistent.CommentRepository,
	likeRepo persistent.LikeRepository,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		logger:      logger,
	}
}

func (uc *postUseCase) ListPosts() ([]*PostView, error) {
	posts, err := uc.postRepo.List()
	if err != nil {
		uc.logger.Error("Failed to list posts: %v", err)
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return uc.withCounts(posts)
}

func (uc *postUseCase) ListPostsByAuthor(actorID string) ([]*PostView, error) {
	if actorID == "" {
		return nil, entity.ErrUnauthenticated
	}

	posts, err := uc.postRepo.ListByAuthor(actorID)
	if err != nil {
		uc.logger.Error("Failed to list posts for author %s: %v", actorID, err)
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return uc.withCounts(posts)
}

func (uc *postUseCase) GetPost(id string) (*PostView, error) {
	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		uc.logger.Error("Failed to get post %s: %v", id, err)
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return uc.viewOf(post)
}

func (uc *postUseCase) CreatePost(actorID, title, content string) (*entity.Post, error) {
	if actorID == "" {
		return nil, entity.ErrUnauthenticated
	}

	title, content, err := validatePostFields(title, content)
	if err != nil {
		return nil, err
	}

	post := &entity.Post{
		Title:    title,
		Content:  content,
		AuthorID: actorID,
	}

	if err := uc.postRepo.Create(post); err != nil {
		uc.logger.Error("Failed to create post: %v", err)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

func (uc *postUseCase) UpdatePost(actorID, id, title, content string) (*PostView, error) {
	if actorID == "" {
		return nil, entity.ErrUnauthenticated
	}

	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		uc.logger.Error("Failed to get post %s: %v", id, err)
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	if post.AuthorID != actorID {
		return nil, entity.ErrForbidden
	}

	title, content, err = validatePostFields(title, content)
	if err != nil {
		return nil, err
	}

	post.Title = title
	post.Content = content

	if err := uc.postRepo.Update(post); err != nil {
		uc.logger.Error("Failed to update post %s: %v", id, err)
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return uc.viewOf(post)
}

func (uc *postUseCase) DeletePost(actorID, id string) error {
	if actorID == "" {
		return entity.ErrUnauthenticated
	}

	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.ErrNotFound
		}
		uc.logger.Error("Failed to get post %s: %v", id, err)
		return fmt.Errorf("failed to get post: %w", err)
	}

	if post.AuthorID != actorID {
		return entity.ErrForbidden
	}

	if err := uc.postRepo.DeleteCascade(id); err != nil {
		uc.logger.Error("Failed to delete post %s: %v", id, err)
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}

func (uc *postUseCase) withCounts(posts []*entity.Post) ([]*PostView, error) {
	views := make([]*PostView, len(posts))
	for i, post := range posts {
		view, err := uc.viewOf(post)
		if err != nil {
			return nil, err
		}
		views[i] = view
	}
	return views, nil
}

func (uc *postUseCase) viewOf(post *entity.Post) (*PostView, error) {
	commentCount, err := uc.commentRepo.CountByPost(post.ID)
	if err != nil {
		uc.logger.Error("Failed to count comments for post %s: %v", post.ID, err)
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}

	likeCount, err := uc.likeRepo.CountByPost(post.ID)
	if err != nil {
		uc.logger.Error("Failed to count likes for post %s: %v", post.ID, err)
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	return &PostView{
		Post: post,
		Counts: entity.PostCounts{
			Comments: commentCount,
			Likes:    likeCount,
		},
	}, nil
}

// validatePostFields applies the same trim/non-empty rule to create and
// update alike.
func validatePostFields(title, content string) (string, string, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return "", "", fmt.Errorf("%w: title must not be empty", entity.ErrInvalidInput)
	}
	if content == "" {
		return "", "", fmt.Errorf("%w: content must not be empty", entity.ErrInvalidInput)
	}
	return title, content, nil
}
