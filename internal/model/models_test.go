package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserModel_BeforeCreate(t *testing.T) {
	user := &UserModel{
		Email:    "test@example.com",
		Username: "testuser",
		Password: "password",
	}

	err := user.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
}

func TestUserModel_BeforeCreate_WithID(t *testing.T) {
	existingID := "existing-id-123"
	user := &UserModel{
		ID:       existingID,
		Email:    "test@example.com",
		Username: "testuser",
	}

	err := user.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.Equal(t, existingID, user.ID)
}

func TestPostModel_BeforeCreate(t *testing.T) {
	post := &PostModel{
		Title:    "Hello",
		Content:  "World",
		AuthorID: "author-123",
	}

	err := post.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, post.ID)
}

func TestPostModel_BeforeCreate_WithID(t *testing.T) {
	existingID := "existing-post-id"
	post := &PostModel{
		ID:       existingID,
		Title:    "Hello",
		Content:  "World",
		AuthorID: "author-123",
	}

	err := post.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.Equal(t, existingID, post.ID)
}

func TestCommentModel_BeforeCreate(t *testing.T) {
	comment := &CommentModel{
		Content:  "Nice post",
		PostID:   "post-123",
		AuthorID: "author-123",
	}

	err := comment.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, comment.ID)
}

func TestLikeModel_BeforeCreate(t *testing.T) {
	like := &LikeModel{
		PostID: "post-123",
		UserID: "user-123",
	}

	err := like.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, like.ID)
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "users", UserModel{}.TableName())
	assert.Equal(t, "posts", PostModel{}.TableName())
	assert.Equal(t, "comments", CommentModel{}.TableName())
	assert.Equal(t, "likes", LikeModel{}.TableName())
}
