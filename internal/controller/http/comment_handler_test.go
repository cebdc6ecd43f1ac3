package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"markblog/internal/entity"
	"markblog/internal/usecase"
	"markblog/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCommentUseCase is a mock implementation of CommentUseCase
type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) ListComments(postID string) ([]*entity.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) CreateComment(actorID, postID, content string) (*entity.Comment, error) {
	args := m.Called(actorID, postID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

var _ usecase.CommentUseCase = (*MockCommentUseCase)(nil)

func TestListComments_Success(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts/:id/comments", handler.ListComments)

	mockUseCase.On("ListComments", "post-1").Return([]*entity.Comment{
		{ID: "comment-1", PostID: "post-1", AuthorID: "user-a", Content: "Nice"},
		{ID: "comment-2", PostID: "post-1", AuthorID: "user-b", Content: "Agreed"},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/post-1/comments", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(2), response["count"])

	mockUseCase.AssertExpectations(t)
}

func TestListComments_UnknownPostIsEmpty(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts/:id/comments", handler.ListComments)

	mockUseCase.On("ListComments", "missing").Return([]*entity.Comment{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/missing/comments", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(0), response["count"])
}

func TestCreateComment_Success(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/comments", asActor("user-a", handler.CreateComment))

	mockUseCase.On("CreateComment", "user-a", "post-1", "Great read").
		Return(&entity.Comment{ID: "comment-1", PostID: "post-1", AuthorID: "user-a", Content: "Great read"}, nil)

	body := `{"content":"Great read"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-1/comments", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "post-1", response["post_id"])
	assert.Equal(t, "Great read", response["content"])

	mockUseCase.AssertExpectations(t)
}

func TestCreateComment_Unauthenticated(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/comments", handler.CreateComment)

	mockUseCase.On("CreateComment", "", "post-1", "hi").Return(nil, entity.ErrUnauthenticated)

	body := `{"content":"hi"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-1/comments", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateComment_EmptyContent(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/comments", asActor("user-a", handler.CreateComment))

	mockUseCase.On("CreateComment", "user-a", "post-1", "   ").Return(nil, entity.ErrInvalidInput)

	body := `{"content":"   "}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-1/comments", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
