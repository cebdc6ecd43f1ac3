package usecase

import (
	"sync"
	"testing"

	"markblog/internal/entity"
	"markblog/pkg/logger"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestGetLikeStatus_Anonymous(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	uc := NewLikeUseCase(likeRepo, logger.New())

	// Anonymous callers get liked=false, never an error
	liked, err := uc.GetLikeStatus("", "post-1")

	assert.NoError(t, err)
	assert.False(t, liked)
	likeRepo.AssertNotCalled(t, "IsLiked", "", "post-1")
}

func TestGetLikeStatus_Liked(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	uc := NewLikeUseCase(likeRepo, logger.New())

	likeRepo.On("IsLiked", "user-a", "post-1").Return(true, nil)

	liked, err := uc.GetLikeStatus("user-a", "post-1")

	assert.NoError(t, err)
	assert.True(t, liked)
}

func TestToggleLike_Anonymous(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	uc := NewLikeUseCase(likeRepo, logger.New())

	_, err := uc.ToggleLike("", "post-1")

	assert.ErrorIs(t, err, entity.ErrUnauthenticated)
}

func TestToggleLike_Like(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	uc := NewLikeUseCase(likeRepo, logger.New())

	likeRepo.On("Toggle", "user-a", "post-1").Return(true, nil)

	liked, err := uc.ToggleLike("user-a", "post-1")

	assert.NoError(t, err)
	assert.True(t, liked)
}

func TestToggleLike_RetriesOnDuplicateKey(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	uc := NewLikeUseCase(likeRepo, logger.New())

	// A concurrent toggle won the insert; the retry flips the winner's row
	likeRepo.On("Toggle", "user-a", "post-1").Return(false, gorm.ErrDuplicatedKey).Once()
	likeRepo.On("Toggle", "user-a", "post-1").Return(false, nil).Once()

	liked, err := uc.ToggleLike("user-a", "post-1")

	assert.NoError(t, err)
	assert.False(t, liked)
	likeRepo.AssertExpectations(t)
}

// memLikeRepo enforces the (postID, userID) uniqueness invariant the way the
// database's unique index does, so toggle semantics can be driven hard from
// many goroutines.
type memLikeRepo struct {
	mu    sync.Mutex
	likes map[string]bool // "postID/userID" -> present
}

func newMemLikeRepo() *memLikeRepo {
	return &memLikeRepo{likes: make(map[string]bool)}
}

func (r *memLikeRepo) Toggle(userID, postID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := postID + "/" + userID
	if r.likes[key] {
		delete(r.likes, key)
		return false, nil
	}
	r.likes[key] = true
	return true, nil
}

func (r *memLikeRepo) IsLiked(userID, postID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.likes[postID+"/"+userID], nil
}

func (r *memLikeRepo) CountByPost(postID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for key, present := range r.likes {
		if present && len(key) > len(postID) && key[:len(postID)] == postID {
			count++
		}
	}
	return count, nil
}

func TestToggleLike_StrictToggleSequence(t *testing.T) {
	uc := NewLikeUseCase(newMemLikeRepo(), logger.New())

	first, err := uc.ToggleLike("user-b", "post-1")
	assert.NoError(t, err)
	assert.True(t, first)

	status, err := uc.GetLikeStatus("user-b", "post-1")
	assert.NoError(t, err)
	assert.Equal(t, first, status)

	second, err := uc.ToggleLike("user-b", "post-1")
	assert.NoError(t, err)
	assert.False(t, second)

	status, err = uc.GetLikeStatus("user-b", "post-1")
	assert.NoError(t, err)
	assert.Equal(t, second, status)
}

func TestToggleLike_ConcurrentTogglesKeepInvariant(t *testing.T) {
	repo := newMemLikeRepo()
	uc := NewLikeUseCase(repo, logger.New())

	const n = 101 // odd number of toggles must end in liked state

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := uc.ToggleLike("user-a", "post-1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	liked, err := uc.GetLikeStatus("user-a", "post-1")
	assert.NoError(t, err)
	assert.True(t, liked)

	// never more than one like per (post, user)
	count, err := repo.CountByPost("post-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
