package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBanChecker struct {
	mock.Mock
}

func (m *mockBanChecker) CheckBanStatus(ctx context.Context, userID, postID string) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func TestCachedBanChecker(t *testing.T) {
	ctx := context.Background()

	t.Run("second call is served from cache", func(t *testing.T) {
		next := new(mockBanChecker)
		next.On("CheckBanStatus", ctx, "u1", "p1").Return(true, nil).Once()

		c := NewCachedBanChecker(next, time.Minute)
		for i := 0; i < 2; i++ {
			banned, err := c.CheckBanStatus(ctx, "u1", "p1")
			require.NoError(t, err)
			assert.True(t, banned)
		}
		next.AssertNumberOfCalls(t, "CheckBanStatus", 1)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		next := new(mockBanChecker)
		next.On("CheckBanStatus", ctx, "u1", "p1").Return(false, errors.New("boom")).Once()
		next.On("CheckBanStatus", ctx, "u1", "p1").Return(false, nil).Once()

		c := NewCachedBanChecker(next, time.Minute)
		_, err := c.CheckBanStatus(ctx, "u1", "p1")
		assert.Error(t, err)

		banned, err := c.CheckBanStatus(ctx, "u1", "p1")
		require.NoError(t, err)
		assert.False(t, banned)
		next.AssertExpectations(t)
	})

	t.Run("flush forces a reload", func(t *testing.T) {
		next := new(mockBanChecker)
		next.On("CheckBanStatus", ctx, "u1", "p1").Return(false, nil).Once()
		next.On("CheckBanStatus", ctx, "u1", "p1").Return(true, nil).Once()

		c := NewCachedBanChecker(next, time.Minute)
		banned, _ := c.CheckBanStatus(ctx, "u1", "p1")
		assert.False(t, banned)

		c.Flush()
		banned, err := c.CheckBanStatus(ctx, "u1", "p1")
		require.NoError(t, err)
		assert.True(t, banned)
	})
}
