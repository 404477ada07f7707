package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type usersFixture struct {
	users     *mockUserBanStore
	blogs     *mockBlogStore
	reactions *mockReactionBanner
	svc       *UsersService
}

func newUsersFixture() *usersFixture {
	f := &usersFixture{
		users:     new(mockUserBanStore),
		blogs:     new(mockBlogStore),
		reactions: new(mockReactionBanner),
	}
	f.svc = NewUsersService(f.users, f.blogs, f.reactions)
	return f
}

const banReason = "spam in every comment section"

func TestUsersBanUser(t *testing.T) {
	ctx := context.Background()

	t.Run("ban cascades to blog and reactions", func(t *testing.T) {
		f := newUsersFixture()
		f.users.On("UpdateBanStatus", ctx, "u1", true, banReason).Return(true, nil)
		f.blogs.On("UpdateBanStatus", ctx, "u1", true).Return(true, nil)
		f.reactions.On("SetBannedForUser", ctx, "u1", true).Return(nil)

		ok, err := f.svc.BanUser(ctx, "u1", true, banReason)
		require.NoError(t, err)
		assert.True(t, ok)
		f.blogs.AssertExpectations(t)
		f.reactions.AssertExpectations(t)
	})

	t.Run("user without a blog", func(t *testing.T) {
		f := newUsersFixture()
		f.users.On("UpdateBanStatus", ctx, "u2", false, "").Return(true, nil)
		f.blogs.On("UpdateBanStatus", ctx, "u2", false).Return(false, nil)
		f.reactions.On("SetBannedForUser", ctx, "u2", false).Return(nil)

		ok, err := f.svc.BanUser(ctx, "u2", false, "")
		require.NoError(t, err)
		assert.True(t, ok)
		f.reactions.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newUsersFixture()
		f.users.On("UpdateBanStatus", ctx, "ghost", true, banReason).Return(false, nil)

		ok, err := f.svc.BanUser(ctx, "ghost", true, banReason)
		require.NoError(t, err)
		assert.False(t, ok)
		f.blogs.AssertNotCalled(t, "UpdateBanStatus", mock.Anything, mock.Anything, mock.Anything)
		f.reactions.AssertNotCalled(t, "SetBannedForUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("reaction update failure", func(t *testing.T) {
		f := newUsersFixture()
		f.users.On("UpdateBanStatus", ctx, "u1", true, banReason).Return(true, nil)
		f.blogs.On("UpdateBanStatus", ctx, "u1", true).Return(true, nil)
		f.reactions.On("SetBannedForUser", ctx, "u1", true).Return(errors.New("boom"))

		_, err := f.svc.BanUser(ctx, "u1", true, banReason)
		require.Error(t, err)
	})
}
