package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"blogger-platform/cache"
	"blogger-platform/dto"
	"blogger-platform/models"
	"blogger-platform/query"
)

type mockPostStore struct{ mock.Mock }

func (m *mockPostStore) List(ctx context.Context, q query.Params, blogID string) ([]models.Post, error) {
	args := m.Called(ctx, q, blogID)
	items, _ := args.Get(0).([]models.Post)
	return items, args.Error(1)
}

func (m *mockPostStore) Count(ctx context.Context, blogID, searchTerm string) (int64, error) {
	args := m.Called(ctx, blogID, searchTerm)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPostStore) GetByID(ctx context.Context, id string) (*models.Post, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Post)
	return p, args.Error(1)
}

func (m *mockPostStore) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(*models.Post)
	return out, args.Error(1)
}

func (m *mockPostStore) Update(ctx context.Context, id string, in models.PostInput) (bool, error) {
	args := m.Called(ctx, id, in)
	return args.Bool(0), args.Error(1)
}

func (m *mockPostStore) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockBlogStore struct{ mock.Mock }

func (m *mockBlogStore) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*models.Blog)
	return b, args.Error(1)
}

func (m *mockBlogStore) List(ctx context.Context, q query.Params, ownerID string) ([]models.Blog, error) {
	args := m.Called(ctx, q, ownerID)
	items, _ := args.Get(0).([]models.Blog)
	return items, args.Error(1)
}

func (m *mockBlogStore) Count(ctx context.Context, ownerID, searchTerm string) (int64, error) {
	args := m.Called(ctx, ownerID, searchTerm)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBlogStore) AdminList(ctx context.Context, q query.Params) ([]models.Blog, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]models.Blog)
	return items, args.Error(1)
}

func (m *mockBlogStore) AdminCount(ctx context.Context, status query.BanStatus, searchTerm string) (int64, error) {
	args := m.Called(ctx, status, searchTerm)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBlogStore) AdminGetByID(ctx context.Context, id string) (*models.Blog, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*models.Blog)
	return b, args.Error(1)
}

func (m *mockBlogStore) Create(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	args := m.Called(ctx, b)
	out, _ := args.Get(0).(*models.Blog)
	return out, args.Error(1)
}

func (m *mockBlogStore) Bind(ctx context.Context, id, userID, login string) (bool, error) {
	args := m.Called(ctx, id, userID, login)
	return args.Bool(0), args.Error(1)
}

func (m *mockBlogStore) Update(ctx context.Context, id string, in models.BlogInput) (bool, error) {
	args := m.Called(ctx, id, in)
	return args.Bool(0), args.Error(1)
}

func (m *mockBlogStore) UpdateBanStatus(ctx context.Context, id string, isBanned bool) (bool, error) {
	args := m.Called(ctx, id, isBanned)
	return args.Bool(0), args.Error(1)
}

func (m *mockBlogStore) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockCommentStore struct{ mock.Mock }

func (m *mockCommentStore) List(ctx context.Context, q query.Params, id string) ([]models.Comment, error) {
	args := m.Called(ctx, q, id)
	items, _ := args.Get(0).([]models.Comment)
	return items, args.Error(1)
}

func (m *mockCommentStore) Count(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCommentStore) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*models.Comment)
	return c, args.Error(1)
}

func (m *mockCommentStore) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	args := m.Called(ctx, c)
	out, _ := args.Get(0).(*models.Comment)
	return out, args.Error(1)
}

func (m *mockCommentStore) Update(ctx context.Context, id, content string) (bool, error) {
	args := m.Called(ctx, id, content)
	return args.Bool(0), args.Error(1)
}

func (m *mockCommentStore) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockLikeStore struct{ mock.Mock }

func (m *mockLikeStore) Reaction(ctx context.Context, parentID, userID string) (models.LikeStatus, error) {
	args := m.Called(ctx, parentID, userID)
	return args.Get(0).(models.LikeStatus), args.Error(1)
}

func (m *mockLikeStore) CountByStatus(ctx context.Context, parentID string, status models.LikeStatus) (int64, error) {
	args := m.Called(ctx, parentID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLikeStore) Newest(ctx context.Context, parentID string, limit int64) ([]models.Like, error) {
	args := m.Called(ctx, parentID, limit)
	items, _ := args.Get(0).([]models.Like)
	return items, args.Error(1)
}

func (m *mockLikeStore) Upsert(ctx context.Context, l models.Like) (bool, error) {
	args := m.Called(ctx, l)
	return args.Bool(0), args.Error(1)
}

func (m *mockLikeStore) SetBannedForUser(ctx context.Context, userID string, isBanned bool) ([]string, error) {
	args := m.Called(ctx, userID, isBanned)
	parents, _ := args.Get(0).([]string)
	return parents, args.Error(1)
}

type mockCountsCache struct{ mock.Mock }

func (m *mockCountsCache) Get(ctx context.Context, parentID string) (cache.Counts, error) {
	args := m.Called(ctx, parentID)
	return args.Get(0).(cache.Counts), args.Error(1)
}

func (m *mockCountsCache) Set(ctx context.Context, parentID string, counts cache.Counts) error {
	return m.Called(ctx, parentID, counts).Error(0)
}

func (m *mockCountsCache) Invalidate(ctx context.Context, parentID string) error {
	return m.Called(ctx, parentID).Error(0)
}

type mockLikes struct{ mock.Mock }

func (m *mockLikes) GetReactionAndReactionCount(ctx context.Context, parentID, userID string) (dto.ReactionInfo, error) {
	args := m.Called(ctx, parentID, userID)
	return args.Get(0).(dto.ReactionInfo), args.Error(1)
}

func (m *mockLikes) GetNewestLikes(ctx context.Context, parentID string) ([]dto.NewestLike, error) {
	args := m.Called(ctx, parentID)
	items, _ := args.Get(0).([]dto.NewestLike)
	return items, args.Error(1)
}

func (m *mockLikes) UpdateUserReaction(ctx context.Context, parentID, userID string, status models.LikeStatus, addedAt time.Time, login string) (bool, error) {
	args := m.Called(ctx, parentID, userID, status, addedAt, login)
	return args.Bool(0), args.Error(1)
}

type mockReactionBanner struct{ mock.Mock }

func (m *mockReactionBanner) SetBannedForUser(ctx context.Context, userID string, isBanned bool) error {
	return m.Called(ctx, userID, isBanned).Error(0)
}

type mockBanChecker struct{ mock.Mock }

func (m *mockBanChecker) CheckBanStatus(ctx context.Context, userID, postID string) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

type mockBanStore struct{ mock.Mock }

func (m *mockBanStore) Upsert(ctx context.Context, b models.BanInfo) error {
	return m.Called(ctx, b).Error(0)
}

type mockUsers struct{ mock.Mock }

func (m *mockUsers) GetByIDOrLoginOrEmail(ctx context.Context, value string) (*models.User, error) {
	args := m.Called(ctx, value)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

// stubTokens maps known tokens to user ids; anything else resolves to "".
type stubTokens map[string]string

func (s stubTokens) UserIDFromToken(token string) string { return s[token] }

type mockUserBanStore struct{ mock.Mock }

func (m *mockUserBanStore) UpdateBanStatus(ctx context.Context, id string, isBanned bool, reason string) (bool, error) {
	args := m.Called(ctx, id, isBanned, reason)
	return args.Bool(0), args.Error(1)
}
