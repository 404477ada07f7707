package services

import (
	"context"
	"time"

	"blogger-platform/cache"
	"blogger-platform/dto"
	"blogger-platform/models"
	"blogger-platform/query"
)

// 아래 인터페이스는 repositories 패키지의 구현체를 서비스 쪽에서 필요한 만큼만 선언한 것이다.

type PostStore interface {
	List(ctx context.Context, q query.Params, blogID string) ([]models.Post, error)
	Count(ctx context.Context, blogID, searchTerm string) (int64, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Create(ctx context.Context, p *models.Post) (*models.Post, error)
	Update(ctx context.Context, id string, in models.PostInput) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type PostReader interface {
	GetByID(ctx context.Context, id string) (*models.Post, error)
}

// BlogReader returns nil, nil for missing or banned blogs.
type BlogReader interface {
	GetByID(ctx context.Context, id string) (*models.Blog, error)
}

type BlogStore interface {
	BlogReader
	List(ctx context.Context, q query.Params, ownerID string) ([]models.Blog, error)
	Count(ctx context.Context, ownerID, searchTerm string) (int64, error)
	AdminList(ctx context.Context, q query.Params) ([]models.Blog, error)
	AdminCount(ctx context.Context, status query.BanStatus, searchTerm string) (int64, error)
	AdminGetByID(ctx context.Context, id string) (*models.Blog, error)
	Create(ctx context.Context, b *models.Blog) (*models.Blog, error)
	Bind(ctx context.Context, id, userID, login string) (bool, error)
	Update(ctx context.Context, id string, in models.BlogInput) (bool, error)
	UpdateBanStatus(ctx context.Context, id string, isBanned bool) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type CommentStore interface {
	List(ctx context.Context, q query.Params, id string) ([]models.Comment, error)
	Count(ctx context.Context, id string) (int64, error)
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	Create(ctx context.Context, c *models.Comment) (*models.Comment, error)
	Update(ctx context.Context, id, content string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type LikeStore interface {
	Reaction(ctx context.Context, parentID, userID string) (models.LikeStatus, error)
	CountByStatus(ctx context.Context, parentID string, status models.LikeStatus) (int64, error)
	Newest(ctx context.Context, parentID string, limit int64) ([]models.Like, error)
	Upsert(ctx context.Context, l models.Like) (bool, error)
	// SetBannedForUser returns the parents whose counts changed.
	SetBannedForUser(ctx context.Context, userID string, isBanned bool) ([]string, error)
}

// CountsCache caches like/dislike counts per parent. Set must drop counts read
// before a later Invalidate of the same parent.
type CountsCache interface {
	Get(ctx context.Context, parentID string) (cache.Counts, error)
	Set(ctx context.Context, parentID string, counts cache.Counts) error
	Invalidate(ctx context.Context, parentID string) error
}

// LikesInfoProvider is the reaction subsystem as the posts and comments services see it.
type LikesInfoProvider interface {
	GetReactionAndReactionCount(ctx context.Context, parentID, userID string) (dto.ReactionInfo, error)
	GetNewestLikes(ctx context.Context, parentID string) ([]dto.NewestLike, error)
	UpdateUserReaction(ctx context.Context, parentID, userID string, status models.LikeStatus, addedAt time.Time, login string) (bool, error)
}

// UserBanStore persists the account-wide ban of a user.
type UserBanStore interface {
	UpdateBanStatus(ctx context.Context, id string, isBanned bool, reason string) (bool, error)
}

// BlogBanUpdater matches a blog by its own id or its owner's id.
type BlogBanUpdater interface {
	UpdateBanStatus(ctx context.Context, id string, isBanned bool) (bool, error)
}

type ReactionBanner interface {
	SetBannedForUser(ctx context.Context, userID string, isBanned bool) error
}

type BanChecker interface {
	CheckBanStatus(ctx context.Context, userID, postID string) (bool, error)
}

type BanStore interface {
	Upsert(ctx context.Context, b models.BanInfo) error
}

type UserFinder interface {
	GetByIDOrLoginOrEmail(ctx context.Context, value string) (*models.User, error)
}

// TokenResolver returns the user id carried by an access token, "" when the token is empty or invalid.
type TokenResolver interface {
	UserIDFromToken(token string) string
}
