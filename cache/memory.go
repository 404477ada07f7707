package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// BanChecker answers whether a user is banned on the blog owning a post.
type BanChecker interface {
	CheckBanStatus(ctx context.Context, userID, postID string) (bool, error)
}

// CachedBanChecker memoises BanChecker answers in process for ttl.
type CachedBanChecker struct {
	next  BanChecker
	cache *gocache.Cache
}

func NewCachedBanChecker(next BanChecker, ttl time.Duration) *CachedBanChecker {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &CachedBanChecker{
		next:  next,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func banKey(userID, postID string) string { return "ban:" + userID + ":" + postID }

func (c *CachedBanChecker) CheckBanStatus(ctx context.Context, userID, postID string) (bool, error) {
	key := banKey(userID, postID)
	if v, ok := c.cache.Get(key); ok {
		return v.(bool), nil
	}
	banned, err := c.next.CheckBanStatus(ctx, userID, postID)
	if err != nil {
		return false, err
	}
	c.cache.SetDefault(key, banned)
	return banned, nil
}

// Flush drops every cached answer; called after a ban changes.
func (c *CachedBanChecker) Flush() {
	c.cache.Flush()
}
