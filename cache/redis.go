package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient dials addr and pings it once.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr, DB: 0})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

// Counts is a cached like/dislike pair. Version is the invalidation counter seen at read time;
// Hit is false on a miss.
type Counts struct {
	Likes    int64
	Dislikes int64
	Version  int64
	Hit      bool
}

// ReactionCounts caches like/dislike counts per parent in a redis hash.
// The hash also keeps a "ver" field bumped by every Invalidate, so a reader that
// counted before an invalidation cannot write its result back.
type ReactionCounts struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewReactionCounts(rdb *redis.Client, ttl time.Duration) *ReactionCounts {
	return &ReactionCounts{rdb: rdb, ttl: ttl}
}

const (
	fieldLikes    = "likes"
	fieldDislikes = "dislikes"
	fieldVersion  = "ver"
)

func countsKey(parentID string) string { return "likes:counts:" + parentID }

func (c *ReactionCounts) Get(ctx context.Context, parentID string) (Counts, error) {
	vals, err := c.rdb.HGetAll(ctx, countsKey(parentID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Counts{}, nil
		}
		return Counts{}, err
	}

	out := Counts{Version: parseInt(vals[fieldVersion])}
	ls, hasLikes := vals[fieldLikes]
	ds, hasDislikes := vals[fieldDislikes]
	if !hasLikes || !hasDislikes {
		return out, nil
	}
	likes, err := strconv.ParseInt(ls, 10, 64)
	if err != nil {
		return out, nil
	}
	dislikes, err := strconv.ParseInt(ds, 10, 64)
	if err != nil {
		return out, nil
	}
	out.Likes, out.Dislikes, out.Hit = likes, dislikes, true
	return out, nil
}

// Set stores counts only while the key's version still equals counts.Version.
// A concurrent Invalidate makes Set a no-op.
func (c *ReactionCounts) Set(ctx context.Context, parentID string, counts Counts) error {
	key := countsKey(parentID)
	err := c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		ver, err := tx.HGet(ctx, key, fieldVersion).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if ver != counts.Version {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, fieldLikes, counts.Likes, fieldDislikes, counts.Dislikes)
			if c.ttl > 0 {
				pipe.Expire(ctx, key, c.ttl)
			}
			return nil
		})
		return err
	}, key)
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

// Invalidate drops the counts and bumps the version.
func (c *ReactionCounts) Invalidate(ctx context.Context, parentID string) error {
	key := countsKey(parentID)
	pipe := c.rdb.TxPipeline()
	pipe.HDel(ctx, key, fieldLikes, fieldDislikes)
	pipe.HIncrBy(ctx, key, fieldVersion, 1)
	if c.ttl > 0 {
		pipe.Expire(ctx, key, c.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func parseInt(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}
