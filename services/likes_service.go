package services

import (
	"context"
	"time"

	"blogger-platform/cache"
	"blogger-platform/dto"
	"blogger-platform/internal/logger"
	"blogger-platform/models"
)

const defaultNewestLimit = 3

// LikesService reads and writes reactions. counts is optional.
type LikesService struct {
	likes       LikeStore
	counts      CountsCache
	newestLimit int64
}

func NewLikesService(likes LikeStore, counts CountsCache, newestLimit int) *LikesService {
	if newestLimit <= 0 {
		newestLimit = defaultNewestLimit
	}
	return &LikesService{likes: likes, counts: counts, newestLimit: int64(newestLimit)}
}

// GetReactionAndReactionCount returns userID's own status (None for anonymous) and the counts.
func (s *LikesService) GetReactionAndReactionCount(ctx context.Context, parentID, userID string) (dto.ReactionInfo, error) {
	info := dto.ReactionInfo{MyStatus: models.LikeStatusNone}
	if userID != "" {
		status, err := s.likes.Reaction(ctx, parentID, userID)
		if err != nil {
			return dto.ReactionInfo{}, err
		}
		info.MyStatus = status
	}

	likes, dislikes, err := s.reactionCounts(ctx, parentID)
	if err != nil {
		return dto.ReactionInfo{}, err
	}
	info.LikesCount = likes
	info.DislikesCount = dislikes
	return info, nil
}

func (s *LikesService) reactionCounts(ctx context.Context, parentID string) (int64, int64, error) {
	cacheable := false
	var cached cache.Counts
	if s.counts != nil {
		var err error
		cached, err = s.counts.Get(ctx, parentID)
		switch {
		case err != nil:
			logger.WarnWithFields("reaction count cache read failed", logger.Fields{"parent_id": parentID, "error": err.Error()})
		case cached.Hit:
			return cached.Likes, cached.Dislikes, nil
		default:
			cacheable = true
		}
	}

	likes, err := s.likes.CountByStatus(ctx, parentID, models.LikeStatusLike)
	if err != nil {
		return 0, 0, err
	}
	dislikes, err := s.likes.CountByStatus(ctx, parentID, models.LikeStatusDislike)
	if err != nil {
		return 0, 0, err
	}

	if cacheable {
		// cached.Version 은 카운트 전에 읽은 값. 그 사이 Invalidate 가 있었다면 Set 은 무시된다.
		cached.Likes, cached.Dislikes = likes, dislikes
		if err := s.counts.Set(ctx, parentID, cached); err != nil {
			logger.WarnWithFields("reaction count cache write failed", logger.Fields{"parent_id": parentID, "error": err.Error()})
		}
	}
	return likes, dislikes, nil
}

func (s *LikesService) GetNewestLikes(ctx context.Context, parentID string) ([]dto.NewestLike, error) {
	items, err := s.likes.Newest(ctx, parentID, s.newestLimit)
	if err != nil {
		return nil, err
	}
	return dto.NewNewestLikes(items), nil
}

// UpdateUserReaction stores status as userID's only reaction on parentID.
func (s *LikesService) UpdateUserReaction(ctx context.Context, parentID, userID string, status models.LikeStatus, addedAt time.Time, login string) (bool, error) {
	ok, err := s.likes.Upsert(ctx, models.Like{
		ParentID: parentID,
		UserID:   userID,
		Login:    login,
		Status:   status,
		AddedAt:  addedAt,
	})
	if err != nil {
		return false, err
	}
	s.invalidate(ctx, parentID)
	return ok, nil
}

// SetBannedForUser hides (or restores) every reaction left by userID and
// invalidates the cached counts of each affected parent.
func (s *LikesService) SetBannedForUser(ctx context.Context, userID string, isBanned bool) error {
	parents, err := s.likes.SetBannedForUser(ctx, userID, isBanned)
	if err != nil {
		return err
	}
	for _, parentID := range parents {
		s.invalidate(ctx, parentID)
	}
	return nil
}

func (s *LikesService) invalidate(ctx context.Context, parentID string) {
	if s.counts == nil {
		return
	}
	if err := s.counts.Invalidate(ctx, parentID); err != nil {
		logger.WarnWithFields("reaction count cache invalidate failed", logger.Fields{"parent_id": parentID, "error": err.Error()})
	}
}
