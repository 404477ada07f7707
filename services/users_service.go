package services

import (
	"context"

	"blogger-platform/internal/logger"
)

// UsersService handles super-admin actions on user accounts.
type UsersService struct {
	users     UserBanStore
	blogs     BlogBanUpdater
	reactions ReactionBanner
}

func NewUsersService(users UserBanStore, blogs BlogBanUpdater, reactions ReactionBanner) *UsersService {
	return &UsersService{users: users, blogs: blogs, reactions: reactions}
}

// BanUser bans or unbans userID everywhere: the account, the blog they own and every
// reaction they left. An unknown user yields false, nil and nothing else changes.
func (s *UsersService) BanUser(ctx context.Context, userID string, isBanned bool, reason string) (bool, error) {
	ok, err := s.users.UpdateBanStatus(ctx, userID, isBanned, reason)
	if err != nil || !ok {
		return ok, err
	}

	// 블로그가 없는 사용자도 있으므로 matched=false 는 무시한다.
	if _, err := s.blogs.UpdateBanStatus(ctx, userID, isBanned); err != nil {
		logger.ErrorWithFields("owner blog ban update failed", logger.Fields{"user_id": userID, "error": err.Error()})
		return true, err
	}
	if err := s.reactions.SetBannedForUser(ctx, userID, isBanned); err != nil {
		logger.ErrorWithFields("reaction ban update failed", logger.Fields{"user_id": userID, "error": err.Error()})
		return true, err
	}
	return true, nil
}
