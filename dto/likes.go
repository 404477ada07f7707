package dto

import (
	"time"

	"blogger-platform/models"
)

// ReactionInfo is the viewer's own status plus the public counts.
type ReactionInfo struct {
	MyStatus      models.LikeStatus `json:"myStatus"`
	LikesCount    int64             `json:"likesCount"`
	DislikesCount int64             `json:"dislikesCount"`
}

type NewestLike struct {
	AddedAt time.Time `json:"addedAt"`
	UserID  string    `json:"userId"`
	Login   string    `json:"login"`
}

// ExtendedLikesInfo is ReactionInfo plus the most recent likes; used on posts.
type ExtendedLikesInfo struct {
	ReactionInfo
	NewestLikes []NewestLike `json:"newestLikes"`
}

func NewNewestLikes(items []models.Like) []NewestLike {
	out := make([]NewestLike, 0, len(items))
	for _, l := range items {
		out = append(out, NewestLike{AddedAt: l.AddedAt, UserID: l.UserID, Login: l.Login})
	}
	return out
}
