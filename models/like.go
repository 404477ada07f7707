package models

import "time"

type LikeStatus string

const (
	LikeStatusNone    LikeStatus = "None"
	LikeStatusLike    LikeStatus = "Like"
	LikeStatusDislike LikeStatus = "Dislike"
)

// ParseLikeStatus reports whether s is one of the known statuses.
func ParseLikeStatus(s string) (LikeStatus, bool) {
	switch LikeStatus(s) {
	case LikeStatusNone, LikeStatusLike, LikeStatusDislike:
		return LikeStatus(s), true
	}
	return "", false
}

// Like is one user's reaction to a post or comment (the parent).
// Collection: likes
type Like struct {
	ParentID string     `bson:"parent_id" json:"parentId"`
	UserID   string     `bson:"user_id" json:"userId"`
	Login    string     `bson:"login" json:"login"`
	Status   LikeStatus `bson:"status" json:"status"`
	AddedAt  time.Time  `bson:"added_at" json:"addedAt"`
	IsBanned bool       `bson:"is_banned" json:"-"`
}
