package models

import "time"

// BanInfo records that a blog owner banned a user from their blog.
// Collection: ban_info
type BanInfo struct {
	UserID    string     `bson:"user_id" json:"userId"`
	BlogID    string     `bson:"blog_id" json:"blogId"`
	IsBanned  bool       `bson:"is_banned" json:"isBanned"`
	BanReason string     `bson:"ban_reason,omitempty" json:"banReason,omitempty"`
	BanDate   *time.Time `bson:"ban_date,omitempty" json:"banDate,omitempty"`
}
