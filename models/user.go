package models

import "time"

// Collection: users
type User struct {
	ID        string     `bson:"id" json:"id"`
	Login     string     `bson:"login" json:"login"`
	Email     string     `bson:"email" json:"email"`
	IsBanned  bool       `bson:"is_banned" json:"isBanned"`
	BanReason string     `bson:"ban_reason,omitempty" json:"banReason,omitempty"`
	BanDate   *time.Time `bson:"ban_date,omitempty" json:"banDate,omitempty"`
	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
}
