package models

import "time"

// Blog is a user-owned blog.
// Collection: blogs
type Blog struct {
	ID          string     `bson:"id" json:"id"`
	UserID      string     `bson:"user_id" json:"userId"`
	UserLogin   string     `bson:"user_login" json:"userLogin"`
	Name        string     `bson:"name" json:"name"`
	Description string     `bson:"description" json:"description"`
	WebsiteURL  string     `bson:"website_url" json:"websiteUrl"`
	IsBanned    bool       `bson:"is_banned" json:"isBanned"`
	BanDate     *time.Time `bson:"ban_date,omitempty" json:"banDate,omitempty"`
	CreatedAt   time.Time  `bson:"created_at" json:"createdAt"`
}

// BlogInput carries the owner-editable fields of a blog.
type BlogInput struct {
	Name        string `json:"name" binding:"required,max=15"`
	Description string `json:"description" binding:"required,max=500"`
	WebsiteURL  string `json:"websiteUrl" binding:"required,url,max=100"`
}
