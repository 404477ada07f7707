package models

import "time"

// Comment on a post. BloggerID is the owner of the blog the post belongs to,
// so an owner can list every comment left on their blogs with one id.
// Collection: comments
type Comment struct {
	ID        string    `bson:"id" json:"id"`
	PostID    string    `bson:"post_id" json:"postId"`
	UserID    string    `bson:"user_id" json:"userId"`
	UserLogin string    `bson:"user_login" json:"userLogin"`
	BloggerID string    `bson:"blogger_id,omitempty" json:"bloggerId,omitempty"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
