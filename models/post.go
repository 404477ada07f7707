package models

import "time"

// Post belongs to a blog; blog_name is denormalized at creation.
// Reaction data is computed on read and never stored here.
// Collection: posts
type Post struct {
	ID               string    `bson:"id" json:"id"`
	Title            string    `bson:"title" json:"title"`
	ShortDescription string    `bson:"short_description" json:"shortDescription"`
	Content          string    `bson:"content" json:"content"`
	BlogID           string    `bson:"blog_id" json:"blogId"`
	BlogName         string    `bson:"blog_name" json:"blogName"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
}

type PostInput struct {
	Title            string `json:"title" binding:"required,max=30"`
	ShortDescription string `json:"shortDescription" binding:"required,max=100"`
	Content          string `json:"content" binding:"required,max=1000"`
}
