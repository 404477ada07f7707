package dto

import (
	"time"

	"blogger-platform/models"
)

// PostView is a stored post merged with reaction data for one viewer.
type PostView struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	ShortDescription  string            `json:"shortDescription"`
	Content           string            `json:"content"`
	BlogID            string            `json:"blogId"`
	BlogName          string            `json:"blogName"`
	CreatedAt         time.Time         `json:"createdAt"`
	ExtendedLikesInfo ExtendedLikesInfo `json:"extendedLikesInfo"`
}

func NewPostView(p models.Post, likes ExtendedLikesInfo) PostView {
	if likes.NewestLikes == nil {
		likes.NewestLikes = []NewestLike{}
	}
	return PostView{
		ID:                p.ID,
		Title:             p.Title,
		ShortDescription:  p.ShortDescription,
		Content:           p.Content,
		BlogID:            p.BlogID,
		BlogName:          p.BlogName,
		CreatedAt:         p.CreatedAt,
		ExtendedLikesInfo: likes,
	}
}
