package dto

import (
	"time"

	"blogger-platform/models"
)

type CommentatorInfo struct {
	UserID    string `json:"userId"`
	UserLogin string `json:"userLogin"`
}

type CommentView struct {
	ID              string          `json:"id"`
	Content         string          `json:"content"`
	CommentatorInfo CommentatorInfo `json:"commentatorInfo"`
	CreatedAt       time.Time       `json:"createdAt"`
	LikesInfo       ReactionInfo    `json:"likesInfo"`
}

func NewCommentView(c models.Comment, likes ReactionInfo) CommentView {
	return CommentView{
		ID:      c.ID,
		Content: c.Content,
		CommentatorInfo: CommentatorInfo{
			UserID:    c.UserID,
			UserLogin: c.UserLogin,
		},
		CreatedAt: c.CreatedAt,
		LikesInfo: likes,
	}
}
