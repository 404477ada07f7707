package dto

import (
	"time"

	"blogger-platform/models"
)

// BlogView is the public shape of a blog; ownership and ban data are hidden.
type BlogView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	WebsiteURL  string    `json:"websiteUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewBlogView(b models.Blog) BlogView {
	return BlogView{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		WebsiteURL:  b.WebsiteURL,
		CreatedAt:   b.CreatedAt,
	}
}

type BlogOwnerInfo struct {
	UserID    string `json:"userId"`
	UserLogin string `json:"userLogin"`
}

type BanInfoView struct {
	IsBanned bool       `json:"isBanned"`
	BanDate  *time.Time `json:"banDate"`
}

// AdminBlogView is what the super-admin listing returns.
type AdminBlogView struct {
	BlogView
	BlogOwnerInfo BlogOwnerInfo `json:"blogOwnerInfo"`
	BanInfo       BanInfoView   `json:"banInfo"`
}

func NewAdminBlogView(b models.Blog) AdminBlogView {
	return AdminBlogView{
		BlogView:      NewBlogView(b),
		BlogOwnerInfo: BlogOwnerInfo{UserID: b.UserID, UserLogin: b.UserLogin},
		BanInfo:       BanInfoView{IsBanned: b.IsBanned, BanDate: b.BanDate},
	}
}
