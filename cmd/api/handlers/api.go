package handlers

import (
	"context"

	"blogger-platform/dto"
	"blogger-platform/models"
	"blogger-platform/query"
)

// 핸들러가 의존하는 서비스 표면. services 패키지의 구현체가 그대로 만족한다.

type PostsAPI interface {
	GetPosts(ctx context.Context, q query.Params, blogID, token string) (*query.Page[dto.PostView], error)
	GetPostByID(ctx context.Context, postID, token string) (*dto.PostView, error)
	PostExists(ctx context.Context, postID string) (bool, error)
	UpdateLikesInfo(ctx context.Context, userID, parentID string, status models.LikeStatus) (bool, error)
	CreatePost(ctx context.Context, ownerID, blogID string, in models.PostInput) (*dto.PostView, error)
	UpdatePost(ctx context.Context, ownerID, blogID, postID string, in models.PostInput) (bool, error)
	DeletePost(ctx context.Context, ownerID, blogID, postID string) (bool, error)
}

type BlogsAPI interface {
	List(ctx context.Context, q query.Params) (*query.Page[dto.BlogView], error)
	ListOwned(ctx context.Context, q query.Params, ownerID string) (*query.Page[dto.BlogView], error)
	GetByID(ctx context.Context, id string) (*dto.BlogView, error)
	Create(ctx context.Context, ownerID, ownerLogin string, in models.BlogInput) (*dto.BlogView, error)
	Update(ctx context.Context, ownerID, id string, in models.BlogInput) (bool, error)
	Delete(ctx context.Context, ownerID, id string) (bool, error)
	BanUser(ctx context.Context, ownerID, blogID, userID string, isBanned bool, reason string) error
	AdminList(ctx context.Context, q query.Params) (*query.Page[dto.AdminBlogView], error)
	Bind(ctx context.Context, blogID, userID string) (bool, error)
	UpdateBanStatus(ctx context.Context, id string, isBanned bool) (bool, error)
}

type CommentsAPI interface {
	ListForPost(ctx context.Context, q query.Params, postID, token string) (*query.Page[dto.CommentView], error)
	ListForBlogger(ctx context.Context, q query.Params, bloggerID string) (*query.Page[dto.CommentView], error)
	GetByID(ctx context.Context, id, token string) (*dto.CommentView, error)
	Create(ctx context.Context, postID, userID, content string) (*dto.CommentView, error)
	Update(ctx context.Context, userID, id, content string) (bool, error)
	Delete(ctx context.Context, userID, id string) (bool, error)
	UpdateLikeStatus(ctx context.Context, userID, id string, status models.LikeStatus) (bool, error)
}

type UsersAPI interface {
	BanUser(ctx context.Context, userID string, isBanned bool, reason string) (bool, error)
}

// UserLookup 은 블로그 생성 시 작성자 login 을 채우는 데 쓴다.
type UserLookup interface {
	GetByIDOrLoginOrEmail(ctx context.Context, value string) (*models.User, error)
}
