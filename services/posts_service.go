package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"blogger-platform/dto"
	"blogger-platform/internal/logger"
	"blogger-platform/models"
	"blogger-platform/query"
)

// PostsService returns posts enriched with reaction data for the requesting viewer.
type PostsService struct {
	posts  PostStore
	blogs  BlogReader
	likes  LikesInfoProvider
	bans   BanChecker
	users  UserFinder
	tokens TokenResolver
}

func NewPostsService(posts PostStore, blogs BlogReader, likes LikesInfoProvider, bans BanChecker, users UserFinder, tokens TokenResolver) *PostsService {
	return &PostsService{
		posts:  posts,
		blogs:  blogs,
		likes:  likes,
		bans:   bans,
		users:  users,
		tokens: tokens,
	}
}

// GetPosts lists posts of blogID (every post when blogID is empty).
// A missing or banned blog yields nil, nil. totalCount and items come from
// two separate queries and may disagree under concurrent writes.
func (s *PostsService) GetPosts(ctx context.Context, q query.Params, blogID, token string) (*query.Page[dto.PostView], error) {
	if blogID != "" {
		blog, err := s.blogs.GetByID(ctx, blogID)
		if err != nil {
			return nil, err
		}
		if blog == nil {
			return nil, nil
		}
	}

	items, err := s.posts.List(ctx, q, blogID)
	if err != nil {
		return nil, err
	}
	total, err := s.posts.Count(ctx, blogID, q.SearchNameTerm)
	if err != nil {
		return nil, err
	}

	viewerID := s.viewerID(token)

	views := make([]dto.PostView, len(items))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range items {
		i, p := i, p
		g.Go(func() error {
			v, err := s.addLikesInfoForPost(gctx, p, viewerID)
			if err != nil {
				return err
			}
			views[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	page := query.NewPage(q.PageNumber, q.PageSize, views, total)
	return &page, nil
}

// GetPostByID returns nil, nil when the post does not exist or its blog is banned.
func (s *PostsService) GetPostByID(ctx context.Context, postID, token string) (*dto.PostView, error) {
	p, err := s.visiblePost(ctx, postID)
	if err != nil || p == nil {
		return nil, err
	}
	v, err := s.addLikesInfoForPost(ctx, *p, s.viewerID(token))
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// PostExists reports whether postID is publicly visible, without reaction data.
func (s *PostsService) PostExists(ctx context.Context, postID string) (bool, error) {
	p, err := s.visiblePost(ctx, postID)
	return p != nil, err
}

// visiblePost hides posts whose blog is missing or banned.
func (s *PostsService) visiblePost(ctx context.Context, postID string) (*models.Post, error) {
	p, err := s.posts.GetByID(ctx, postID)
	if err != nil || p == nil {
		return nil, err
	}
	blog, err := s.blogs.GetByID(ctx, p.BlogID)
	if err != nil || blog == nil {
		return nil, err
	}
	return p, nil
}

func (s *PostsService) CheckBanStatus(ctx context.Context, userID, postID string) (bool, error) {
	return s.bans.CheckBanStatus(ctx, userID, postID)
}

// UpdateLikesInfo records userID's reaction on parentID. An unknown user yields false, nil.
func (s *PostsService) UpdateLikesInfo(ctx context.Context, userID, parentID string, status models.LikeStatus) (bool, error) {
	user, err := s.users.GetByIDOrLoginOrEmail(ctx, userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	return s.likes.UpdateUserReaction(ctx, parentID, userID, status, time.Now().UTC(), user.Login)
}

// CreatePost adds a post to blogID. ownerID, when set, must own the blog.
func (s *PostsService) CreatePost(ctx context.Context, ownerID, blogID string, in models.PostInput) (*dto.PostView, error) {
	blog, err := s.ownedBlog(ctx, ownerID, blogID)
	if err != nil {
		return nil, err
	}

	created, err := s.posts.Create(ctx, &models.Post{
		ID:               uuid.NewString(),
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		Content:          in.Content,
		BlogID:           blog.ID,
		BlogName:         blog.Name,
	})
	if err != nil {
		logger.ErrorWithFields("post create failed", logger.Fields{"blog_id": blogID, "error": err.Error()})
		return nil, err
	}

	v := dto.NewPostView(*created, dto.ExtendedLikesInfo{
		ReactionInfo: dto.ReactionInfo{MyStatus: models.LikeStatusNone},
	})
	return &v, nil
}

func (s *PostsService) UpdatePost(ctx context.Context, ownerID, blogID, postID string, in models.PostInput) (bool, error) {
	if _, err := s.ownedPost(ctx, ownerID, blogID, postID); err != nil {
		return false, err
	}
	return s.posts.Update(ctx, postID, in)
}

func (s *PostsService) DeletePost(ctx context.Context, ownerID, blogID, postID string) (bool, error) {
	if _, err := s.ownedPost(ctx, ownerID, blogID, postID); err != nil {
		return false, err
	}
	return s.posts.Delete(ctx, postID)
}

func (s *PostsService) ownedBlog(ctx context.Context, ownerID, blogID string) (*models.Blog, error) {
	blog, err := s.blogs.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, ErrNotFound
	}
	if ownerID != "" && blog.UserID != ownerID {
		return nil, ErrForbidden
	}
	return blog, nil
}

func (s *PostsService) ownedPost(ctx context.Context, ownerID, blogID, postID string) (*models.Post, error) {
	if _, err := s.ownedBlog(ctx, ownerID, blogID); err != nil {
		return nil, err
	}
	p, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p == nil || p.BlogID != blogID {
		return nil, ErrNotFound
	}
	return p, nil
}

// addLikesInfoForPost merges the stored post with the viewer's reaction data.
func (s *PostsService) addLikesInfoForPost(ctx context.Context, p models.Post, viewerID string) (dto.PostView, error) {
	reaction, err := s.likes.GetReactionAndReactionCount(ctx, p.ID, viewerID)
	if err != nil {
		return dto.PostView{}, err
	}
	newest, err := s.likes.GetNewestLikes(ctx, p.ID)
	if err != nil {
		return dto.PostView{}, err
	}
	return dto.NewPostView(p, dto.ExtendedLikesInfo{
		ReactionInfo: reaction,
		NewestLikes:  newest,
	}), nil
}

func (s *PostsService) viewerID(token string) string {
	if token == "" || s.tokens == nil {
		return ""
	}
	return s.tokens.UserIDFromToken(token)
}
