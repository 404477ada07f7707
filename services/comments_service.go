package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"blogger-platform/dto"
	"blogger-platform/internal/logger"
	"blogger-platform/models"
	"blogger-platform/query"
)

// CommentsService handles comments on posts. Comments carry likes info without newest likes.
type CommentsService struct {
	comments CommentStore
	posts    PostReader
	blogs    BlogReader
	bans     BanChecker
	users    UserFinder
	likes    LikesInfoProvider
	tokens   TokenResolver
}

func NewCommentsService(comments CommentStore, posts PostReader, blogs BlogReader, bans BanChecker, users UserFinder, likes LikesInfoProvider, tokens TokenResolver) *CommentsService {
	return &CommentsService{
		comments: comments,
		posts:    posts,
		blogs:    blogs,
		bans:     bans,
		users:    users,
		likes:    likes,
		tokens:   tokens,
	}
}

// ListForPost returns nil, nil when the post does not exist or its blog is banned.
func (s *CommentsService) ListForPost(ctx context.Context, q query.Params, postID, token string) (*query.Page[dto.CommentView], error) {
	p, err := s.visiblePost(ctx, postID)
	if err != nil || p == nil {
		return nil, err
	}
	return s.list(ctx, q, postID, s.viewerID(token))
}

func (s *CommentsService) visiblePost(ctx context.Context, postID string) (*models.Post, error) {
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

// ListForBlogger returns every comment left on the blogs of bloggerID.
func (s *CommentsService) ListForBlogger(ctx context.Context, q query.Params, bloggerID string) (*query.Page[dto.CommentView], error) {
	return s.list(ctx, q, bloggerID, bloggerID)
}

func (s *CommentsService) list(ctx context.Context, q query.Params, id, viewerID string) (*query.Page[dto.CommentView], error) {
	items, err := s.comments.List(ctx, q, id)
	if err != nil {
		return nil, err
	}
	total, err := s.comments.Count(ctx, id)
	if err != nil {
		return nil, err
	}
	views := make([]dto.CommentView, 0, len(items))
	for _, c := range items {
		v, err := s.withLikes(ctx, c, viewerID)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	page := query.NewPage(q.PageNumber, q.PageSize, views, total)
	return &page, nil
}

// GetByID hides comments whose post is no longer publicly visible.
func (s *CommentsService) GetByID(ctx context.Context, id, token string) (*dto.CommentView, error) {
	c, err := s.comments.GetByID(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}
	p, err := s.visiblePost(ctx, c.PostID)
	if err != nil || p == nil {
		return nil, err
	}
	v, err := s.withLikes(ctx, *c, s.viewerID(token))
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Create adds a comment by userID. Users banned on the post's blog get ErrForbidden.
func (s *CommentsService) Create(ctx context.Context, postID, userID, content string) (*dto.CommentView, error) {
	p, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	banned, err := s.bans.CheckBanStatus(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if banned {
		return nil, ErrForbidden
	}

	user, err := s.users.GetByIDOrLoginOrEmail(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	blog, err := s.blogs.GetByID(ctx, p.BlogID)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, ErrNotFound
	}

	created, err := s.comments.Create(ctx, &models.Comment{
		ID:        uuid.NewString(),
		PostID:    postID,
		UserID:    user.ID,
		UserLogin: user.Login,
		BloggerID: blog.UserID,
		Content:   content,
	})
	if err != nil {
		logger.ErrorWithFields("comment create failed", logger.Fields{"post_id": postID, "error": err.Error()})
		return nil, err
	}
	v := dto.NewCommentView(*created, dto.ReactionInfo{MyStatus: models.LikeStatusNone})
	return &v, nil
}

func (s *CommentsService) Update(ctx context.Context, userID, id, content string) (bool, error) {
	if _, err := s.authored(ctx, userID, id); err != nil {
		return false, err
	}
	return s.comments.Update(ctx, id, content)
}

func (s *CommentsService) Delete(ctx context.Context, userID, id string) (bool, error) {
	if _, err := s.authored(ctx, userID, id); err != nil {
		return false, err
	}
	return s.comments.Delete(ctx, id)
}

// UpdateLikeStatus records userID's reaction on a comment. A missing comment or user yields false, nil.
func (s *CommentsService) UpdateLikeStatus(ctx context.Context, userID, id string, status models.LikeStatus) (bool, error) {
	c, err := s.comments.GetByID(ctx, id)
	if err != nil || c == nil {
		return false, err
	}
	user, err := s.users.GetByIDOrLoginOrEmail(ctx, userID)
	if err != nil || user == nil {
		return false, err
	}
	return s.likes.UpdateUserReaction(ctx, id, userID, status, time.Now().UTC(), user.Login)
}

func (s *CommentsService) authored(ctx context.Context, userID, id string) (*models.Comment, error) {
	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	if c.UserID != userID {
		return nil, ErrForbidden
	}
	return c, nil
}

func (s *CommentsService) withLikes(ctx context.Context, c models.Comment, viewerID string) (dto.CommentView, error) {
	info, err := s.likes.GetReactionAndReactionCount(ctx, c.ID, viewerID)
	if err != nil {
		return dto.CommentView{}, err
	}
	return dto.NewCommentView(c, info), nil
}

func (s *CommentsService) viewerID(token string) string {
	if token == "" || s.tokens == nil {
		return ""
	}
	return s.tokens.UserIDFromToken(token)
}
