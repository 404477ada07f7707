package services

import (
	"context"

	"github.com/google/uuid"

	"blogger-platform/dto"
	"blogger-platform/internal/logger"
	"blogger-platform/models"
	"blogger-platform/query"
)

// BlogsService serves the public, blogger and super-admin blog surfaces.
type BlogsService struct {
	blogs BlogStore
	users UserFinder
	bans  BanStore
	// onBanChange runs after a per-blog user ban changes; used to drop cached ban checks.
	onBanChange func()
}

func NewBlogsService(blogs BlogStore, users UserFinder, bans BanStore, onBanChange func()) *BlogsService {
	return &BlogsService{
		blogs:       blogs,
		users:       users,
		bans:        bans,
		onBanChange: onBanChange,
	}
}

// List returns visible blogs only.
func (s *BlogsService) List(ctx context.Context, q query.Params) (*query.Page[dto.BlogView], error) {
	return s.list(ctx, q, "")
}

// ListOwned returns the visible blogs of ownerID.
func (s *BlogsService) ListOwned(ctx context.Context, q query.Params, ownerID string) (*query.Page[dto.BlogView], error) {
	return s.list(ctx, q, ownerID)
}

func (s *BlogsService) list(ctx context.Context, q query.Params, ownerID string) (*query.Page[dto.BlogView], error) {
	items, err := s.blogs.List(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	total, err := s.blogs.Count(ctx, ownerID, q.SearchNameTerm)
	if err != nil {
		return nil, err
	}
	views := make([]dto.BlogView, 0, len(items))
	for _, b := range items {
		views = append(views, dto.NewBlogView(b))
	}
	page := query.NewPage(q.PageNumber, q.PageSize, views, total)
	return &page, nil
}

// GetByID returns nil, nil for missing or banned blogs.
func (s *BlogsService) GetByID(ctx context.Context, id string) (*dto.BlogView, error) {
	b, err := s.blogs.GetByID(ctx, id)
	if err != nil || b == nil {
		return nil, err
	}
	v := dto.NewBlogView(*b)
	return &v, nil
}

func (s *BlogsService) Create(ctx context.Context, ownerID, ownerLogin string, in models.BlogInput) (*dto.BlogView, error) {
	created, err := s.blogs.Create(ctx, &models.Blog{
		ID:          uuid.NewString(),
		UserID:      ownerID,
		UserLogin:   ownerLogin,
		Name:        in.Name,
		Description: in.Description,
		WebsiteURL:  in.WebsiteURL,
	})
	if err != nil {
		logger.ErrorWithFields("blog create failed", logger.Fields{"user_id": ownerID, "error": err.Error()})
		return nil, err
	}
	v := dto.NewBlogView(*created)
	return &v, nil
}

func (s *BlogsService) Update(ctx context.Context, ownerID, id string, in models.BlogInput) (bool, error) {
	if _, err := s.owned(ctx, ownerID, id); err != nil {
		return false, err
	}
	return s.blogs.Update(ctx, id, in)
}

func (s *BlogsService) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	if _, err := s.owned(ctx, ownerID, id); err != nil {
		return false, err
	}
	return s.blogs.Delete(ctx, id)
}

// BanUser bans or unbans userID on a blog owned by ownerID.
func (s *BlogsService) BanUser(ctx context.Context, ownerID, blogID, userID string, isBanned bool, reason string) error {
	if _, err := s.owned(ctx, ownerID, blogID); err != nil {
		return err
	}
	user, err := s.users.GetByIDOrLoginOrEmail(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	if err := s.bans.Upsert(ctx, models.BanInfo{
		UserID:    user.ID,
		BlogID:    blogID,
		IsBanned:  isBanned,
		BanReason: reason,
	}); err != nil {
		return err
	}
	if s.onBanChange != nil {
		s.onBanChange()
	}
	return nil
}

// AdminList lists every blog, filtered by the requested ban status.
func (s *BlogsService) AdminList(ctx context.Context, q query.Params) (*query.Page[dto.AdminBlogView], error) {
	items, err := s.blogs.AdminList(ctx, q)
	if err != nil {
		return nil, err
	}
	total, err := s.blogs.AdminCount(ctx, q.BanStatus, q.SearchNameTerm)
	if err != nil {
		return nil, err
	}
	views := make([]dto.AdminBlogView, 0, len(items))
	for _, b := range items {
		views = append(views, dto.NewAdminBlogView(b))
	}
	page := query.NewPage(q.PageNumber, q.PageSize, views, total)
	return &page, nil
}

// Bind assigns an ownerless blog to userID.
func (s *BlogsService) Bind(ctx context.Context, blogID, userID string) (bool, error) {
	blog, err := s.blogs.AdminGetByID(ctx, blogID)
	if err != nil {
		return false, err
	}
	if blog == nil {
		return false, nil
	}
	if blog.UserID != "" {
		return false, ErrAlreadyBound
	}
	user, err := s.users.GetByIDOrLoginOrEmail(ctx, userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, ErrNotFound
	}
	return s.blogs.Bind(ctx, blogID, user.ID, user.Login)
}

// UpdateBanStatus flips the banned flag on the blog matching id (by blog id or owner id).
// Reactions are untouched; those follow the account-wide ban in UsersService.
func (s *BlogsService) UpdateBanStatus(ctx context.Context, id string, isBanned bool) (bool, error) {
	return s.blogs.UpdateBanStatus(ctx, id, isBanned)
}

func (s *BlogsService) owned(ctx context.Context, ownerID, id string) (*models.Blog, error) {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, ErrNotFound
	}
	if blog.UserID != ownerID {
		return nil, ErrForbidden
	}
	return blog, nil
}
