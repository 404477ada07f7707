package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blogger-platform/cmd/api/handlers"
	"blogger-platform/cmd/api/middleware"
)

// Deps 는 라우터가 엮는 서비스 묶음이다.
type Deps struct {
	Posts      handlers.PostsAPI
	Blogs      handlers.BlogsAPI
	Comments   handlers.CommentsAPI
	AdminUsers handlers.UsersAPI
	Users      handlers.UserLookup
	Tokens     middleware.TokenParser
	Pagination handlers.Pagination
	// Registry 가 nil 이면 prometheus 기본 레지스트리를 쓴다.
	Registry *prometheus.Registry
	// Health 는 /health 에서 호출된다. nil 이면 항상 ok.
	Health func(ctx context.Context) error
}

func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace())

	var reg prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if d.Registry != nil {
		reg, gatherer = d.Registry, d.Registry
	}
	r.Use(middleware.NewHTTPMetrics(reg).Middleware())
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	handlers.ConfigurePagination(d.Pagination)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if d.Health != nil {
			if err := d.Health(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	userAuth := middleware.UserAuthMiddleware(d.Tokens)

	// v1 public routes
	api := r.Group("/api/v1")
	{
		api.GET("/blogs", handlers.ListBlogsHandler(d.Blogs))
		api.GET("/blogs/:blogId", handlers.GetBlogHandler(d.Blogs))
		api.GET("/blogs/:blogId/posts", handlers.ListBlogPostsHandler(d.Posts))

		api.GET("/posts", handlers.ListPostsHandler(d.Posts))
		api.GET("/posts/:postId", handlers.GetPostHandler(d.Posts))
		api.GET("/posts/:postId/comments", handlers.ListPostCommentsHandler(d.Comments))
		api.POST("/posts/:postId/comments", userAuth, handlers.CreatePostCommentHandler(d.Comments))
		api.PUT("/posts/:postId/like-status", userAuth, handlers.UpdatePostLikeStatusHandler(d.Posts))

		api.GET("/comments/:commentId", handlers.GetCommentHandler(d.Comments))
		api.PUT("/comments/:commentId", userAuth, handlers.UpdateCommentHandler(d.Comments))
		api.DELETE("/comments/:commentId", userAuth, handlers.DeleteCommentHandler(d.Comments))
		api.PUT("/comments/:commentId/like-status", userAuth, handlers.UpdateCommentLikeStatusHandler(d.Comments))
	}

	// 블로거 전용
	blogger := api.Group("/blogger", userAuth)
	{
		blogger.GET("/blogs", handlers.ListOwnedBlogsHandler(d.Blogs))
		blogger.POST("/blogs", handlers.CreateBlogHandler(d.Blogs, d.Users))
		blogger.PUT("/blogs/:blogId", handlers.UpdateBlogHandler(d.Blogs))
		blogger.DELETE("/blogs/:blogId", handlers.DeleteBlogHandler(d.Blogs))
		blogger.POST("/blogs/:blogId/posts", handlers.CreateBlogPostHandler(d.Posts))
		blogger.PUT("/blogs/:blogId/posts/:postId", handlers.UpdateBlogPostHandler(d.Posts))
		blogger.DELETE("/blogs/:blogId/posts/:postId", handlers.DeleteBlogPostHandler(d.Posts))
		blogger.GET("/blogs/comments", handlers.ListBloggerCommentsHandler(d.Comments))
		blogger.PUT("/users/:userId/ban", handlers.BanUserForBlogHandler(d.Blogs))
	}

	// super-admin
	sa := api.Group("/sa", middleware.AdminAuthMiddleware(d.Tokens))
	{
		sa.GET("/blogs", handlers.AdminListBlogsHandler(d.Blogs))
		sa.PUT("/blogs/:blogId/bind-with-user/:userId", handlers.AdminBindBlogHandler(d.Blogs))
		sa.PUT("/blogs/:blogId/ban", handlers.AdminBanBlogHandler(d.Blogs))
		sa.PUT("/users/:userId/ban", handlers.AdminBanUserHandler(d.AdminUsers))
	}

	return r
}
