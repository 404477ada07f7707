package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"blogger-platform/cache"
	"blogger-platform/cmd/api/auth"
	"blogger-platform/cmd/api/handlers"
	"blogger-platform/cmd/api/router"
	"blogger-platform/config"
	"blogger-platform/db"
	"blogger-platform/internal/logger"
	"blogger-platform/repositories"
	"blogger-platform/services"
)

// @title           Blogger Platform API
// @version         1.0
// @description     Blogs, posts, comments and reactions
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}
	defer func() { _ = db.Disconnect(context.Background()) }()

	jwtm, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		logger.Log.Errorf("failed to initialize JWT manager: %v", err)
		os.Exit(1)
	}

	database := db.Database()
	blogRepo := repositories.NewBlogRepository(database)
	postRepo := repositories.NewPostRepository(database)
	commentRepo := repositories.NewCommentRepository(database)
	likeRepo := repositories.NewLikeRepository(database)
	userRepo := repositories.NewUserRepository(database)
	banRepo := repositories.NewBanInfoRepository(database)

	// redis 는 선택. 주소가 없거나 연결 실패 시 카운트를 매번 DB 에서 센다.
	var counts services.CountsCache
	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis.Addr)
		if err != nil {
			logger.Log.Warnf("redis unavailable, reaction counts are not cached: %v", err)
		} else {
			defer rdb.Close()
			counts = cache.NewReactionCounts(rdb, cfg.Redis.CountsTTL)
		}
	}

	bans := cache.NewCachedBanChecker(banRepo, cfg.BanCache.TTL)
	likesSvc := services.NewLikesService(likeRepo, counts, cfg.Likes.NewestLimit)
	postsSvc := services.NewPostsService(postRepo, blogRepo, likesSvc, bans, userRepo, jwtm)
	blogsSvc := services.NewBlogsService(blogRepo, userRepo, banRepo, bans.Flush)
	usersSvc := services.NewUsersService(userRepo, blogRepo, likesSvc)
	commentsSvc := services.NewCommentsService(commentRepo, postRepo, blogRepo, bans, userRepo, likesSvc, jwtm)

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := router.New(router.Deps{
		Posts:      postsSvc,
		Blogs:      blogsSvc,
		Comments:   commentsSvc,
		AdminUsers: usersSvc,
		Users:      userRepo,
		Tokens:     jwtm,
		Pagination: handlers.Pagination{
			DefaultPageSize: cfg.Pagination.DefaultPageSize,
			MaxPageSize:     cfg.Pagination.MaxPageSize,
		},
		Health: func(ctx context.Context) error {
			return db.Client().Ping(ctx, nil)
		},
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
	}).Handler(engine)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           corsHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Log.Infof("api listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("http server stopped: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("graceful shutdown failed: %v", err)
	}
}
