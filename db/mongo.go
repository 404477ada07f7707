package db

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"blogger-platform/config"
	"blogger-platform/internal/logger"
)

// Collection names.
const (
	CollectionBlogs    = "blogs"
	CollectionPosts    = "posts"
	CollectionComments = "comments"
	CollectionLikes    = "likes"
	CollectionUsers    = "users"
	CollectionBanInfo  = "ban_info"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
)

// Init initializes the global Mongo client and database using config values.
func Init(ctx context.Context) error {
	var initErr error
	clientOnce.Do(func() {
		cfg := config.GetConfig()

		cl, d, err := Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			initErr = err
			return
		}
		client = cl
		db = d
		logger.Log.Infof("MongoDB connected and indexes ensured (db=%s)", cfg.Mongo.Database)
	})
	return initErr
}

// Connect dials uri, pings the primary and ensures indexes on dbName.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cl, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}
	if err := cl.Ping(ctx, readpref.Primary()); err != nil {
		_ = cl.Disconnect(context.Background())
		return nil, nil, err
	}
	d := cl.Database(dbName)
	if err := EnsureIndexes(ctx, d); err != nil {
		_ = cl.Disconnect(context.Background())
		return nil, nil, err
	}
	return cl, d, nil
}

func Client() *mongo.Client     { return client }
func Database() *mongo.Database { return db }

// Disconnect closes the global client if Init succeeded.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

func EnsureIndexes(ctx context.Context, d *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		CollectionBlogs: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetName("uniq_id").SetUnique(true)},
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetName("idx_user_id")},
			{Keys: bson.D{{Key: "is_banned", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("idx_banned_created_at")},
		},
		CollectionPosts: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetName("uniq_id").SetUnique(true)},
			{Keys: bson.D{{Key: "blog_id", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("idx_blog_created_at")},
		},
		CollectionComments: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetName("uniq_id").SetUnique(true)},
			{Keys: bson.D{{Key: "post_id", Value: 1}}, Options: options.Index().SetName("idx_post_id")},
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetName("idx_user_id")},
			{Keys: bson.D{{Key: "blogger_id", Value: 1}}, Options: options.Index().SetName("idx_blogger_id")},
		},
		CollectionLikes: {
			{Keys: bson.D{{Key: "parent_id", Value: 1}, {Key: "user_id", Value: 1}}, Options: options.Index().SetName("uniq_parent_user").SetUnique(true)},
			{Keys: bson.D{{Key: "parent_id", Value: 1}, {Key: "status", Value: 1}, {Key: "added_at", Value: -1}}, Options: options.Index().SetName("idx_parent_status_added_at")},
		},
		CollectionUsers: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetName("uniq_id").SetUnique(true)},
			{Keys: bson.D{{Key: "login", Value: 1}}, Options: options.Index().SetName("uniq_login").SetUnique(true)},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName("uniq_email").SetUnique(true)},
		},
		CollectionBanInfo: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "blog_id", Value: 1}}, Options: options.Index().SetName("uniq_user_blog").SetUnique(true)},
		},
	}

	for name, models := range specs {
		if _, err := d.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
