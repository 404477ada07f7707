package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogger-platform/models"
)

type BanInfoRepository struct {
	col   *mongo.Collection
	posts *PostRepository
}

func NewBanInfoRepository(db *mongo.Database) *BanInfoRepository {
	return &BanInfoRepository{
		col:   db.Collection("ban_info"),
		posts: NewPostRepository(db),
	}
}

// CheckBanStatus reports whether userID is banned on the blog that owns postID.
// A missing post yields false.
func (r *BanInfoRepository) CheckBanStatus(ctx context.Context, userID, postID string) (bool, error) {
	blogID, err := r.posts.BlogIDOf(ctx, postID)
	if err != nil || blogID == "" {
		return false, err
	}
	n, err := r.col.CountDocuments(ctx, bson.D{
		{Key: "user_id", Value: userID},
		{Key: "blog_id", Value: blogID},
		{Key: "is_banned", Value: true},
	}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Upsert records or lifts a per-blog ban.
func (r *BanInfoRepository) Upsert(ctx context.Context, b models.BanInfo) error {
	set := bson.D{
		{Key: "is_banned", Value: b.IsBanned},
		{Key: "ban_reason", Value: b.BanReason},
	}
	if b.IsBanned {
		date := time.Now().UTC()
		if b.BanDate != nil {
			date = *b.BanDate
		}
		set = append(set, bson.E{Key: "ban_date", Value: date})
	}
	_, err := r.col.UpdateOne(ctx,
		bson.D{{Key: "user_id", Value: b.UserID}, {Key: "blog_id", Value: b.BlogID}},
		bson.D{{Key: "$set", Value: set}},
		options.Update().SetUpsert(true),
	)
	return err
}
