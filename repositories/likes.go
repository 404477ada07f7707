package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogger-platform/models"
)

type LikeRepository struct {
	col *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{col: db.Collection("likes")}
}

// Reaction returns userID's status on parentID, LikeStatusNone when there is none.
func (r *LikeRepository) Reaction(ctx context.Context, parentID, userID string) (models.LikeStatus, error) {
	l, err := findOne[models.Like](r.col.FindOne(ctx, bson.D{
		{Key: "parent_id", Value: parentID},
		{Key: "user_id", Value: userID},
	}, options.FindOne().SetProjection(hiddenFields)))
	if err != nil {
		return models.LikeStatusNone, err
	}
	if l == nil || l.Status == "" {
		return models.LikeStatusNone, nil
	}
	return l.Status, nil
}

// CountByStatus counts reactions of a status, ignoring reactions of banned users.
func (r *LikeRepository) CountByStatus(ctx context.Context, parentID string, status models.LikeStatus) (int64, error) {
	return r.col.CountDocuments(ctx, bson.D{
		{Key: "parent_id", Value: parentID},
		{Key: "status", Value: status},
		{Key: "is_banned", Value: false},
	})
}

// Newest returns up to limit most recent likes on parentID.
func (r *LikeRepository) Newest(ctx context.Context, parentID string, limit int64) ([]models.Like, error) {
	findOpts := options.Find().
		SetProjection(hiddenFields).
		SetSort(bson.D{{Key: "added_at", Value: -1}}).
		SetLimit(limit)
	cur, err := r.col.Find(ctx, bson.D{
		{Key: "parent_id", Value: parentID},
		{Key: "status", Value: models.LikeStatusLike},
		{Key: "is_banned", Value: false},
	}, findOpts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Like](ctx, cur)
}

// Upsert stores l as the single reaction of l.UserID on l.ParentID.
func (r *LikeRepository) Upsert(ctx context.Context, l models.Like) (bool, error) {
	filter := bson.D{
		{Key: "parent_id", Value: l.ParentID},
		{Key: "user_id", Value: l.UserID},
	}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "status", Value: l.Status},
			{Key: "login", Value: l.Login},
			{Key: "added_at", Value: l.AddedAt},
		}},
		{Key: "$setOnInsert", Value: bson.D{{Key: "is_banned", Value: false}}},
	}
	res, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1 || res.UpsertedCount == 1, nil
}

// SetBannedForUser hides or restores every reaction of userID.
// It returns the parent ids userID has reacted to.
func (r *LikeRepository) SetBannedForUser(ctx context.Context, userID string, isBanned bool) ([]string, error) {
	filter := bson.D{{Key: "user_id", Value: userID}}
	raw, err := r.col.Distinct(ctx, "parent_id", filter)
	if err != nil {
		return nil, err
	}
	if _, err := r.col.UpdateMany(ctx, filter, bson.D{
		{Key: "$set", Value: bson.D{{Key: "is_banned", Value: isBanned}}},
	}); err != nil {
		return nil, err
	}

	parents := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			parents = append(parents, id)
		}
	}
	return parents, nil
}
