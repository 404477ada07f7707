package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogger-platform/models"
	"blogger-platform/query"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// GetByIDOrLoginOrEmail matches value against id, login and email.
func (r *UserRepository) GetByIDOrLoginOrEmail(ctx context.Context, value string) (*models.User, error) {
	filter := query.Or(
		query.Eq("id", value),
		query.Eq("login", value),
		query.Eq("email", value),
	).BSON()
	return findOne[models.User](r.col.FindOne(ctx, filter, options.FindOne().SetProjection(hiddenFields)))
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if _, err := r.col.InsertOne(ctx, u); err != nil {
		return nil, classifyInsertError(err)
	}
	return u, nil
}

// UpdateBanStatus sets the account-wide ban of a user. Unbanning clears reason and date.
func (r *UserRepository) UpdateBanStatus(ctx context.Context, id string, isBanned bool, reason string) (bool, error) {
	var update bson.D
	if isBanned {
		update = bson.D{{Key: "$set", Value: bson.D{
			{Key: "is_banned", Value: true},
			{Key: "ban_reason", Value: reason},
			{Key: "ban_date", Value: time.Now().UTC()},
		}}}
	} else {
		update = bson.D{
			{Key: "$set", Value: bson.D{{Key: "is_banned", Value: false}}},
			{Key: "$unset", Value: bson.D{{Key: "ban_reason", Value: ""}, {Key: "ban_date", Value: ""}}},
		}
	}
	res, err := r.col.UpdateOne(ctx, bson.D{{Key: "id", Value: id}}, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}
