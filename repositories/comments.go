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

var CommentSortFields = query.SortFields{
	"createdAt": "created_at",
	"content":   "content",
	"userLogin": "user_login",
}

type CommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{col: db.Collection("comments")}
}

// commentScope matches id against the post, author and blogger fields at once.
func commentScope(id string) query.Predicate {
	return query.Or(
		query.Eq("post_id", id),
		query.Eq("user_id", id),
		query.Eq("blogger_id", id),
	)
}

// List returns comments where post_id, user_id or blogger_id equals id.
func (r *CommentRepository) List(ctx context.Context, q query.Params, id string) ([]models.Comment, error) {
	findOpts := options.Find().
		SetProjection(hiddenFields).
		SetSort(q.Sort(CommentSortFields)).
		SetSkip(q.Skip()).
		SetLimit(q.Limit())
	cur, err := r.col.Find(ctx, commentScope(id).BSON(), findOpts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Comment](ctx, cur)
}

func (r *CommentRepository) Count(ctx context.Context, id string) (int64, error) {
	return r.col.CountDocuments(ctx, commentScope(id).BSON())
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	return findOne[models.Comment](r.col.FindOne(ctx, bson.D{{Key: "id", Value: id}}, options.FindOne().SetProjection(hiddenFields)))
}

func (r *CommentRepository) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return nil, classifyInsertError(err)
	}
	return c, nil
}

// Update replaces the content. Matching with unchanged content still counts as success.
func (r *CommentRepository) Update(ctx context.Context, id, content string) (bool, error) {
	res, err := r.col.UpdateOne(ctx, bson.D{{Key: "id", Value: id}}, bson.D{{Key: "$set", Value: bson.D{
		{Key: "content", Value: content},
	}}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "id", Value: id}})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}
