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

var PostSortFields = query.SortFields{
	"createdAt":        "created_at",
	"title":            "title",
	"shortDescription": "short_description",
	"blogName":         "blog_name",
}

type PostRepository struct {
	col   *mongo.Collection
	blogs *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("posts"), blogs: db.Collection("blogs")}
}

// postFilter scopes to blogID. Without a blog scope, posts of banned blogs are excluded;
// a scoped caller has already checked the blog itself.
func (r *PostRepository) postFilter(ctx context.Context, blogID, searchTerm string) (query.Predicate, error) {
	p := query.And(
		query.OwnerScope("blog_id", blogID),
		query.Contains("title", searchTerm),
	)
	if blogID != "" {
		return p, nil
	}
	banned, err := r.bannedBlogIDs(ctx)
	if err != nil {
		return query.Predicate{}, err
	}
	return query.And(p, query.NotIn("blog_id", banned)), nil
}

func (r *PostRepository) bannedBlogIDs(ctx context.Context) ([]string, error) {
	raw, err := r.blogs.Distinct(ctx, "id", bson.D{{Key: query.FieldIsBanned, Value: true}})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// List returns posts of blogID (all visible posts when blogID is empty), sorted and paginated.
func (r *PostRepository) List(ctx context.Context, q query.Params, blogID string) ([]models.Post, error) {
	filter, err := r.postFilter(ctx, blogID, q.SearchNameTerm)
	if err != nil {
		return nil, err
	}
	findOpts := options.Find().
		SetProjection(hiddenFields).
		SetSort(q.Sort(PostSortFields)).
		SetSkip(q.Skip()).
		SetLimit(q.Limit())
	cur, err := r.col.Find(ctx, filter.BSON(), findOpts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Post](ctx, cur)
}

func (r *PostRepository) Count(ctx context.Context, blogID, searchTerm string) (int64, error) {
	filter, err := r.postFilter(ctx, blogID, searchTerm)
	if err != nil {
		return 0, err
	}
	return r.col.CountDocuments(ctx, filter.BSON())
}

// GetByID returns nil, nil when the post does not exist.
func (r *PostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return findOne[models.Post](r.col.FindOne(ctx, bson.D{{Key: "id", Value: id}}, options.FindOne().SetProjection(hiddenFields)))
}

// BlogIDOf returns the blog a post belongs to, or "" when the post is missing.
func (r *PostRepository) BlogIDOf(ctx context.Context, postID string) (string, error) {
	opts := options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 0}, {Key: "blog_id", Value: 1}})
	p, err := findOne[models.Post](r.col.FindOne(ctx, bson.D{{Key: "id", Value: postID}}, opts))
	if err != nil || p == nil {
		return "", err
	}
	return p.BlogID, nil
}

func (r *PostRepository) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return nil, classifyInsertError(err)
	}
	return p, nil
}

func (r *PostRepository) Update(ctx context.Context, id string, in models.PostInput) (bool, error) {
	res, err := r.col.UpdateOne(ctx, bson.D{{Key: "id", Value: id}}, bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: in.Title},
		{Key: "short_description", Value: in.ShortDescription},
		{Key: "content", Value: in.Content},
	}}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "id", Value: id}})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}
