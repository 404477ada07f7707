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

// BlogSortFields are the sortable blog fields.
var BlogSortFields = query.SortFields{
	"createdAt":   "created_at",
	"name":        "name",
	"description": "description",
	"websiteUrl":  "website_url",
}

type BlogRepository struct {
	col *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{col: db.Collection("blogs")}
}

// publicBlogFilter is owner scope AND name search AND visible.
func publicBlogFilter(ownerID, searchNameTerm string) query.Predicate {
	return query.And(
		query.OwnerScope("user_id", ownerID),
		query.Contains("name", searchNameTerm),
		query.Visible(),
	)
}

func adminBlogFilter(status query.BanStatus, searchNameTerm string) query.Predicate {
	return query.And(
		query.Contains("name", searchNameTerm),
		query.BanStatusFilter(status),
	)
}

// List returns visible blogs, optionally scoped to an owner.
func (r *BlogRepository) List(ctx context.Context, q query.Params, ownerID string) ([]models.Blog, error) {
	return r.find(ctx, publicBlogFilter(ownerID, q.SearchNameTerm), q)
}

// Count counts visible blogs with the same predicate as List.
func (r *BlogRepository) Count(ctx context.Context, ownerID, searchNameTerm string) (int64, error) {
	return r.col.CountDocuments(ctx, publicBlogFilter(ownerID, searchNameTerm).BSON())
}

// AdminList filters by q.BanStatus only; banned blogs are included for BanStatusAll.
func (r *BlogRepository) AdminList(ctx context.Context, q query.Params) ([]models.Blog, error) {
	return r.find(ctx, adminBlogFilter(q.BanStatus, q.SearchNameTerm), q)
}

func (r *BlogRepository) AdminCount(ctx context.Context, status query.BanStatus, searchNameTerm string) (int64, error) {
	return r.col.CountDocuments(ctx, adminBlogFilter(status, searchNameTerm).BSON())
}

func (r *BlogRepository) find(ctx context.Context, p query.Predicate, q query.Params) ([]models.Blog, error) {
	findOpts := options.Find().
		SetProjection(hiddenFields).
		SetSort(q.Sort(BlogSortFields)).
		SetSkip(q.Skip()).
		SetLimit(q.Limit())
	cur, err := r.col.Find(ctx, p.BSON(), findOpts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Blog](ctx, cur)
}

// GetByID returns a visible blog, or nil when missing or banned.
func (r *BlogRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	filter := query.And(query.Eq("id", id), query.Visible()).BSON()
	return findOne[models.Blog](r.col.FindOne(ctx, filter, options.FindOne().SetProjection(hiddenFields)))
}

// AdminGetByID ignores the banned flag.
func (r *BlogRepository) AdminGetByID(ctx context.Context, id string) (*models.Blog, error) {
	return findOne[models.Blog](r.col.FindOne(ctx, bson.D{{Key: "id", Value: id}}, options.FindOne().SetProjection(hiddenFields)))
}

// Create inserts b. On failure it returns nil and an error wrapping ErrDuplicateKey or ErrCreateFailed.
func (r *BlogRepository) Create(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	if _, err := r.col.InsertOne(ctx, b); err != nil {
		return nil, classifyInsertError(err)
	}
	return b, nil
}

// Bind assigns an owner to a blog.
func (r *BlogRepository) Bind(ctx context.Context, id, userID, userLogin string) (bool, error) {
	res, err := r.col.UpdateOne(ctx, bson.D{{Key: "id", Value: id}}, bson.D{{Key: "$set", Value: bson.D{
		{Key: "user_id", Value: userID},
		{Key: "user_login", Value: userLogin},
	}}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

// Update sets the owner-editable fields. It reports whether exactly one blog matched.
func (r *BlogRepository) Update(ctx context.Context, id string, in models.BlogInput) (bool, error) {
	res, err := r.col.UpdateOne(ctx, bson.D{{Key: "id", Value: id}}, bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: in.Name},
		{Key: "description", Value: in.Description},
		{Key: "website_url", Value: in.WebsiteURL},
	}}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

// UpdateBanStatus matches a blog by its own id OR its owner's id.
// If a blog id ever equals some owner's user id, the first match wins.
func (r *BlogRepository) UpdateBanStatus(ctx context.Context, id string, isBanned bool) (bool, error) {
	filter := query.Or(query.Eq("id", id), query.Eq("user_id", id)).BSON()

	set := bson.D{{Key: "is_banned", Value: isBanned}}
	update := bson.D{}
	if isBanned {
		set = append(set, bson.E{Key: "ban_date", Value: time.Now().UTC()})
		update = append(update, bson.E{Key: "$set", Value: set})
	} else {
		update = append(update,
			bson.E{Key: "$set", Value: set},
			bson.E{Key: "$unset", Value: bson.D{{Key: "ban_date", Value: ""}}},
		)
	}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "id", Value: id}})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}
