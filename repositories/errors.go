package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrDuplicateKey is returned by Create when a unique index rejects the insert.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrCreateFailed is returned by Create for any other insert failure.
	ErrCreateFailed = errors.New("create failed")
)

// classifyInsertError converts a driver error into one of the typed create errors.
func classifyInsertError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	}
	return fmt.Errorf("%w: %v", ErrCreateFailed, err)
}

// hiddenFields strips internal storage fields from every read.
var hiddenFields = bson.D{{Key: "_id", Value: 0}}

// decodeAll drains cur into a slice of T.
func decodeAll[T any](ctx context.Context, cur *mongo.Cursor) ([]T, error) {
	defer cur.Close(ctx)

	results := make([]T, 0)
	for cur.Next(ctx) {
		var v T
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// findOne decodes a single document, mapping ErrNoDocuments to nil, nil.
func findOne[T any](res *mongo.SingleResult) (*T, error) {
	var v T
	if err := res.Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}
