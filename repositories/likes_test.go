package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"blogger-platform/models"
)

func TestLikeRepositoryReaction(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("stored reaction", func(mt *mtest.T) {
		repo := NewLikeRepository(mt.DB)
		l := models.Like{ParentID: "p1", UserID: "u1", Status: models.LikeStatusDislike}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNS, mtest.FirstBatch, toDoc(t, l)))

		s, err := repo.Reaction(ctx, "p1", "u1")
		require.NoError(t, err)
		assert.Equal(t, models.LikeStatusDislike, s)
	})

	mt.Run("no reaction is none", func(mt *mtest.T) {
		repo := NewLikeRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNS, mtest.FirstBatch))

		s, err := repo.Reaction(ctx, "p1", "u1")
		require.NoError(t, err)
		assert.Equal(t, models.LikeStatusNone, s)
	})
}

func TestLikeRepositoryCounts(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("count excludes banned reactions", func(mt *mtest.T) {
		repo := NewLikeRepository(mt.DB)
		mt.AddMockResponses(countResponse(4))

		n, err := repo.CountByStatus(ctx, "p1", models.LikeStatusLike)
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)

		cmd := startedCommand(mt, "aggregate")
		assert.Contains(t, cmd, `"is_banned": false`)
		assert.Contains(t, cmd, `"status": "Like"`)
	})

	mt.Run("newest likes", func(mt *mtest.T) {
		repo := NewLikeRepository(mt.DB)
		now := time.Now().UTC().Truncate(time.Millisecond)
		a := models.Like{ParentID: "p1", UserID: "u2", Login: "two", Status: models.LikeStatusLike, AddedAt: now}
		b := models.Like{ParentID: "p1", UserID: "u1", Login: "one", Status: models.LikeStatusLike, AddedAt: now.Add(-time.Minute)}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNS, mtest.FirstBatch, toDoc(t, a), toDoc(t, b)))

		got, err := repo.Newest(ctx, "p1", 3)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "two", got[0].Login)

		cmd := startedCommand(mt, "find")
		assert.Contains(t, cmd, `"added_at"`)
		assert.Contains(t, cmd, `"is_banned": false`)
	})
}

func TestLikeRepositoryWrites(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("upsert existing reaction", func(mt *mtest.T) {
		repo := NewLikeRepository(mt.DB)
		mt.AddMockResponses(matchedResponse(1))

		ok, err := repo.Upsert(ctx, models.Like{ParentID: "p1", UserID: "u1", Login: "one", Status: models.LikeStatusLike, AddedAt: time.Now().UTC()})
		require.NoError(t, err)
		assert.True(t, ok)

		cmd := startedCommand(mt, "update")
		assert.Contains(t, cmd, `"upsert": true`)
		assert.Contains(t, cmd, `"$setOnInsert"`)
	})

	mt.Run("ban user reactions", func(mt *mtest.T) {
		repo := NewLikeRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bsonE("values", bson.A{"p1", "c7"})),
			matchedResponse(5),
		)

		parents, err := repo.SetBannedForUser(ctx, "u1", true)
		require.NoError(t, err)
		assert.Equal(t, []string{"p1", "c7"}, parents)
		assert.Contains(t, startedCommand(mt, "distinct"), `"user_id": "u1"`)
		assert.Contains(t, startedCommand(mt, "update"), `"is_banned": true`)
	})
}
