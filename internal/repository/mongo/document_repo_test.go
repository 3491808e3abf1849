package mongo

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestDocumentRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	ns := "fitness.reminders"

	mt.Run("create assigns id and timestamps", func(mt *mtest.T) {
		repo := NewMongoDocumentRepository[domain.Reminder](mt.DB, ReminderCollectionName)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		r := &domain.Reminder{User: primitive.NewObjectID(), Title: "Gym", Date: time.Now()}
		id, err := repo.Create(ctx, r)
		require.NoError(mt, err)
		assert.Equal(mt, r.ID, id)
		assert.False(mt, r.CreatedAt.IsZero())
		assert.Equal(mt, r.CreatedAt, r.UpdatedAt)
	})

	mt.Run("create rejects invalid document without a round trip", func(mt *mtest.T) {
		repo := NewMongoDocumentRepository[domain.Reminder](mt.DB, ReminderCollectionName)

		_, err := repo.Create(ctx, &domain.Reminder{})
		var verr *domain.ValidationError
		assert.ErrorAs(mt, err, &verr)
	})

	mt.Run("get by id", func(mt *mtest.T) {
		repo := NewMongoDocumentRepository[domain.Reminder](mt.DB, ReminderCollectionName)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "title", Value: "Gym"},
			{Key: "completed", Value: true},
		}))

		r, err := repo.GetByID(ctx, id)
		require.NoError(mt, err)
		assert.Equal(mt, id, r.ID)
		assert.Equal(mt, "Gym", r.Title)
		assert.True(mt, r.Completed)
	})

	mt.Run("get by id not found", func(mt *mtest.T) {
		repo := NewMongoDocumentRepository[domain.Reminder](mt.DB, ReminderCollectionName)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.GetByID(ctx, primitive.NewObjectID())
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("find returns empty slice, not nil", func(mt *mtest.T) {
		repo := NewMongoDocumentRepository[domain.Reminder](mt.DB, ReminderCollectionName)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		owner := primitive.NewObjectID()
		docs, err := repo.Find(ctx, repository.Query{OwnerField: "user", Owner: &owner, SortField: "date"})
		require.NoError(mt, err)
		assert.NotNil(mt, docs)
		assert.Empty(mt, docs)
	})

	mt.Run("find decodes documents", func(mt *mtest.T) {
		repo := NewMongoDocumentRepository[domain.Reminder](mt.DB, ReminderCollectionName)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "a"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "b"}},
		))

		docs, err := repo.Find(ctx, repository.Query{})
		require.NoError(mt, err)
		require.Len(mt, docs, 2)
		assert.Equal(mt, "a", docs[0].Title)
		assert.Equal(mt, "b", docs[1].Title)
	})

	mt.Run("update missing document", func(mt *mtest.T) {
		repo := NewMongoDocumentRepository[domain.Reminder](mt.DB, ReminderCollectionName)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}})

		r := &domain.Reminder{User: primitive.NewObjectID(), Title: "Gym", Date: time.Now()}
		r.ID = primitive.NewObjectID()
		assert.ErrorIs(mt, repo.Update(ctx, r), repository.ErrNotFound)
	})

	mt.Run("update refreshes updatedAt", func(mt *mtest.T) {
		repo := NewMongoDocumentRepository[domain.Reminder](mt.DB, ReminderCollectionName)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}, {Key: "nModified", Value: 1}})

		created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		r := &domain.Reminder{User: primitive.NewObjectID(), Title: "Gym", Date: time.Now()}
		r.ID = primitive.NewObjectID()
		r.CreatedAt, r.UpdatedAt = created, created

		require.NoError(mt, repo.Update(ctx, r))
		assert.Equal(mt, created, r.CreatedAt)
		assert.True(mt, r.UpdatedAt.After(created))
	})

	mt.Run("update requires id", func(mt *mtest.T) {
		repo := NewMongoDocumentRepository[domain.Reminder](mt.DB, ReminderCollectionName)
		assert.Error(mt, repo.Update(ctx, &domain.Reminder{}))
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewMongoDocumentRepository[domain.Reminder](mt.DB, ReminderCollectionName)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}})
		assert.NoError(mt, repo.Delete(ctx, primitive.NewObjectID()))
	})

	mt.Run("delete missing document", func(mt *mtest.T) {
		repo := NewMongoDocumentRepository[domain.Reminder](mt.DB, ReminderCollectionName)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}})
		assert.ErrorIs(mt, repo.Delete(ctx, primitive.NewObjectID()), repository.ErrNotFound)
	})
}

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("duplicate email", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := repo.Create(ctx, &domain.User{Name: "Ann", Email: "ann@example.com", PasswordHash: "hash"})
		assert.ErrorIs(mt, err, repository.ErrDuplicateEmail)
	})

	mt.Run("get by email not found", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "fitness.users", mtest.FirstBatch))

		_, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("get by ids with no ids skips the query", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		users, err := repo.GetByIDs(ctx, nil)
		require.NoError(mt, err)
		assert.Empty(mt, users)
	})
}
