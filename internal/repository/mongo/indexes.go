package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

// EnsureUserIndexes makes email unique. Register depends on it to reject
// concurrent sign-ups with the same address.
func EnsureUserIndexes(ctx context.Context, collection *mongo.Collection) error {
	return createIndexes(ctx, collection, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
}

// EnsurePlanIndexes indexes a diet or workout plan collection by author.
func EnsurePlanIndexes(ctx context.Context, collection *mongo.Collection) error {
	return createIndexes(ctx, collection, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdBy", Value: 1}}},
	})
}

// EnsureProgressIndexes matches the list query: own entries, newest first.
func EnsureProgressIndexes(ctx context.Context, collection *mongo.Collection) error {
	return createIndexes(ctx, collection, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "date", Value: -1}}},
	})
}

// EnsureReminderIndexes matches the list query: own reminders, soonest first.
func EnsureReminderIndexes(ctx context.Context, collection *mongo.Collection) error {
	return createIndexes(ctx, collection, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "date", Value: 1}}},
	})
}

// EnsureIndexes creates the indexes of every collection the server uses,
// one collection per goroutine, and returns the first error.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	steps := []struct {
		collection string
		ensure     func(context.Context, *mongo.Collection) error
	}{
		{UserCollectionName, EnsureUserIndexes},
		{DietPlanCollectionName, EnsurePlanIndexes},
		{WorkoutPlanCollectionName, EnsurePlanIndexes},
		{ProgressCollectionName, EnsureProgressIndexes},
		{ReminderCollectionName, EnsureReminderIndexes},
	}

	var g errgroup.Group
	for _, s := range steps {
		s := s
		g.Go(func() error {
			if err := s.ensure(ctx, db.Collection(s.collection)); err != nil {
				return fmt.Errorf("indexes for %s: %w", s.collection, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func createIndexes(ctx context.Context, collection *mongo.Collection, indexes []mongo.IndexModel) error {
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
