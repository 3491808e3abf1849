package mongo

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names, one per resource kind.
const (
	DietPlanCollectionName    = "dietplans"
	WorkoutPlanCollectionName = "workoutplans"
	ProgressCollectionName    = "progresses"
	ReminderCollectionName    = "reminders"
)

// mongoDocumentRepository implements repository.DocumentRepository for any
// resource kind stored as one document per value.
type mongoDocumentRepository[T any, PT domain.DocumentPtr[T]] struct {
	collection *mongo.Collection
}

// NewMongoDocumentRepository creates a repository over the named collection.
func NewMongoDocumentRepository[T any, PT domain.DocumentPtr[T]](db *mongo.Database, collectionName string) repository.DocumentRepository[T] {
	return &mongoDocumentRepository[T, PT]{
		collection: db.Collection(collectionName),
	}
}

// now is truncated to what BSON datetimes can hold so the value returned to
// the caller equals the stored one.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Create validates and inserts a new document, assigning its ID and timestamps.
func (r *mongoDocumentRepository[T, PT]) Create(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	d := PT(doc)
	if err := d.Validate(); err != nil {
		return primitive.NilObjectID, err
	}

	d.SetID(primitive.NewObjectID())
	d.Touch(now())

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single document by its ID.
func (r *mongoDocumentRepository[T, PT]) GetByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	var doc T
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// Find returns every document matching q. The result is never nil.
func (r *mongoDocumentRepository[T, PT]) Find(ctx context.Context, q repository.Query) ([]T, error) {
	filter := bson.M{}
	if q.Owner != nil {
		filter[q.OwnerField] = *q.Owner
	}

	findOptions := options.Find()
	if q.SortField != "" {
		dir := 1
		if q.Descending {
			dir = -1
		}
		findOptions.SetSort(bson.D{{Key: q.SortField, Value: dir}})
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

// Update validates and replaces the stored document, refreshing UpdatedAt.
// The ID and CreatedAt are carried over from doc unchanged.
func (r *mongoDocumentRepository[T, PT]) Update(ctx context.Context, doc *T) error {
	d := PT(doc)
	if d.GetID() == primitive.NilObjectID {
		return errors.New("document ID is required for update")
	}
	if err := d.Validate(); err != nil {
		return err
	}
	d.Touch(now())

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": d.GetID()}, doc)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a document permanently.
func (r *mongoDocumentRepository[T, PT]) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
