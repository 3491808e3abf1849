// Package memory keeps documents in process. It backs the "memory" database
// driver for local runs and the service and API tests.
//
// Documents are stored as BSON so every read returns an independent copy with
// the same millisecond-precision timestamps a MongoDB round trip would give.
package memory

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"bytes"
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type documentRepository[T any, PT domain.DocumentPtr[T]] struct {
	mu    sync.RWMutex
	order []primitive.ObjectID
	docs  map[primitive.ObjectID]bson.Raw
}

// NewDocumentRepository returns an empty in-memory repository.
func NewDocumentRepository[T any, PT domain.DocumentPtr[T]]() repository.DocumentRepository[T] {
	return &documentRepository[T, PT]{docs: make(map[primitive.ObjectID]bson.Raw)}
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (r *documentRepository[T, PT]) Create(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	d := PT(doc)
	if err := d.Validate(); err != nil {
		return primitive.NilObjectID, err
	}
	d.SetID(primitive.NewObjectID())
	d.Touch(now())

	raw, err := bson.Marshal(doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[d.GetID()] = raw
	r.order = append(r.order, d.GetID())
	return d.GetID(), nil
}

func (r *documentRepository[T, PT]) GetByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	r.mu.RLock()
	raw, ok := r.docs[id]
	r.mu.RUnlock()
	if !ok {
		return nil, repository.ErrNotFound
	}

	var doc T
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository[T, PT]) Find(ctx context.Context, q repository.Query) ([]T, error) {
	r.mu.RLock()
	var matched []bson.Raw
	for _, id := range r.order {
		raw := r.docs[id]
		if q.Owner != nil {
			owner, ok := raw.Lookup(q.OwnerField).ObjectIDOK()
			if !ok || owner != *q.Owner {
				continue
			}
		}
		matched = append(matched, raw)
	}
	r.mu.RUnlock()

	if q.SortField != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			c := compareValues(matched[i].Lookup(q.SortField), matched[j].Lookup(q.SortField))
			if q.Descending {
				return c > 0
			}
			return c < 0
		})
	}

	docs := make([]T, len(matched))
	for i, raw := range matched {
		if err := bson.Unmarshal(raw, &docs[i]); err != nil {
			return nil, err
		}
	}
	return docs, nil
}

func (r *documentRepository[T, PT]) Update(ctx context.Context, doc *T) error {
	d := PT(doc)
	if d.GetID() == primitive.NilObjectID {
		return errors.New("document ID is required for update")
	}
	if err := d.Validate(); err != nil {
		return err
	}
	d.Touch(now())

	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[d.GetID()]; !ok {
		return repository.ErrNotFound
	}
	r.docs[d.GetID()] = raw
	return nil
}

func (r *documentRepository[T, PT]) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.docs, id)
	for i, o := range r.order {
		if o == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// compareValues orders the BSON types sort fields can hold. Missing values
// sort first, like MongoDB's null-before-everything rule.
func compareValues(a, b bson.RawValue) int {
	aMissing, bMissing := a.Value == nil, b.Value == nil
	switch {
	case aMissing && bMissing:
		return 0
	case aMissing:
		return -1
	case bMissing:
		return 1
	}

	if at, ok := a.DateTimeOK(); ok {
		if bt, ok := b.DateTimeOK(); ok {
			return cmpInt64(at, bt)
		}
	}
	if as, ok := a.StringValueOK(); ok {
		if bs, ok := b.StringValueOK(); ok {
			switch {
			case as < bs:
				return -1
			case as > bs:
				return 1
			}
			return 0
		}
	}
	if af, ok := number(a); ok {
		if bf, ok := number(b); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			}
			return 0
		}
	}
	return bytes.Compare(a.Value, b.Value)
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func number(v bson.RawValue) (float64, bool) {
	if f, ok := v.DoubleOK(); ok {
		return f, true
	}
	if i, ok := v.Int32OK(); ok {
		return float64(i), true
	}
	if i, ok := v.Int64OK(); ok {
		return float64(i), true
	}
	return 0, false
}
