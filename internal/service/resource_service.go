package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResourceKind describes how one resource kind plugs into the shared
// create/list/get/update/delete contract.
type ResourceKind struct {
	// Name is used in messages: "<Name> not found", "<Name> removed".
	Name string
	// OwnerField is the stored field holding the owning principal.
	OwnerField string
	// PrivateReads scopes list (always) and get (when ownership is enforced)
	// to the caller. Plans are readable by anyone; progress and reminders
	// are not.
	PrivateReads bool
	SortField    string
	Descending   bool
}

// ResourceService is the shared contract, instantiated once per kind.
// principal is the authenticated caller, or NilObjectID on public routes.
type ResourceService[T any] interface {
	Kind() ResourceKind
	Create(ctx context.Context, principal primitive.ObjectID, doc *T) (*T, error)
	List(ctx context.Context, principal primitive.ObjectID) ([]T, error)
	Get(ctx context.Context, principal, id primitive.ObjectID) (*T, error)
	// Update loads the document, lets patch change it in place and saves it.
	Update(ctx context.Context, principal, id primitive.ObjectID, patch func(*T)) (*T, error)
	Delete(ctx context.Context, principal, id primitive.ObjectID) error
}

type resourceService[T any, PT domain.DocumentPtr[T]] struct {
	repo             repository.DocumentRepository[T]
	kind             ResourceKind
	enforceOwnership bool
}

// NewResourceService wires a repository to the shared contract.
//
// With enforceOwnership off, any authenticated caller may fetch, change or
// remove any document by ID; only listing is scoped. With it on, documents
// owned by someone else behave as if they did not exist.
func NewResourceService[T any, PT domain.DocumentPtr[T]](repo repository.DocumentRepository[T], kind ResourceKind, enforceOwnership bool) ResourceService[T] {
	return &resourceService[T, PT]{
		repo:             repo,
		kind:             kind,
		enforceOwnership: enforceOwnership,
	}
}

func (s *resourceService[T, PT]) Kind() ResourceKind {
	return s.kind
}

// Create attaches the principal as owner when there is one and persists doc.
func (s *resourceService[T, PT]) Create(ctx context.Context, principal primitive.ObjectID, doc *T) (*T, error) {
	if !principal.IsZero() {
		PT(doc).SetOwnerID(principal)
	}
	if _, err := s.repo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *resourceService[T, PT]) List(ctx context.Context, principal primitive.ObjectID) ([]T, error) {
	q := repository.Query{
		OwnerField: s.kind.OwnerField,
		SortField:  s.kind.SortField,
		Descending: s.kind.Descending,
	}
	if s.kind.PrivateReads {
		q.Owner = &principal
	}
	return s.repo.Find(ctx, q)
}

func (s *resourceService[T, PT]) Get(ctx context.Context, principal, id primitive.ObjectID) (*T, error) {
	return s.load(ctx, principal, id, s.kind.PrivateReads)
}

func (s *resourceService[T, PT]) Update(ctx context.Context, principal, id primitive.ObjectID, patch func(*T)) (*T, error) {
	doc, err := s.load(ctx, principal, id, true)
	if err != nil {
		return nil, err
	}

	owner := PT(doc).OwnerID()
	patch(doc)
	// The patch must not move the document or hand it to someone else.
	PT(doc).SetID(id)
	PT(doc).SetOwnerID(owner)

	if err = s.repo.Update(ctx, doc); err != nil {
		return nil, s.translate(err)
	}
	return doc, nil
}

func (s *resourceService[T, PT]) Delete(ctx context.Context, principal, id primitive.ObjectID) error {
	if _, err := s.load(ctx, principal, id, true); err != nil {
		return err
	}
	return s.translate(s.repo.Delete(ctx, id))
}

// load fetches by ID. ownerOnly applies the ownership rule when it is enforced.
func (s *resourceService[T, PT]) load(ctx context.Context, principal, id primitive.ObjectID, ownerOnly bool) (*T, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.translate(err)
	}
	if s.enforceOwnership && ownerOnly && PT(doc).OwnerID() != principal {
		return nil, s.notFound()
	}
	return doc, nil
}

func (s *resourceService[T, PT]) notFound() error {
	return &NotFoundError{Resource: s.kind.Name}
}

func (s *resourceService[T, PT]) translate(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return s.notFound()
	}
	return err
}
