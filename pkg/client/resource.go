package client

import (
	"context"
	"net/http"
	"net/url"
)

// Resource is one collection endpoint such as /api/diets.
type Resource[T any] struct {
	client *Client
	path   string
	// cached collections are served from Cache after the first List.
	cached bool
}

// List returns the collection, from the cache when this resource is cached
// and a copy is present.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	if r.cached {
		var items []T
		if r.client.cache.Load(r.client.principal(), r.path, &items) {
			return items, nil
		}
	}
	return r.fetch(ctx)
}

// Refresh refetches the collection and, for cached resources, stores it.
func (r *Resource[T]) Refresh(ctx context.Context) ([]T, error) {
	return r.fetch(ctx)
}

func (r *Resource[T]) Get(ctx context.Context, id string) (*T, error) {
	var item T
	if err := r.client.do(ctx, http.MethodGet, r.itemPath(id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create posts body, which may be a T or any other JSON-encodable value.
func (r *Resource[T]) Create(ctx context.Context, body any) (*T, error) {
	var item T
	if err := r.client.do(ctx, http.MethodPost, r.path, body, &item); err != nil {
		return nil, err
	}
	r.rewrite(ctx)
	return &item, nil
}

// Update sends body as the change set. Zero and empty values in it leave
// the stored field alone; use a patch type with omitempty fields.
func (r *Resource[T]) Update(ctx context.Context, id string, body any) (*T, error) {
	var item T
	if err := r.client.do(ctx, http.MethodPut, r.itemPath(id), body, &item); err != nil {
		return nil, err
	}
	r.rewrite(ctx)
	return &item, nil
}

func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	if err := r.client.do(ctx, http.MethodDelete, r.itemPath(id), nil, nil); err != nil {
		return err
	}
	r.rewrite(ctx)
	return nil
}

func (r *Resource[T]) fetch(ctx context.Context) ([]T, error) {
	principal := r.client.principal()
	var items []T
	if err := r.client.do(ctx, http.MethodGet, r.path, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	if r.cached {
		if err := r.client.cache.Store(principal, r.path, items); err != nil {
			r.client.cache.Drop(principal, r.path)
		}
	}
	return items, nil
}

// rewrite replaces the cached collection after a mutation. When the refetch
// fails the entry is dropped so the next List goes to the server.
func (r *Resource[T]) rewrite(ctx context.Context) {
	if !r.cached {
		return
	}
	if _, err := r.fetch(ctx); err != nil {
		r.client.cache.Drop(r.client.principal(), r.path)
	}
}

func (r *Resource[T]) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}
