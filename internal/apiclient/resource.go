package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"karirkit/internal/model"
)

// Resource is the generic REST surface of one API resource:
// GET /path, GET /path/:id, POST /path, PUT /path/:id, DELETE /path/:id
// and DELETE /path/mass-delete.
type Resource[T any] struct {
	c    *Client
	name string
	path string
}

// NewResource binds a resource name (used in metrics) to its API path.
func NewResource[T any](c *Client, name, path string) *Resource[T] {
	return &Resource[T]{c: c, name: name, path: path}
}

// Name returns the resource name.
func (r *Resource[T]) Name() string { return r.name }

func (r *Resource[T]) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}

// List fetches one page of the resource using the given filter parameters.
func (r *Resource[T]) List(ctx context.Context, params url.Values) (*model.Page[T], error) {
	var page model.Page[T]
	if err := r.c.doJSON(ctx, r.name, http.MethodGet, r.path, params, nil, &page); err != nil {
		return nil, err
	}
	if page.Items == nil {
		page.Items = []T{}
	}
	return &page, nil
}

// Get fetches a single entity.
func (r *Resource[T]) Get(ctx context.Context, id string) (*T, error) {
	var out T
	if err := r.c.doJSON(ctx, r.name, http.MethodGet, r.itemPath(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create posts a new entity and returns what the API stored.
func (r *Resource[T]) Create(ctx context.Context, payload any) (*T, error) {
	var out T
	if err := r.c.doJSON(ctx, r.name, http.MethodPost, r.path, nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces an entity.
func (r *Resource[T]) Update(ctx context.Context, id string, payload any) (*T, error) {
	var out T
	if err := r.c.doJSON(ctx, r.name, http.MethodPut, r.itemPath(id), nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an entity.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.c.doJSON(ctx, r.name, http.MethodDelete, r.itemPath(id), nil, nil, nil)
}

type massDeleteBody struct {
	IDs []string `json:"ids"`
}

// MassDelete removes several entities in a single call.
func (r *Resource[T]) MassDelete(ctx context.Context, ids []string) error {
	return r.c.doJSON(ctx, r.name, http.MethodDelete, r.path+"/mass-delete", nil, massDeleteBody{IDs: ids}, nil)
}
