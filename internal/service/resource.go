package service

import (
	"context"
	"fmt"
	"net/url"

	"karirkit/internal/apiclient"
	"karirkit/internal/cache"
	"karirkit/internal/form"
	"karirkit/internal/listing"
	"karirkit/internal/logging"
	"karirkit/internal/model"
)

// API is the REST surface of one resource. *apiclient.Resource satisfies it.
type API[T any] interface {
	Name() string
	List(ctx context.Context, params url.Values) (*model.Page[T], error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, payload any) (*T, error)
	Update(ctx context.Context, id string, payload any) (*T, error)
	Delete(ctx context.Context, id string) error
	MassDelete(ctx context.Context, ids []string) error
}

// Normalizer is implemented by payloads that derive fields before validation
// (for example a slug generated from the title).
type Normalizer interface {
	Normalize()
}

// ResourceService runs the form and table flows of one resource:
// reads go through the query cache, writes validate first and invalidate the
// cache on success.
type ResourceService[T any] struct {
	api     API[T]
	cache   *cache.Cache
	log     logging.Logger
	related []string
}

// NewResourceService wires a resource API to the shared cache.
func NewResourceService[T any](api API[T], c *cache.Cache, log logging.Logger) *ResourceService[T] {
	if log == nil {
		log = logging.Nop()
	}
	return &ResourceService[T]{api: api, cache: c, log: log.With("resource", api.Name())}
}

// Invalidating adds resources whose cached reads show this resource's data
// (another screen over the same backend entity, or an embedding parent).
// Their entries are dropped after every successful write.
func (s *ResourceService[T]) Invalidating(names ...string) *ResourceService[T] {
	for _, n := range names {
		if n != "" && n != s.Name() {
			s.related = append(s.related, n)
		}
	}
	return s
}

// Name is the resource name.
func (s *ResourceService[T]) Name() string { return s.api.Name() }

func (s *ResourceService[T]) scope(ctx context.Context) string {
	return cache.Scope(apiclient.TokenFrom(ctx))
}

// List returns the page described by st.
func (s *ResourceService[T]) List(ctx context.Context, st listing.State) (*model.Page[T], error) {
	params := st.Params()
	key := cache.Key(s.Name(), s.scope(ctx), params)
	return cache.Get(ctx, s.cache, s.Name(), key, func(ctx context.Context) (*model.Page[T], error) {
		return s.api.List(ctx, params)
	})
}

// Get returns a single entity.
func (s *ResourceService[T]) Get(ctx context.Context, id string) (*T, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	key := cache.Key(s.Name(), s.scope(ctx), url.Values{"id": {id}})
	item, err := cache.Get(ctx, s.cache, s.Name(), key, func(ctx context.Context) (*T, error) {
		return s.api.Get(ctx, id)
	})
	if err != nil {
		return nil, s.translate(err)
	}
	return item, nil
}

// Create validates payload and posts it. The API is not called when local
// validation fails.
func (s *ResourceService[T]) Create(ctx context.Context, payload any) (*T, error) {
	if err := s.check(payload); err != nil {
		return nil, err
	}
	item, err := s.api.Create(ctx, payload)
	if err != nil {
		return nil, s.translate(err)
	}
	s.invalidate(ctx, "create")
	return item, nil
}

// Update validates payload and replaces entity id.
func (s *ResourceService[T]) Update(ctx context.Context, id string, payload any) (*T, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := s.check(payload); err != nil {
		return nil, err
	}
	item, err := s.api.Update(ctx, id, payload)
	if err != nil {
		return nil, s.translate(err)
	}
	s.invalidate(ctx, "update")
	return item, nil
}

// Delete removes one entity with exactly one API call.
func (s *ResourceService[T]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.api.Delete(ctx, id); err != nil {
		return s.translate(err)
	}
	s.invalidate(ctx, "delete")
	return nil
}

// MassDelete removes every id with exactly one API call.
func (s *ResourceService[T]) MassDelete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return ErrNothingSelected
	}
	if err := s.api.MassDelete(ctx, ids); err != nil {
		return s.translate(err)
	}
	s.invalidate(ctx, "mass_delete", "count", len(ids))
	return nil
}

func (s *ResourceService[T]) check(payload any) error {
	if payload == nil {
		return fmt.Errorf("%s: nil payload", s.Name())
	}
	if n, ok := payload.(Normalizer); ok {
		n.Normalize()
	}
	if errs := form.Validate(payload); !errs.Empty() {
		return &ValidationError{Fields: errs}
	}
	return nil
}

func (s *ResourceService[T]) translate(err error) error {
	if fields := form.FromAPIError(err); fields != nil {
		return &ValidationError{Fields: fields, Remote: true}
	}
	if apiclient.IsNotFound(err) {
		return fmt.Errorf("%s: %w", s.Name(), ErrNotFound)
	}
	return err
}

func (s *ResourceService[T]) invalidate(ctx context.Context, op string, args ...any) {
	n := s.cache.Invalidate(s.Name())
	for _, r := range s.related {
		n += s.cache.Invalidate(r)
	}
	s.log.Info(ctx, "resource mutated", append([]any{"op", op, "invalidated", n}, args...)...)
}
