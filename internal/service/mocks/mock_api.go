package mocks

import (
	"context"
	"net/url"

	"github.com/stretchr/testify/mock"

	"karirkit/internal/model"
)

// MockAPI is a testify mock of service.API for any entity type.
type MockAPI[T any] struct {
	mock.Mock
	ResourceName string
}

func (m *MockAPI[T]) Name() string { return m.ResourceName }

func (m *MockAPI[T]) List(ctx context.Context, params url.Values) (*model.Page[T], error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page[T]), args.Error(1)
}

func (m *MockAPI[T]) Get(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockAPI[T]) Create(ctx context.Context, payload any) (*T, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockAPI[T]) Update(ctx context.Context, id string, payload any) (*T, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockAPI[T]) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAPI[T]) MassDelete(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}
