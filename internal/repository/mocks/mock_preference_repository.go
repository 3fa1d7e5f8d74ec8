package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"karirkit/internal/model"
)

type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) Find(ctx context.Context, clientID, resource string) (*model.ColumnPreference, error) {
	args := m.Called(ctx, clientID, resource)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ColumnPreference), args.Error(1)
}

func (m *MockPreferenceRepository) Save(ctx context.Context, pref *model.ColumnPreference) (*model.ColumnPreference, error) {
	args := m.Called(ctx, pref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ColumnPreference), args.Error(1)
}

func (m *MockPreferenceRepository) Delete(ctx context.Context, clientID, resource string) error {
	args := m.Called(ctx, clientID, resource)
	return args.Error(0)
}
