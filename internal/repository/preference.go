// Package repository contains data access abstractions. Implementations live
// in subpackages (postgres, memory).
package repository

import (
	"context"
	"errors"

	"karirkit/internal/model"
)

// ErrNotFound is returned when no row matches.
var ErrNotFound = errors.New("not found")

// PreferenceRepository persists per-browser column visibility preferences.
// No business logic here, strictly persistence operations.
type PreferenceRepository interface {
	// Find returns the preference of clientID for resource, or ErrNotFound.
	Find(ctx context.Context, clientID, resource string) (*model.ColumnPreference, error)

	// Save inserts or replaces the preference and returns the stored row.
	Save(ctx context.Context, pref *model.ColumnPreference) (*model.ColumnPreference, error)

	// Delete drops the preference. Deleting a missing row is not an error.
	Delete(ctx context.Context, clientID, resource string) error
}
