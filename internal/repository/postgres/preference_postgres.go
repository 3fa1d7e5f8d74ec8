package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"karirkit/internal/model"
	"karirkit/internal/repository"
)

// PreferencePostgres is a PostgreSQL implementation of repository.PreferenceRepository.
// Hidden columns are stored as a JSONB array.
type PreferencePostgres struct {
	db *sql.DB
}

// NewPreferencePostgres creates a new PreferencePostgres repository.
func NewPreferencePostgres(db *sql.DB) *PreferencePostgres {
	return &PreferencePostgres{db: db}
}

var _ repository.PreferenceRepository = (*PreferencePostgres)(nil)

// Find fetches the preference for a browser and resource.
func (r *PreferencePostgres) Find(ctx context.Context, clientID, resource string) (*model.ColumnPreference, error) {
	const q = `
		SELECT client_id, resource, hidden, updated_at
		FROM column_preferences
		WHERE client_id = $1 AND resource = $2
	`
	row := r.db.QueryRowContext(ctx, q, clientID, resource)
	p, err := scanPreference(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Save upserts the preference.
func (r *PreferencePostgres) Save(ctx context.Context, pref *model.ColumnPreference) (*model.ColumnPreference, error) {
	hidden := pref.Hidden
	if hidden == nil {
		hidden = []string{}
	}
	raw, err := json.Marshal(hidden)
	if err != nil {
		return nil, fmt.Errorf("encode hidden columns: %w", err)
	}

	const q = `
		INSERT INTO column_preferences (client_id, resource, hidden, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (client_id, resource)
		DO UPDATE SET hidden = EXCLUDED.hidden, updated_at = EXCLUDED.updated_at
		RETURNING client_id, resource, hidden, updated_at
	`
	row := r.db.QueryRowContext(ctx, q, pref.ClientID, pref.Resource, raw, pref.UpdatedAt)
	return scanPreference(row)
}

// Delete removes the preference. A missing row is not an error.
func (r *PreferencePostgres) Delete(ctx context.Context, clientID, resource string) error {
	const q = `DELETE FROM column_preferences WHERE client_id = $1 AND resource = $2`
	_, err := r.db.ExecContext(ctx, q, clientID, resource)
	return err
}

func scanPreference(row *sql.Row) (*model.ColumnPreference, error) {
	var (
		p   model.ColumnPreference
		raw []byte
	)
	if err := row.Scan(&p.ClientID, &p.Resource, &raw, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &p.Hidden); err != nil {
		return nil, fmt.Errorf("decode hidden columns: %w", err)
	}
	if p.Hidden == nil {
		p.Hidden = []string{}
	}
	return &p, nil
}
