package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karirkit/internal/model"
	"karirkit/internal/repository"
)

var prefColumns = []string{"client_id", "resource", "hidden", "updated_at"}

func TestPreferencePostgres_Find(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPreferencePostgres(db)
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM column_preferences WHERE client_id = \\$1 AND resource = \\$2").
			WithArgs("cid", "blogs").
			WillReturnRows(sqlmock.NewRows(prefColumns).AddRow("cid", "blogs", []byte(`["views_count"]`), now))

		p, err := repo.Find(ctx, "cid", "blogs")

		require.NoError(t, err)
		assert.Equal(t, []string{"views_count"}, p.Hidden)
		assert.Equal(t, "blogs", p.Resource)
	})

	t.Run("empty array", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM column_preferences").
			WithArgs("cid", "jobs").
			WillReturnRows(sqlmock.NewRows(prefColumns).AddRow("cid", "jobs", []byte(`null`), now))

		p, err := repo.Find(ctx, "cid", "jobs")

		require.NoError(t, err)
		assert.NotNil(t, p.Hidden)
		assert.Empty(t, p.Hidden)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM column_preferences").
			WithArgs("cid", "users").
			WillReturnError(sql.ErrNoRows)

		p, err := repo.Find(ctx, "cid", "users")

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, p)
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM column_preferences").
			WithArgs("cid", "users").
			WillReturnError(errors.New("connection reset"))

		_, err := repo.Find(ctx, "cid", "users")

		assert.EqualError(t, err, "connection reset")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferencePostgres_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPreferencePostgres(db)
	now := time.Now().UTC()
	pref := &model.ColumnPreference{ClientID: "cid", Resource: "companies", Hidden: nil, UpdatedAt: now}

	mock.ExpectQuery("INSERT INTO column_preferences (.+) ON CONFLICT").
		WithArgs("cid", "companies", []byte(`[]`), now).
		WillReturnRows(sqlmock.NewRows(prefColumns).AddRow("cid", "companies", []byte(`[]`), now))

	saved, err := repo.Save(context.Background(), pref)

	require.NoError(t, err)
	assert.Empty(t, saved.Hidden)
	assert.Equal(t, now, saved.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferencePostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPreferencePostgres(db)

	mock.ExpectExec("DELETE FROM column_preferences WHERE client_id = \\$1 AND resource = \\$2").
		WithArgs("cid", "blogs").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), "cid", "blogs"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
