package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgres_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgres(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT value FROM kv_store").
			WithArgs("cart").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("[]"))

		v, ok, err := store.Get(ctx, "cart")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "[]", v)
	})

	t.Run("Missing", func(t *testing.T) {
		mock.ExpectQuery("SELECT value FROM kv_store").
			WithArgs("cart").
			WillReturnError(sql.ErrNoRows)

		_, ok, err := store.Get(ctx, "cart")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT value FROM kv_store").
			WithArgs("cart").
			WillReturnError(errors.New("db down"))

		_, ok, err := store.Get(ctx, "cart")
		assert.Error(t, err)
		assert.False(t, ok)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Set(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgres(db)
	ctx := context.Background()

	t.Run("Upsert", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO kv_store").
			WithArgs("cart", `[{"quantity":1}]`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, store.Set(ctx, "cart", `[{"quantity":1}]`))
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO kv_store").
			WillReturnError(errors.New("db down"))

		assert.Error(t, store.Set(ctx, "cart", "[]"))
	})

	t.Run("EmptyKey", func(t *testing.T) {
		assert.ErrorIs(t, store.Set(ctx, "", "[]"), ErrEmptyKey)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Remove(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM kv_store").
		WithArgs("cart").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, NewPostgres(db).Remove(context.Background(), "cart"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
