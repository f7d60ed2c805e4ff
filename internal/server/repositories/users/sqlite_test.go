package users

import (
	"context"
	"database/sql"
	"io/fs"
	"testing"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/server/migrations"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	fsys, err := fs.Sub(migrations.SQLite, "sqlite")
	require.NoError(t, err)
	p, err := goose.NewProvider(database.DialectSQLite3, db, fsys)
	require.NoError(t, err)
	_, err = p.Up(context.Background())
	require.NoError(t, err)

	return db
}

func TestSQLite_CreateAndGet(t *testing.T) {
	repo := NewSQLiteRepository(setupSQLite(t))
	ctx := context.Background()

	u, err := repo.Create(ctx, &models.User{UserName: "alice", Email: "a@x.com", PasswordHash: "h1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := repo.GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, "h1", got.PasswordHash)
	assert.True(t, u.CreatedAt.Equal(got.CreatedAt))
}

func TestSQLite_SequentialIDs(t *testing.T) {
	repo := NewSQLiteRepository(setupSQLite(t))
	ctx := context.Background()

	a, err := repo.Create(ctx, &models.User{UserName: "a", Email: "a@x.com", PasswordHash: "h"})
	require.NoError(t, err)
	b, err := repo.Create(ctx, &models.User{UserName: "b", Email: "b@x.com", PasswordHash: "h"})
	require.NoError(t, err)

	assert.Equal(t, a.ID+1, b.ID)
}

func TestSQLite_DuplicateUsernameOrEmail(t *testing.T) {
	repo := NewSQLiteRepository(setupSQLite(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{UserName: "alice", Email: "a@x.com", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{UserName: "alice", Email: "other@x.com", PasswordHash: "h"})
	require.ErrorIs(t, err, common.ErrDuplicateAccount)

	_, err = repo.Create(ctx, &models.User{UserName: "other", Email: "a@x.com", PasswordHash: "h"})
	require.ErrorIs(t, err, common.ErrDuplicateAccount)

	got, err := repo.GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Email)
}

func TestSQLite_GetUserByLogin_NotFound(t *testing.T) {
	repo := NewSQLiteRepository(setupSQLite(t))

	_, err := repo.GetUserByLogin(context.Background(), "ghost")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSQLite_ClosedDB(t *testing.T) {
	db := setupSQLite(t)
	repo := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	_, err := repo.Create(context.Background(), &models.User{UserName: "x", Email: "x", PasswordHash: "h"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrDuplicateAccount)
}
