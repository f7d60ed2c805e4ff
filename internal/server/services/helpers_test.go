package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/contactkeeper/internal/dbx"
	"github.com/dmitrijs2005/contactkeeper/internal/server/auth"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
	"github.com/dmitrijs2005/contactkeeper/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/contactkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/contactkeeper/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newSQLiteStore(t *testing.T) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()
	ctx := context.Background()
	db, m, err := repomanager.Open(ctx, repomanager.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, m.RunMigrations(ctx, db))
	return db, m
}

func newTestServices(t *testing.T) (*UserService, *ContactService, *auth.TokenIssuer) {
	t.Helper()
	db, m := newSQLiteStore(t)
	issuer := auth.NewTokenIssuer([]byte("test-secret"), time.Hour)
	return NewUserService(db, m, auth.NewPasswordHasher(bcrypt.MinCost), issuer), NewContactService(db, m), issuer
}

func strPtr(s string) *string { return &s }

// fakes for error paths

type fakeUsersRepo struct {
	createErr error
	getOut    *models.User
	getErr    error
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetUserByLogin(context.Context, string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeContactsRepo struct {
	err error
}

func (f *fakeContactsRepo) ListByOwner(context.Context, int64) ([]models.Contact, error) {
	return nil, f.err
}
func (f *fakeContactsRepo) Create(context.Context, *models.Contact) (*models.Contact, error) {
	return nil, f.err
}
func (f *fakeContactsRepo) Update(context.Context, *models.Contact) (*models.Contact, error) {
	return nil, f.err
}
func (f *fakeContactsRepo) Delete(context.Context, int64, int64) error { return f.err }

type fakeRepoManager struct {
	u *fakeUsersRepo
	c *fakeContactsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return m.u }
func (m *fakeRepoManager) Contacts(dbx.DBTX) contacts.Repository        { return m.c }

type countingHasher struct {
	hashErr  error
	verifies int
}

func (h *countingHasher) Hash(string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hash", nil
}

func (h *countingHasher) Verify(password, hash string) bool {
	h.verifies++
	return password == "right" && hash == "hash"
}

type failingIssuer struct{}

func (failingIssuer) Issue(int64, string) (string, error) { return "", errIssue }
