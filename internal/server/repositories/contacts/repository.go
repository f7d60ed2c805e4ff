// Package contacts persists contact records. Every statement is scoped by
// the owning user id; rows of other owners are indistinguishable from
// missing rows.
package contacts

import (
	"context"

	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
)

type Repository interface {
	// ListByOwner returns the owner's contacts, most recent first.
	ListByOwner(ctx context.Context, userID int64) ([]models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	// Update rewrites name, email and phone of the row matching both
	// contact.ID and contact.UserID, or returns common.ErrorNotFound.
	Update(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	// Delete removes the owner's row or returns common.ErrorNotFound.
	Delete(ctx context.Context, userID int64, id int64) error
}
