package client

import (
	"context"

	"github.com/dmitrijs2005/contactkeeper/internal/client/models"
)

type Client interface {
	Register(ctx context.Context, username, email, password string) (*models.Session, error)
	Login(ctx context.Context, username, password string) (*models.Session, error)
	Logout()
	LoggedIn() bool
	Ping(ctx context.Context) error
	ListContacts(ctx context.Context) ([]models.Contact, error)
	CreateContact(ctx context.Context, in models.ContactInput) (*models.Contact, error)
	UpdateContact(ctx context.Context, id int64, in models.ContactInput) (*models.Contact, error)
	DeleteContact(ctx context.Context, id int64) error
}
