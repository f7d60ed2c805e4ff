package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
	"github.com/dmitrijs2005/contactkeeper/internal/server/repositories/repomanager"
)

// ContactInput is the writable part of a contact.
type ContactInput struct {
	Name  string
	Email *string
	Phone *string
}

// ContactService manages contacts on behalf of an authenticated owner. Every
// operation takes the owner id from the verified identity, never from input.
type ContactService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewContactService(db *sql.DB, m repomanager.RepositoryManager) *ContactService {
	return &ContactService{db: db, repomanager: m}
}

// List returns the owner's contacts, newest first.
func (s *ContactService) List(ctx context.Context, ownerID int64) ([]models.Contact, error) {
	items, err := s.repomanager.Contacts(s.db).ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing contacts: %w", err)
	}
	return items, nil
}

func (s *ContactService) Create(ctx context.Context, ownerID int64, in ContactInput) (*models.Contact, error) {
	c, err := buildContact(ownerID, in)
	if err != nil {
		return nil, err
	}

	created, err := s.repomanager.Contacts(s.db).Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("error creating contact: %w", err)
	}
	return created, nil
}

// Update replaces name, email and phone. Absent and foreign contacts both
// yield common.ErrorNotFound.
func (s *ContactService) Update(ctx context.Context, ownerID, contactID int64, in ContactInput) (*models.Contact, error) {
	c, err := buildContact(ownerID, in)
	if err != nil {
		return nil, err
	}
	c.ID = contactID

	updated, err := s.repomanager.Contacts(s.db).Update(ctx, c)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating contact: %w", err)
	}
	return updated, nil
}

func (s *ContactService) Delete(ctx context.Context, ownerID, contactID int64) error {
	err := s.repomanager.Contacts(s.db).Delete(ctx, ownerID, contactID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting contact: %w", err)
	}
	return nil
}

func buildContact(ownerID int64, in ContactInput) (*models.Contact, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, common.NewValidationError("Name is required")
	}
	return &models.Contact{
		UserID: ownerID,
		Name:   name,
		Email:  optional(in.Email),
		Phone:  optional(in.Phone),
	}, nil
}

// optional trims v and maps blank values to nil.
func optional(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}
