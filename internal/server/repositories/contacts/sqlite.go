package contacts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/dbx"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) ListByOwner(ctx context.Context, userID int64) ([]models.Contact, error) {
	query := `select id, user_id, name, email, phone, created_at from contacts
		where user_id = ? order by created_at desc, id desc`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select contacts: %w", err)
	}
	defer rows.Close()

	result := make([]models.Contact, 0)
	for rows.Next() {
		var item models.Contact
		var createdAt int64
		if err := rows.Scan(&item.ID, &item.UserID, &item.Name, &item.Email, &item.Phone, &createdAt); err != nil {
			return nil, err
		}
		item.CreatedAt = dbx.FromMillis(createdAt)
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	createdAt := dbx.ToMillis(time.Now())

	res, err := r.db.ExecContext(ctx,
		`insert into contacts (user_id, name, email, phone, created_at) values (?, ?, ?, ?, ?)`,
		contact.UserID, contact.Name, contact.Email, contact.Phone, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert contact: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	contact.ID = id
	contact.CreatedAt = dbx.FromMillis(createdAt)
	return contact, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	var createdAt int64
	err := r.db.QueryRowContext(ctx,
		`update contacts set name = ?, email = ?, phone = ? where id = ? and user_id = ? returning created_at`,
		contact.Name, contact.Email, contact.Phone, contact.ID, contact.UserID).Scan(&createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	contact.CreatedAt = dbx.FromMillis(createdAt)
	return contact, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, userID int64, id int64) error {
	res, err := r.db.ExecContext(ctx, `delete from contacts where id = ? and user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
