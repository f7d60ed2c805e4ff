package models

import "time"

// Contact is a personal contact record owned by exactly one user.
// Email and Phone are nil when not provided.
type Contact struct {
	ID        int64
	UserID    int64
	Name      string
	Email     *string
	Phone     *string
	CreatedAt time.Time
}
