// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an account row. PasswordHash never leaves the server.
type User struct {
	ID           int64
	UserName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
