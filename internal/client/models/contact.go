// Package models defines the client-side view of API resources.
package models

import "time"

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Contact mirrors the server representation. Email and Phone are nil when
// the server returns null.
type Contact struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactInput is the request body for create and update.
type ContactInput struct {
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// Session is the outcome of a successful register or login.
type Session struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}
