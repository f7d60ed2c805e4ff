package httpserver

import (
	"time"

	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
	"github.com/dmitrijs2005/contactkeeper/internal/server/services"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type authResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    userResponse `json:"user"`
}

type contactRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

func (r contactRequest) input() services.ContactInput {
	return services.ContactInput{Name: r.Name, Email: r.Email, Phone: r.Phone}
}

type contactResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func newAuthResponse(msg string, res *services.AuthResult) authResponse {
	return authResponse{
		Message: msg,
		Token:   res.Token,
		User: userResponse{
			ID:       res.User.ID,
			Username: res.User.UserName,
			Email:    res.User.Email,
		},
	}
}

func newContactResponse(c *models.Contact) contactResponse {
	return contactResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt.UTC(),
	}
}
