package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		message string
	}{
		{common.NewValidationError("Name is required"), http.StatusBadRequest, "Name is required"},
		{fmt.Errorf("wrap: %w", common.ErrValidation), http.StatusBadRequest, "validation error"},
		{common.ErrDuplicateAccount, http.StatusBadRequest, "Username or email already exists"},
		{common.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{common.ErrorUnauthorized, http.StatusUnauthorized, msgTokenRequired},
		{fmt.Errorf("%w: %w", common.ErrInvalidToken, common.ErrTokenExpired), http.StatusForbidden, msgTokenInvalid},
		{fmt.Errorf("error updating contact: %w", common.ErrorNotFound), http.StatusNotFound, "Contact not found or access denied"},
		{errors.New("disk full"), http.StatusInternalServerError, msgInternal},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, msg := statusForError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, msg)
		})
	}
}
