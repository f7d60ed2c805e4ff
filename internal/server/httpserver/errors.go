package httpserver

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/gin-gonic/gin"
)

var msgInternal = common.ErrorInternal.Error()

type errorResponse struct {
	Error string `json:"error"`
}

var errorStatusMap = []struct {
	target  error
	status  int
	message string
}{
	{common.ErrDuplicateAccount, http.StatusBadRequest, "Username or email already exists"},
	{common.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
	{common.ErrorUnauthorized, http.StatusUnauthorized, msgTokenRequired},
	{common.ErrInvalidToken, http.StatusForbidden, msgTokenInvalid},
	{common.ErrorNotFound, http.StatusNotFound, "Contact not found or access denied"},
	{common.ErrValidation, http.StatusBadRequest, "validation error"},
}

// statusForError maps service errors onto a status and a client-safe message.
// Anything unrecognised is a 500 whose text is not exposed.
func statusForError(err error) (int, string) {
	var ve *common.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Msg
	}
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, msgInternal
}

func (s *HTTPServer) writeError(c *gin.Context, op string, err error) {
	status, msg := statusForError(err)
	if status == http.StatusInternalServerError {
		s.logger.Error(c.Request.Context(), "request failed",
			"op", op, "error", err.Error(), "request_id", c.GetString(ginRequestIDKey))
	}
	c.AbortWithStatusJSON(status, errorResponse{Error: msg})
}
