package httpserver

import (
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/server/auth"
	"github.com/gin-gonic/gin"
)

// ownerAndID resolves the caller and the :id path parameter. Ids that do not
// parse are reported as not found.
func (s *HTTPServer) ownerAndID(c *gin.Context) (auth.Identity, int64, bool) {
	identity, ok := identityFromGin(c)
	if !ok {
		s.writeError(c, "contacts", common.ErrorUnauthorized)
		return auth.Identity{}, 0, false
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		s.writeError(c, "contacts", common.ErrorNotFound)
		return auth.Identity{}, 0, false
	}
	return identity, id, true
}

func (s *HTTPServer) handleListContacts(c *gin.Context) {
	identity, ok := identityFromGin(c)
	if !ok {
		s.writeError(c, "list contacts", common.ErrorUnauthorized)
		return
	}

	items, err := s.contacts.List(c.Request.Context(), identity.AccountID)
	if err != nil {
		s.writeError(c, "list contacts", err)
		return
	}

	resp := make([]contactResponse, 0, len(items))
	for i := range items {
		resp = append(resp, newContactResponse(&items[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) handleCreateContact(c *gin.Context) {
	identity, ok := identityFromGin(c)
	if !ok {
		s.writeError(c, "create contact", common.ErrorUnauthorized)
		return
	}

	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, "create contact", errBadBody)
		return
	}

	created, err := s.contacts.Create(c.Request.Context(), identity.AccountID, req.input())
	if err != nil {
		s.writeError(c, "create contact", err)
		return
	}
	c.JSON(http.StatusCreated, newContactResponse(created))
}

func (s *HTTPServer) handleUpdateContact(c *gin.Context) {
	identity, id, ok := s.ownerAndID(c)
	if !ok {
		return
	}

	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, "update contact", errBadBody)
		return
	}

	updated, err := s.contacts.Update(c.Request.Context(), identity.AccountID, id, req.input())
	if err != nil {
		s.writeError(c, "update contact", err)
		return
	}
	c.JSON(http.StatusOK, newContactResponse(updated))
}

func (s *HTTPServer) handleDeleteContact(c *gin.Context) {
	identity, id, ok := s.ownerAndID(c)
	if !ok {
		return
	}

	if err := s.contacts.Delete(c.Request.Context(), identity.AccountID, id); err != nil {
		s.writeError(c, "delete contact", err)
		return
	}
	c.Status(http.StatusNoContent)
}
