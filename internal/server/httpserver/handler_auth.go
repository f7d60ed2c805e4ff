package httpserver

import (
	"net/http"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/gin-gonic/gin"
)

var errBadBody = common.NewValidationError("Invalid request body")

func (s *HTTPServer) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, "register", errBadBody)
		return
	}

	res, err := s.users.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		s.writeError(c, "register", err)
		return
	}

	s.logger.Info(c.Request.Context(), "Registered", "user_id", res.User.ID)
	c.JSON(http.StatusCreated, newAuthResponse("User registered successfully", res))
}

func (s *HTTPServer) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, "login", errBadBody)
		return
	}

	res, err := s.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		s.writeError(c, "login", err)
		return
	}

	c.JSON(http.StatusOK, newAuthResponse("Login successful", res))
}
