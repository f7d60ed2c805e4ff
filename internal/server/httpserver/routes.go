package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *HTTPServer) routes() *gin.Engine {
	router := gin.New()

	router.Use(s.requestID())
	router.Use(s.accessLog())
	router.Use(gin.CustomRecovery(s.recover))
	router.Use(s.cors())

	router.NoRoute(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusNotFound, errorResponse{Error: "not found"})
	})

	api := router.Group("/api")
	{
		api.GET("/health", s.handleHealth)

		api.POST("/register", s.handleRegister)
		api.POST("/login", s.handleLogin)

		contacts := api.Group("/contacts")
		contacts.Use(s.authMiddleware())
		{
			contacts.GET("", s.handleListContacts)
			contacts.POST("", s.handleCreateContact)
			contacts.PUT("/:id", s.handleUpdateContact)
			contacts.DELETE("/:id", s.handleDeleteContact)
		}
	}

	return router
}
