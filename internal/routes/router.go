package routes

import (
	"fluxcrm/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the full route tree. Registration and login are
// public; everything else requires a valid token.
func SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	RegisterAuthRoutes(api)

	authRequired := api.Group("/")
	authRequired.Use(middleware.AuthMiddleware())
	{
		RegisterAPIRoutes(authRequired)
	}
}
