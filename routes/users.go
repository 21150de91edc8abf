package routes

import (
	"caterclub-backend/handlers/users"
	"caterclub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(r *gin.Engine) {
	userRoutes := r.Group("/users")
	userRoutes.Use(middleware.JWTAuth())
	{
		userRoutes.GET("/me", users.GetProfile)
		userRoutes.PUT("/me", users.UpdateProfile)
	}
}
