package routes

import (
	"caterclub-backend/handlers/ping"

	"github.com/gin-gonic/gin"
)

func PingRoutes(r *gin.Engine) {
	handler := ping.New()
	r.GET("/ping", handler.HandlePing)
}
