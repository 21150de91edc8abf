package routes

import (
	"caterclub-backend/handlers/banking"
	"caterclub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func BankingRoutes(r *gin.Engine) {
	bankingRoutes := r.Group("/banking")
	bankingRoutes.Use(middleware.JWTAuth())
	{
		bankingRoutes.PUT("", banking.SaveBankingDetails)
		bankingRoutes.GET("", banking.GetBankingDetails)
	}
}
