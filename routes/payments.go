package routes

import (
	"caterclub-backend/handlers/payments"
	"caterclub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func PaymentsRoutes(r *gin.Engine, h *payments.Handler) {
	paymentRoutes := r.Group("/payments")
	paymentRoutes.Use(middleware.JWTAuth())
	{
		paymentRoutes.POST("/checkout/:membershipId", h.CreateCheckout)
		paymentRoutes.GET("", h.GetUserPayments)
	}

	// PayFast sends the ITN as a POST but is documented to fall back to GET;
	// both methods hit the same handler.
	r.POST("/payments/notify", h.HandleNotification)
	r.GET("/payments/notify", h.HandleNotification)
}
