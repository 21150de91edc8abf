package routes

import (
	"time"

	"caterclub-backend/handlers/payments"
	"caterclub-backend/payfast"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter() *gin.Engine {

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// The PayFast configuration is read once here and injected; the payment
	// handlers never touch the process environment.
	paymentsHandler := payments.NewHandler(payfast.ConfigFromEnv(), payments.NewGormGateway())

	PingRoutes(r)
	AuthRoutes(r)
	UsersRoutes(r)
	PlansRoutes(r)
	MembershipsRoutes(r)
	BankingRoutes(r)
	PaymentsRoutes(r, paymentsHandler)

	return r
}
