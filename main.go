package main

import (
	"log"

	"caterclub-backend/db"
	_ "caterclub-backend/docs"
	"caterclub-backend/routes"
	"caterclub-backend/utils"

	"github.com/gin-gonic/gin"
)

// @title Isitebe seMbokodo Catering Club API
// @version 1.0
// @description Membership and payments API for the catering club
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	if err := utils.InitCloudinary(); err != nil {
		log.Printf("Warning: Cloudinary initialization failed: %v", err)
		log.Println("Plan picture uploads will not work.")
	}

	r := routes.SetupRouter()

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}
