package routes

import (
	"caterclub-backend/handlers/plans"
	"caterclub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func PlansRoutes(r *gin.Engine) {
	// The plan catalogue is public; mutations are admin-only
	r.GET("/plans", plans.GetAllPlans)

	planRoutes := r.Group("/plans")
	planRoutes.Use(middleware.AdminAuth())
	{
		planRoutes.POST("", plans.CreatePlan)
		planRoutes.PUT("/:id", plans.UpdatePlan)
		planRoutes.DELETE("/:id", plans.DeletePlan)
		planRoutes.POST("/:id/picture", plans.UploadPlanPicture)
	}
}
