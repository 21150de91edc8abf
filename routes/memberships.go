package routes

import (
	"caterclub-backend/handlers/memberships"
	"caterclub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func MembershipsRoutes(r *gin.Engine) {
	membershipRoutes := r.Group("/memberships")
	membershipRoutes.Use(middleware.JWTAuth())
	{
		membershipRoutes.POST("/:planId", memberships.SelectPlan)
		membershipRoutes.GET("", memberships.GetUserMemberships)
		membershipRoutes.GET("/:membershipId", memberships.GetMembershipDetail)
		membershipRoutes.DELETE("/:membershipId", memberships.CancelMembership)
	}
}
