package memberships

import (
	"net/http"

	"caterclub-backend/db"
	"caterclub-backend/models"
	"caterclub-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Select a membership plan
// @Description Create an inactive membership for the chosen plan; it becomes active once the payment is confirmed
// @Tags memberships
// @Produce json
// @Param planId path string true "ID of the plan"
// @Security BearerAuth
// @Success 201 {object} models.Membership
// @Failure 400 {object} map[string]string "error: Invalid plan ID"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Plan not found"
// @Failure 409 {object} map[string]string "error: Membership already exists for this plan"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /memberships/{planId} [post]
func SelectPlan(c *gin.Context) {
	planID := c.Param("planId")
	if _, err := uuid.Parse(planID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan ID"})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var plan models.MembershipPlan
	if err := db.DB.First(&plan, "id = ?", planID).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Plan not found in SelectPlan")
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	var existing models.Membership
	err := db.DB.Where("user_id = ? AND plan_id = ? AND status IN ?",
		userID, plan.ID,
		[]models.MembershipStatus{models.MembershipInactive, models.MembershipActive}).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "You already have a membership for this plan"})
		return
	}

	membership := models.Membership{
		UserID: userID.(string),
		PlanID: plan.ID,
		Status: models.MembershipInactive,
	}

	if err := db.DB.Create(&membership).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating the membership in SelectPlan")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating the membership"})
		return
	}

	utils.LogSuccessWithUser(userID, "Membership created in SelectPlan")
	c.JSON(http.StatusCreated, membership)
}

// @Summary List the user's memberships
// @Description Return all the memberships of the connected user
// @Tags memberships
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Membership
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /memberships [get]
func GetUserMemberships(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var membershipList []models.Membership
	err := db.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&membershipList).Error
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error fetching memberships in GetUserMemberships")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching memberships"})
		return
	}

	c.JSON(http.StatusOK, membershipList)
}

// @Summary Details of a membership
// @Description Return the detailed information of a membership
// @Tags memberships
// @Produce json
// @Param membershipId path string true "ID of the membership"
// @Security BearerAuth
// @Success 200 {object} models.Membership
// @Failure 400 {object} map[string]string "error: Invalid membership ID"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Not your membership"
// @Failure 404 {object} map[string]string "error: Membership not found"
// @Router /memberships/{membershipId} [get]
func GetMembershipDetail(c *gin.Context) {
	membershipID := c.Param("membershipId")
	if _, err := uuid.Parse(membershipID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid membership ID"})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var membership models.Membership
	if err := db.DB.First(&membership, "id = ?", membershipID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Membership not found"})
		return
	}

	if membership.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to view this membership"})
		return
	}

	c.JSON(http.StatusOK, membership)
}

// @Summary Cancel a membership
// @Description Cancel a membership of the connected user
// @Tags memberships
// @Produce json
// @Param membershipId path string true "ID of the membership to cancel"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Membership cancelled successfully"
// @Failure 400 {object} map[string]string "error: Invalid membership ID"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Not your membership"
// @Failure 404 {object} map[string]string "error: Membership not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /memberships/{membershipId} [delete]
func CancelMembership(c *gin.Context) {
	membershipID := c.Param("membershipId")
	if _, err := uuid.Parse(membershipID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid membership ID"})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var membership models.Membership
	if err := db.DB.First(&membership, "id = ?", membershipID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Membership not found"})
		return
	}

	if membership.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to cancel this membership"})
		return
	}

	if err := db.DB.Model(&membership).Update("status", models.MembershipCancelled).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error cancelling the membership in CancelMembership")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error cancelling the membership"})
		return
	}

	utils.LogSuccessWithUser(userID, "Membership cancelled in CancelMembership")
	c.JSON(http.StatusOK, gin.H{"message": "Membership cancelled successfully"})
}
