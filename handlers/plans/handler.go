package plans

import (
	"net/http"

	"caterclub-backend/db"
	"caterclub-backend/models"
	"caterclub-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Create a new membership plan
// @Description Create a new membership plan with the provided information
// @Tags plans
// @Accept json
// @Produce json
// @Param plan body models.MembershipPlanCreate true "Plan information"
// @Security BearerAuth
// @Success 201 {object} models.MembershipPlan
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /plans [post]
func CreatePlan(c *gin.Context) {
	var planCreate models.MembershipPlanCreate
	if err := c.ShouldBindJSON(&planCreate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	var existingPlan models.MembershipPlan
	result := db.DB.First(&existingPlan, "name = ?", planCreate.Name)
	if result.Error == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Plan already exists",
		})
		return
	}

	plan := models.MembershipPlan{
		Name:         planCreate.Name,
		Description:  planCreate.Description,
		PriceCents:   planCreate.PriceCents,
		DurationDays: planCreate.DurationDays,
	}

	if err := db.DB.Create(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error creating plan: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// @Summary Get all membership plans
// @Description Retrieve all membership plans, cheapest first
// @Tags plans
// @Produce json
// @Success 200 {array} models.MembershipPlan
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /plans [get]
func GetAllPlans(c *gin.Context) {
	var planList []models.MembershipPlan

	result := db.DB.Order("price_cents ASC").Find(&planList)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, planList)
}

// @Summary Update a membership plan
// @Description Update a membership plan by its ID
// @Tags plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param plan body models.MembershipPlanCreate true "Plan information"
// @Security BearerAuth
// @Success 200 {object} models.MembershipPlan
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Plan not found"
// @Router /plans/{id} [put]
func UpdatePlan(c *gin.Context) {
	planID := c.Param("id")
	if _, err := uuid.Parse(planID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan ID"})
		return
	}

	var planUpdate models.MembershipPlanCreate
	if err := c.ShouldBindJSON(&planUpdate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var plan models.MembershipPlan
	if err := db.DB.First(&plan, "id = ?", planID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	err := db.DB.Model(&plan).Updates(map[string]interface{}{
		"name":          planUpdate.Name,
		"description":   planUpdate.Description,
		"price_cents":   planUpdate.PriceCents,
		"duration_days": planUpdate.DurationDays,
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating plan: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// @Summary Delete a membership plan
// @Description Delete a membership plan by its ID
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Plan deleted successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Plan not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /plans/{id} [delete]
func DeletePlan(c *gin.Context) {
	planID := c.Param("id")

	var plan models.MembershipPlan
	if err := db.DB.First(&plan, "id = ?", planID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	if err := db.DB.Delete(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting plan: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plan deleted successfully"})
}

// @Summary Upload a plan picture
// @Description Upload the marketing picture of a membership plan
// @Tags plans
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Plan ID"
// @Param picture formData file true "Plan picture"
// @Security BearerAuth
// @Success 200 {object} models.MembershipPlan
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Plan not found"
// @Failure 500 {object} map[string]string "error: Upload error"
// @Router /plans/{id}/picture [post]
func UploadPlanPicture(c *gin.Context) {
	planID := c.Param("id")
	if _, err := uuid.Parse(planID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan ID"})
		return
	}

	var plan models.MembershipPlan
	if err := db.DB.First(&plan, "id = ?", planID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	file, err := c.FormFile("picture")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No picture provided"})
		return
	}

	pictureURL, err := utils.UploadPlanPicture(file)
	if err != nil {
		utils.LogError(err, "Error uploading the plan picture in UploadPlanPicture")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading the picture"})
		return
	}

	if err := db.DB.Model(&plan).Update("picture_url", pictureURL).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving the picture URL"})
		return
	}

	c.JSON(http.StatusOK, plan)
}
