package users

import (
	"net/http"

	"caterclub-backend/db"
	"caterclub-backend/models"
	"caterclub-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Get the connected user's profile
// @Description Return the profile of the connected user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /users/me [get]
func GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "User not found in GetProfile")
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Update the connected user's profile
// @Description Update the name and phone number of the connected user. These fields are used as the payer identity on PayFast checkouts.
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.UserUpdate true "Profile fields"
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /users/me [put]
func UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.UserUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "User not found in UpdateProfile")
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	err := db.DB.Model(&user).Updates(map[string]interface{}{
		"first_name": input.FirstName,
		"last_name":  input.LastName,
		"phone":      input.Phone,
	}).Error
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error updating the profile in UpdateProfile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the profile"})
		return
	}

	utils.LogSuccessWithUser(userID, "Profile updated in UpdateProfile")
	c.JSON(http.StatusOK, user)
}
