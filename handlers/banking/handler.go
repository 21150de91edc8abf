package banking

import (
	"errors"
	"net/http"

	"caterclub-backend/db"
	"caterclub-backend/models"
	"caterclub-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Save the user's banking details
// @Description Create or update the banking details of the connected user
// @Tags banking
// @Accept json
// @Produce json
// @Param details body models.BankingDetailsInput true "Banking details"
// @Security BearerAuth
// @Success 200 {object} models.BankingDetails
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /banking [put]
func SaveBankingDetails(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.BankingDetailsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var details models.BankingDetails
	err := db.DB.Where("user_id = ?", userID).First(&details).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching the banking details"})
			return
		}

		details = models.BankingDetails{
			UserID:        userID.(string),
			AccountHolder: input.AccountHolder,
			BankName:      input.BankName,
			BranchCode:    input.BranchCode,
			AccountNumber: input.AccountNumber,
			AccountType:   input.AccountType,
		}
		if err := db.DB.Create(&details).Error; err != nil {
			utils.LogErrorWithUser(userID, err, "Error creating the banking details in SaveBankingDetails")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving the banking details"})
			return
		}

		utils.LogSuccessWithUser(userID, "Banking details created in SaveBankingDetails")
		c.JSON(http.StatusOK, details)
		return
	}

	err = db.DB.Model(&details).Updates(map[string]interface{}{
		"account_holder": input.AccountHolder,
		"bank_name":      input.BankName,
		"branch_code":    input.BranchCode,
		"account_number": input.AccountNumber,
		"account_type":   input.AccountType,
	}).Error
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error updating the banking details in SaveBankingDetails")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving the banking details"})
		return
	}

	utils.LogSuccessWithUser(userID, "Banking details updated in SaveBankingDetails")
	c.JSON(http.StatusOK, details)
}

// @Summary Get the user's banking details
// @Description Return the banking details of the connected user
// @Tags banking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.BankingDetails
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Banking details not found"
// @Router /banking [get]
func GetBankingDetails(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var details models.BankingDetails
	if err := db.DB.Where("user_id = ?", userID).First(&details).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Banking details not found"})
		return
	}

	c.JSON(http.StatusOK, details)
}
