package models

import (
	"time"
)

type BankingDetails struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID        string    `json:"userId" gorm:"type:uuid;uniqueIndex;not null"`
	AccountHolder string    `json:"accountHolder"`
	BankName      string    `json:"bankName"`
	BranchCode    string    `json:"branchCode"`
	AccountNumber string    `json:"accountNumber"`
	AccountType   string    `json:"accountType"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type BankingDetailsInput struct {
	AccountHolder string `json:"accountHolder" binding:"required"`
	BankName      string `json:"bankName" binding:"required"`
	BranchCode    string `json:"branchCode" binding:"required,numeric"`
	AccountNumber string `json:"accountNumber" binding:"required,numeric"`
	AccountType   string `json:"accountType" binding:"required,oneof=cheque savings transmission"`
}
