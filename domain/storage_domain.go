package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetStorage     = "storage retrieved successfully"
	MessageSuccessAddItem        = "item added successfully"
	MessageSuccessRemoveItem     = "item removed successfully"
	MessageSuccessRemoveMatching = "matching items removed successfully"
	MessageSuccessDeleteStorage  = "storage deleted successfully"
	MessageSuccessReportExpired  = "expired items removed successfully"
	MessageSuccessPredictExpired = "expiring items retrieved successfully"
	MessageNoStorageYet          = "no storage for this organization yet"

	MessageFailedGetStorage     = "failed to retrieve storage"
	MessageFailedAddItem        = "failed to add item"
	MessageFailedRemoveItem     = "failed to remove item"
	MessageFailedRemoveMatching = "failed to remove matching items"
	MessageFailedDeleteStorage  = "failed to delete storage"
	MessageFailedReportExpired  = "failed to remove expired items"
	MessageFailedPredictExpired = "failed to retrieve expiring items"

	ErrNoStorage      = errors.New("no storage for this organization")
	ErrInvalidExpDate = errors.New("invalid expiration date, expected YYYY-MM-DD")
	ErrInvalidPrice   = errors.New("price must be a non-negative number")
	ErrEmptyItemName  = errors.New("item name must not be empty")
	ErrInvalidDays    = errors.New("days must be a non-negative number")
)

type (
	AddItemRequest struct {
		Name    string `json:"name" validate:"required"`
		ExpDate string `json:"expDate" validate:"required"`
		Price   string `json:"price" validate:"required"`
	}

	RemoveMatchingRequest struct {
		Name    string `json:"name" validate:"required"`
		ExpDate string `json:"expDate" validate:"required"`
		Price   string `json:"price" validate:"required"`
	}

	ItemResponse struct {
		ID      string    `json:"id"`
		Name    string    `json:"name"`
		ExpDate time.Time `json:"exp_date"`
		Price   float64   `json:"price"`
	}

	StorageResponse struct {
		ID           string         `json:"id"`
		Organization string         `json:"organization"`
		Inventory    []ItemResponse `json:"inventory"`
	}

	ExpiredReportResponse struct {
		Expired     []ItemResponse `json:"expired"`
		ExpiredCost float64        `json:"expiredCost"`
	}

	WillExpireReportResponse struct {
		WillExpire  []ItemResponse `json:"willExpire"`
		ExpiredCost float64        `json:"expiredCost"`
	}
)
