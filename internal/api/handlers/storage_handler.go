package handlers

import (
	"strconv"

	"FreshStock-Backend/domain"
	"FreshStock-Backend/internal/api/presenters"
	"FreshStock-Backend/pkg/inventory"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	StorageHandler interface {
		GetInventory(c *fiber.Ctx) error
		AddItem(c *fiber.Ctx) error
		RemoveItem(c *fiber.Ctx) error
		RemoveMatching(c *fiber.Ctx) error
		DeleteInventory(c *fiber.Ctx) error
		RemoveExpired(c *fiber.Ctx) error
		PredictExpired(c *fiber.Ctx) error
	}

	storageHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewStorageHandler(inventoryService inventory.InventoryService, validator *validator.Validate) StorageHandler {
	return &storageHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

func (h *storageHandler) GetInventory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.inventoryService.GetInventory(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, serviceErrorStatus(err), domain.MessageFailedGetStorage, err)
	}

	if res == nil {
		return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageNoStorageYet)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStorage)
}

func (h *storageHandler) AddItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddItem, err)
	}

	res, err := h.inventoryService.AddItem(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, serviceErrorStatus(err), domain.MessageFailedAddItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAddItem)
}

func (h *storageHandler) RemoveItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	if itemID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveItem, nil)
	}

	res, err := h.inventoryService.RemoveItem(c.Context(), itemID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, serviceErrorStatus(err), domain.MessageFailedRemoveItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRemoveItem)
}

func (h *storageHandler) RemoveMatching(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.RemoveMatchingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveMatching, err)
	}

	res, err := h.inventoryService.RemoveMatching(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, serviceErrorStatus(err), domain.MessageFailedRemoveMatching, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRemoveMatching)
}

func (h *storageHandler) DeleteInventory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.inventoryService.DeleteInventory(c.Context(), userID); err != nil {
		return presenters.ErrorResponse(c, serviceErrorStatus(err), domain.MessageFailedDeleteStorage, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteStorage)
}

func (h *storageHandler) RemoveExpired(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.inventoryService.ReportExpiredToday(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, serviceErrorStatus(err), domain.MessageFailedReportExpired, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessReportExpired)
}

func (h *storageHandler) PredictExpired(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	days, err := strconv.Atoi(c.Params("days"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPredictExpired, domain.ErrInvalidDays)
	}

	res, err := h.inventoryService.ReportWillExpire(c.Context(), userID, days)
	if err != nil {
		return presenters.ErrorResponse(c, serviceErrorStatus(err), domain.MessageFailedPredictExpired, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessPredictExpired)
}
