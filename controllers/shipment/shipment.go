package shipment

import (
	"errors"
	"fmt"

	"transvert-logistics/logger"
	shipmentModel "transvert-logistics/models/shipment"
	"transvert-logistics/services/lifecycle"
	"transvert-logistics/types"
	shipmentTypes "transvert-logistics/types/shipment"
	"transvert-logistics/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ShipmentController handles shipment intake, tracking and status updates.
type ShipmentController struct {
	DB             *gorm.DB
	Lifecycle      *lifecycle.Service
	loggerInstance *logger.AsyncLogger
}

func NewShipmentController(db *gorm.DB, lifecycleService *lifecycle.Service, asyncLogger *logger.AsyncLogger) *ShipmentController {
	return &ShipmentController{
		DB:             db,
		Lifecycle:      lifecycleService,
		loggerInstance: asyncLogger,
	}
}

// Helper function to send response and log in one call
func (sc *ShipmentController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	sc.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))
	return result
}

// Store creates a shipment for the authenticated user.
func (sc *ShipmentController) Store(c *fiber.Ctx) error {
	var req shipmentTypes.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return sc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return sc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	account, err := utils.CurrentUser(c, sc.DB)
	if err != nil {
		return sc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: err.Error(),
			Data:    nil,
		})
	}

	env, err := sc.Lifecycle.Create(paramsFromRequest(req, &account.ID))
	if err != nil {
		logger.Error("Failed to create shipment", err)
		return sc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save shipment",
			Data:    nil,
		})
	}

	return sc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: fmt.Sprintf("Envío creado: %s", env.TrackingCode),
		Data:    env,
	})
}

// StoreAPI is the unauthenticated intake path. The response mirrors the
// public wire format: {success, numero_guia} or {success:false, error}.
func (sc *ShipmentController) StoreAPI(c *fiber.Ctx) error {
	var req shipmentTypes.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	env, err := sc.Lifecycle.Create(paramsFromRequest(req, nil))
	if err != nil {
		logger.Error("Failed to create shipment via API", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"numero_guia": env.TrackingCode,
	})
}

// Track is the public tracking lookup by guide number.
func (sc *ShipmentController) Track(c *fiber.Ctx) error {
	trackingCode := c.Query("numero_guia")
	if trackingCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "numero_guia is required",
		})
	}

	env, traces, err := sc.Lifecycle.Track(trackingCode)
	if err != nil {
		if errors.Is(err, lifecycle.ErrShipmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "No se encontró un envío.",
			})
		}
		logger.Error("Tracking lookup failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"envio":   env,
		"trazas":  traces,
	})
}

// UpdateStatus transitions a shipment to a new status. Staff only.
func (sc *ShipmentController) UpdateStatus(c *fiber.Ctx) error {
	var req shipmentTypes.TransitionRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return sc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return sc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	account, err := utils.CurrentUser(c, sc.DB)
	if err != nil {
		return sc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: err.Error(),
			Data:    nil,
		})
	}

	entry, err := sc.Lifecycle.Transition(req.ShipmentID, shipmentModel.Status(req.NewStatus), req.Location, req.Detail, &account.ID)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrShipmentNotFound):
			return sc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Shipment not found",
				Data:    nil,
			})
		case errors.Is(err, lifecycle.ErrInvalidTransition):
			return sc.sendResponseWithLog(c, fiber.StatusConflict, types.ApiResponse{
				Status:  fiber.StatusConflict,
				Message: err.Error(),
				Data:    nil,
			})
		default:
			logger.Error("Failed to update shipment status", err)
			return sc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to update shipment status",
				Data:    nil,
			})
		}
	}

	return sc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: fmt.Sprintf("Estado actualizado a %s", entry.NewStatus),
		Data:    entry,
	})
}

// Index lists the authenticated user's shipments, newest first.
func (sc *ShipmentController) Index(c *fiber.Ctx) error {
	account, err := utils.CurrentUser(c, sc.DB)
	if err != nil {
		return sc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: err.Error(),
			Data:    nil,
		})
	}

	envs, err := sc.Lifecycle.ListByUser(account.ID)
	if err != nil {
		logger.Error("Failed to list shipments", err)
		return sc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list shipments",
			Data:    nil,
		})
	}

	return sc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Shipments retrieved successfully",
		Data:    envs,
	})
}

func paramsFromRequest(req shipmentTypes.CreateRequest, userID *uint) lifecycle.CreateParams {
	return lifecycle.CreateParams{
		SenderName:         req.SenderName,
		SenderPhone:        req.SenderPhone,
		SenderEmail:        req.SenderEmail,
		RecipientName:      req.RecipientName,
		RecipientPhone:     req.RecipientPhone,
		RecipientEmail:     req.RecipientEmail,
		Type:               req.Type,
		Weight:             utils.ToFloat(req.Weight),
		Dimensions:         req.Dimensions,
		OriginAddress:      req.OriginAddress,
		DestinationAddress: req.DestinationAddress,
		UserID:             userID,
	}
}
