package support

import (
	"errors"
	"fmt"

	"transvert-logistics/logger"
	supportModel "transvert-logistics/models/support"
	supportService "transvert-logistics/services/support"
	"transvert-logistics/types"
	supportTypes "transvert-logistics/types/support"
	"transvert-logistics/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SupportController handles the customer support ticket workflow.
type SupportController struct {
	DB             *gorm.DB
	Support        *supportService.Service
	loggerInstance *logger.AsyncLogger
}

func NewSupportController(db *gorm.DB, service *supportService.Service, asyncLogger *logger.AsyncLogger) *SupportController {
	return &SupportController{DB: db, Support: service, loggerInstance: asyncLogger}
}

// Helper function to send response and log in one call
func (tc *SupportController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	tc.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))
	return result
}

// Store opens a ticket for the authenticated user.
func (tc *SupportController) Store(c *fiber.Ctx) error {
	var req supportTypes.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return tc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return tc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Todos los campos son obligatorios.",
			Data:    nil,
		})
	}

	account, err := utils.CurrentUser(c, tc.DB)
	if err != nil {
		return tc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: err.Error(),
			Data:    nil,
		})
	}

	ticket, err := tc.Support.CreateTicket(&account.ID, req.Subject, req.Message, req.ContactEmail, supportModel.TicketPriority(req.Priority))
	if err != nil {
		if errors.Is(err, supportService.ErrMissingFields) {
			return tc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Todos los campos son obligatorios.",
				Data:    nil,
			})
		}
		logger.Error("Failed to create ticket", err)
		return tc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create ticket",
			Data:    nil,
		})
	}

	return tc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "✅ Ticket creado correctamente.",
		Data:    ticket,
	})
}

// Index lists the authenticated user's tickets.
func (tc *SupportController) Index(c *fiber.Ctx) error {
	account, err := utils.CurrentUser(c, tc.DB)
	if err != nil {
		return tc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: err.Error(),
			Data:    nil,
		})
	}

	tickets, err := tc.Support.ListByUser(account.ID)
	if err != nil {
		logger.Error("Failed to list tickets", err)
		return tc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list tickets",
			Data:    nil,
		})
	}

	return tc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Tickets retrieved successfully",
		Data:    tickets,
	})
}

// StaffIndex lists all tickets newest first with an optional status filter.
func (tc *SupportController) StaffIndex(c *fiber.Ctx) error {
	tickets, err := tc.Support.List(c.Query("estado_ticket"))
	if err != nil {
		logger.Error("Failed to list tickets", err)
		return tc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list tickets",
			Data:    nil,
		})
	}

	return tc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Tickets retrieved successfully",
		Data:    tickets,
	})
}

// Respond appends a staff response to a ticket and/or moves its status.
func (tc *SupportController) Respond(c *fiber.Ctx) error {
	ticketID, err := c.ParamsInt("id")
	if err != nil || ticketID <= 0 {
		return tc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid ticket id",
			Data:    nil,
		})
	}

	var req supportTypes.RespondRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return tc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return tc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	account, err := utils.CurrentUser(c, tc.DB)
	if err != nil {
		return tc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: err.Error(),
			Data:    nil,
		})
	}

	ticket, err := tc.Support.Respond(uint(ticketID), account.ID, req.Message, supportModel.TicketStatus(req.Status))
	if err != nil {
		if errors.Is(err, supportService.ErrTicketNotFound) {
			return tc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Ticket not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to respond to ticket", err)
		return tc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to respond to ticket",
			Data:    nil,
		})
	}

	return tc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: fmt.Sprintf("Ticket %d actualizado correctamente.", ticket.ID),
		Data:    ticket,
	})
}
