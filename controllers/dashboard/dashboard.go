package dashboard

import (
	"time"

	"transvert-logistics/logger"
	shipmentModel "transvert-logistics/models/shipment"
	userModel "transvert-logistics/models/user"
	"transvert-logistics/services/lifecycle"
	supportService "transvert-logistics/services/support"
	"transvert-logistics/types"
	"transvert-logistics/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// DashboardController serves the staff and superadmin panels.
type DashboardController struct {
	DB             *gorm.DB
	Lifecycle      *lifecycle.Service
	Support        *supportService.Service
	loggerInstance *logger.AsyncLogger
}

func NewDashboardController(db *gorm.DB, lifecycleService *lifecycle.Service, support *supportService.Service, asyncLogger *logger.AsyncLogger) *DashboardController {
	return &DashboardController{
		DB:             db,
		Lifecycle:      lifecycleService,
		Support:        support,
		loggerInstance: asyncLogger,
	}
}

// Helper function to send response and log in one call
func (dc *DashboardController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	dc.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))
	return result
}

// Stats summarize shipment intake volume for the panels.
type Stats struct {
	ShipmentsTotal     int64 `json:"envios_total"`
	ShipmentsToday     int64 `json:"envios_hoy"`
	ShipmentsThisMonth int64 `json:"envios_mes"`
	TicketsPending     int64 `json:"tickets_pendientes"`
}

// StaffPanel returns all shipments and tickets, newest first, with optional
// estado_envio / estado_ticket filters.
func (dc *DashboardController) StaffPanel(c *fiber.Ctx) error {
	payload, err := dc.panelData(c)
	if err != nil {
		logger.Error("Failed to build staff panel", err)
		return dc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to build panel",
			Data:    nil,
		})
	}

	return dc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Panel retrieved successfully",
		Data:    payload,
	})
}

// SuperadminPanel is the staff panel plus the user listing.
func (dc *DashboardController) SuperadminPanel(c *fiber.Ctx) error {
	payload, err := dc.panelData(c)
	if err != nil {
		logger.Error("Failed to build superadmin panel", err)
		return dc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to build panel",
			Data:    nil,
		})
	}

	var users []userModel.User
	if err := dc.DB.Order("id").Find(&users).Error; err != nil {
		logger.Error("Failed to list users", err)
		return dc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list users",
			Data:    nil,
		})
	}
	payload["usuarios"] = users

	return dc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Panel retrieved successfully",
		Data:    payload,
	})
}

func (dc *DashboardController) panelData(c *fiber.Ctx) (fiber.Map, error) {
	envs, err := dc.Lifecycle.List(c.Query("estado_envio"))
	if err != nil {
		return nil, err
	}

	tickets, err := dc.Support.List(c.Query("estado_ticket"))
	if err != nil {
		return nil, err
	}

	stats, err := dc.stats()
	if err != nil {
		return nil, err
	}

	return fiber.Map{
		"envios":  envs,
		"tickets": tickets,
		"stats":   stats,
	}, nil
}

func (dc *DashboardController) stats() (*Stats, error) {
	var stats Stats
	currentTime := time.Now()

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.ShipmentsTotal, dc.DB.Model(&shipmentModel.Shipment{})},
		{&stats.ShipmentsToday, dc.DB.Model(&shipmentModel.Shipment{}).
			Where("created_at >= ?", now.With(currentTime).BeginningOfDay())},
		{&stats.ShipmentsThisMonth, dc.DB.Model(&shipmentModel.Shipment{}).
			Where("created_at >= ?", now.With(currentTime).BeginningOfMonth())},
		{&stats.TicketsPending, dc.DB.Table("support_tickets").
			Where("status = ?", "Pendiente")},
	}

	for _, count := range counts {
		if err := count.query.Count(count.dest).Error; err != nil {
			return nil, err
		}
	}

	return &stats, nil
}
