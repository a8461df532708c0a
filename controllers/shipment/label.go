package shipment

import (
	"errors"
	"fmt"

	"transvert-logistics/logger"
	"transvert-logistics/services/label"
	"transvert-logistics/services/lifecycle"
	"transvert-logistics/types"
	"transvert-logistics/utils"

	"github.com/gofiber/fiber/v2"
)

// DownloadLabel streams the printable PDF label for a shipment. The owner,
// staff and superadmin may download it.
func (sc *ShipmentController) DownloadLabel(c *fiber.Ctx) error {
	shipmentID, err := c.ParamsInt("id")
	if err != nil || shipmentID <= 0 {
		return sc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid shipment id",
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

	env, err := sc.Lifecycle.Get(uint(shipmentID))
	if err != nil {
		if errors.Is(err, lifecycle.ErrShipmentNotFound) {
			return sc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Shipment not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to load shipment for label", err)
		return sc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Data:    nil,
		})
	}

	owner := env.UserID != nil && *env.UserID == account.ID
	if !owner && !account.IsStaff && !account.IsSuperuser {
		return sc.sendResponseWithLog(c, fiber.StatusForbidden, types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Insufficient permissions",
			Data:    nil,
		})
	}

	pdfBytes, err := label.Generate(*env)
	if err != nil {
		logger.Error("Failed to generate label PDF", err)
		return sc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error al generar PDF",
			Data:    nil,
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=guia_%s.pdf", env.TrackingCode))
	return c.Send(pdfBytes)
}
