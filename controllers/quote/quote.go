package quote

import (
	"errors"

	"transvert-logistics/logger"
	"transvert-logistics/services/quotation"
	quoteTypes "transvert-logistics/types/quote"
	"transvert-logistics/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// QuoteController serves the public quotation endpoints.
type QuoteController struct {
	DB        *gorm.DB
	Quotation *quotation.Service
}

func NewQuoteController(db *gorm.DB, quotationService *quotation.Service) *QuoteController {
	return &QuoteController{DB: db, Quotation: quotationService}
}

// Quote prices a route for the given weight and dimensions. The response
// mirrors the public wire format.
func (qc *QuoteController) Quote(c *fiber.Ctx) error {
	var req quoteTypes.QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse quote request body", err)
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

	result, err := qc.Quotation.Quote(
		req.Origin,
		req.Destination,
		utils.ToFloat(req.Weight),
		utils.ToFloat(req.Length),
		utils.ToFloat(req.Width),
		utils.ToFloat(req.Height),
	)
	if err != nil {
		if errors.Is(err, quotation.ErrZoneNotFound) || errors.Is(err, quotation.ErrTariffNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Zona o tarifa no definida.",
			})
		}
		logger.Error("Quotation failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(quoteTypes.QuoteResponse{
		Success:          true,
		Cost:             result.Cost,
		BillableWeight:   result.BillableWeight,
		VolumetricWeight: result.VolumetricWeight,
		Currency:         result.Currency,
	})
}

// Zones lists the known zone names for populating the quote form.
func (qc *QuoteController) Zones(c *fiber.Ctx) error {
	names, err := qc.Quotation.ZoneNames()
	if err != nil {
		logger.Error("Failed to list zones", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"zonas":   names,
	})
}
