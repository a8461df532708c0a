package quotation

import (
	"errors"
	"fmt"
	"math"

	"transvert-logistics/models/tariff"

	"gorm.io/gorm"
)

// Currency tag attached to every quote.
const Currency = "COP"

var (
	ErrZoneNotFound   = errors.New("zone not found")
	ErrTariffNotFound = errors.New("no tariff defined for route")
)

// Service computes shipping quotes from the zone/tariff tables. Pure read
// plus compute, no side effects.
type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// Quote is the priced result of a quotation request, rounded to 2 decimals.
type Quote struct {
	Cost             float64
	BillableWeight   float64
	VolumetricWeight float64
	Currency         string
}

// VolumetricWeight approximates dimensional weight as L×W×H divided by the
// tariff's factor. Non-positive dimensions yield zero instead of failing.
func VolumetricWeight(length, width, height float64, factor int) float64 {
	if factor <= 0 {
		factor = tariff.DefaultVolumetricFactor
	}
	if length <= 0 || width <= 0 || height <= 0 {
		return 0
	}
	return length * width * height / float64(factor)
}

// Quote resolves the zones by case-insensitive name, finds the directed
// tariff for the pair and prices the billable weight against it.
func (s *Service) Quote(origin, destination string, weight, length, width, height float64) (*Quote, error) {
	originZone, err := s.findZone(origin)
	if err != nil {
		return nil, err
	}
	destinationZone, err := s.findZone(destination)
	if err != nil {
		return nil, err
	}

	var t tariff.Tariff
	err = s.DB.Where("origin_id = ? AND destination_id = ?", originZone.ID, destinationZone.ID).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrTariffNotFound, originZone.Name, destinationZone.Name)
		}
		return nil, fmt.Errorf("tariff lookup failed: %w", err)
	}

	volumetric := VolumetricWeight(length, width, height, t.VolumetricFactor)
	billable := math.Max(weight, volumetric)

	cost := t.BaseCost
	if billable > t.WeightLimitKg {
		cost += (billable - t.WeightLimitKg) * t.CostPerExtraKg
	}

	return &Quote{
		Cost:             round2(cost),
		BillableWeight:   round2(billable),
		VolumetricWeight: round2(volumetric),
		Currency:         Currency,
	}, nil
}

// ZoneNames lists all known zone names for populating the quote form.
func (s *Service) ZoneNames() ([]string, error) {
	var names []string
	if err := s.DB.Model(&tariff.Zone{}).Order("name").Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("zone listing failed: %w", err)
	}
	return names, nil
}

func (s *Service) findZone(name string) (*tariff.Zone, error) {
	var zone tariff.Zone
	err := s.DB.Where("LOWER(name) = LOWER(?)", name).First(&zone).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrZoneNotFound, name)
		}
		return nil, fmt.Errorf("zone lookup failed: %w", err)
	}
	return &zone, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
