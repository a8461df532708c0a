package seeders

import (
	"log"

	"transvert-logistics/models/tariff"

	"gorm.io/gorm"
)

// SeedZones inserts the default zone catalog when the table is empty.
func SeedZones(db *gorm.DB) {
	log.Printf("🔍 Checking zone data integrity...")

	var count int64
	if err := db.Model(&tariff.Zone{}).Count(&count).Error; err != nil {
		log.Printf("❌ Failed to count zones: %v", err)
		return
	}
	if count > 0 {
		log.Printf("✅ Zones already seeded (%d rows)", count)
		return
	}

	zones := []tariff.Zone{
		{Name: "Bogota"},
		{Name: "Medellin"},
		{Name: "Cali"},
		{Name: "Barranquilla"},
		{Name: "Cartagena"},
		{Name: "Bucaramanga"},
	}

	if err := db.Create(&zones).Error; err != nil {
		log.Printf("❌ Failed to seed zones: %v", err)
		return
	}
	log.Printf("✅ Seeded %d zones", len(zones))
}

// SeedTariffs inserts a starter tariff table when empty. Routes are directed,
// so each pair is seeded both ways.
func SeedTariffs(db *gorm.DB) {
	var count int64
	if err := db.Model(&tariff.Tariff{}).Count(&count).Error; err != nil {
		log.Printf("❌ Failed to count tariffs: %v", err)
		return
	}
	if count > 0 {
		log.Printf("✅ Tariffs already seeded (%d rows)", count)
		return
	}

	zoneID := func(name string) uint {
		var zone tariff.Zone
		if err := db.Where("name = ?", name).First(&zone).Error; err != nil {
			return 0
		}
		return zone.ID
	}

	type route struct {
		origin, destination string
		base, extra         float64
	}
	routes := []route{
		{"Bogota", "Medellin", 10000, 2000},
		{"Medellin", "Bogota", 10000, 2000},
		{"Bogota", "Cali", 12000, 2200},
		{"Cali", "Bogota", 12000, 2200},
		{"Bogota", "Barranquilla", 15000, 2500},
		{"Barranquilla", "Bogota", 15000, 2500},
		{"Medellin", "Cali", 11000, 2100},
		{"Cali", "Medellin", 11000, 2100},
		{"Cartagena", "Bucaramanga", 14000, 2400},
		{"Bucaramanga", "Cartagena", 14000, 2400},
	}

	var tariffs []tariff.Tariff
	for _, r := range routes {
		originID, destinationID := zoneID(r.origin), zoneID(r.destination)
		if originID == 0 || destinationID == 0 {
			log.Printf("⚠️ Skipping tariff %s -> %s: missing zone", r.origin, r.destination)
			continue
		}
		tariffs = append(tariffs, tariff.Tariff{
			OriginID:         originID,
			DestinationID:    destinationID,
			VolumetricFactor: tariff.DefaultVolumetricFactor,
			BaseCost:         r.base,
			WeightLimitKg:    5,
			CostPerExtraKg:   r.extra,
		})
	}

	if len(tariffs) == 0 {
		return
	}
	if err := db.Create(&tariffs).Error; err != nil {
		log.Printf("❌ Failed to seed tariffs: %v", err)
		return
	}
	log.Printf("✅ Seeded %d tariffs", len(tariffs))
}
