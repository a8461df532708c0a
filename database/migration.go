package database

import (
	"fmt"

	"transvert-logistics/logger"
	logModel "transvert-logistics/models/log"
	"transvert-logistics/models/shipment"
	"transvert-logistics/models/support"
	"transvert-logistics/models/tariff"
	"transvert-logistics/models/user"

	"gorm.io/gorm"
)

// Migrate runs auto migration in dependency order and then applies the
// additional indexes AutoMigrate does not cover.
func Migrate(db *gorm.DB) error {
	// Stage 1: foundation models without cross-table references
	stage1Models := []interface{}{
		&user.User{},
		&tariff.Zone{},
		&logModel.Log{},
	}

	// Stage 2: models referencing stage 1
	stage2Models := []interface{}{
		&tariff.Tariff{},
		&shipment.Shipment{},
		&support.Ticket{},
	}

	// Stage 3: models referencing stage 2
	stage3Models := []interface{}{
		&shipment.TraceEntry{},
		&support.Response{},
	}

	for _, stage := range [][]interface{}{stage1Models, stage2Models, stage3Models} {
		for _, model := range stage {
			if err := db.AutoMigrate(model); err != nil {
				return fmt.Errorf("failed to migrate %T: %w", model, err)
			}
		}
	}

	if err := createIndexes(db); err != nil {
		return err
	}

	return nil
}

// createIndexes creates additional indexes for the hot query paths.
func createIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_shipments_tracking_code ON shipments(tracking_code)",
		"CREATE INDEX IF NOT EXISTS idx_shipments_status ON shipments(status)",
		"CREATE INDEX IF NOT EXISTS idx_shipments_created_at ON shipments(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_shipment_traces_shipment_id ON shipment_traces(shipment_id)",
		"CREATE INDEX IF NOT EXISTS idx_shipment_traces_created_at ON shipment_traces(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_support_tickets_status ON support_tickets(status)",
		"CREATE INDEX IF NOT EXISTS idx_support_tickets_created_at ON support_tickets(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			logger.Warning(fmt.Sprintf("Failed to create index: %s - Error: %v", index, err))
		}
	}

	return nil
}
