package quotation

import (
	"fmt"
	"testing"

	"transvert-logistics/models/tariff"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&tariff.Zone{}, &tariff.Tariff{}))
	return db
}

func seedRoute(t *testing.T, db *gorm.DB, origin, destination string, base, limit, extra float64, factor int) {
	t.Helper()

	originZone := tariff.Zone{Name: origin}
	destinationZone := tariff.Zone{Name: destination}
	require.NoError(t, db.Create(&originZone).Error)
	require.NoError(t, db.Create(&destinationZone).Error)
	require.NoError(t, db.Create(&tariff.Tariff{
		OriginID:         originZone.ID,
		DestinationID:    destinationZone.ID,
		VolumetricFactor: factor,
		BaseCost:         base,
		WeightLimitKg:    limit,
		CostPerExtraKg:   extra,
	}).Error)
}

func TestQuoteOverWeightLimit(t *testing.T) {
	db := newTestDB(t)
	seedRoute(t, db, "Bogota", "Medellin", 10000, 5, 2000, 5000)

	service := NewService(db)
	quote, err := service.Quote("Bogota", "Medellin", 6, 0, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 12000.0, quote.Cost)
	assert.Equal(t, 6.0, quote.BillableWeight)
	assert.Equal(t, 0.0, quote.VolumetricWeight)
	assert.Equal(t, "COP", quote.Currency)
}

func TestQuoteUnderWeightLimitChargesBase(t *testing.T) {
	db := newTestDB(t)
	seedRoute(t, db, "Bogota", "Medellin", 10000, 5, 2000, 5000)

	service := NewService(db)
	quote, err := service.Quote("Bogota", "Medellin", 2, 0, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 10000.0, quote.Cost)
	assert.Equal(t, 2.0, quote.BillableWeight)
}

func TestQuoteVolumetricDominates(t *testing.T) {
	db := newTestDB(t)
	seedRoute(t, db, "Bogota", "Cali", 10000, 5, 2000, 5000)

	service := NewService(db)
	// 50x50x40 / 5000 = 20kg volumetric against 3kg actual
	quote, err := service.Quote("Bogota", "Cali", 3, 50, 50, 40)
	require.NoError(t, err)

	assert.Equal(t, 20.0, quote.VolumetricWeight)
	assert.Equal(t, 20.0, quote.BillableWeight)
	assert.Equal(t, 40000.0, quote.Cost)
}

func TestQuoteCaseInsensitiveZones(t *testing.T) {
	db := newTestDB(t)
	seedRoute(t, db, "Bogota", "Medellin", 10000, 5, 2000, 5000)

	service := NewService(db)
	quote, err := service.Quote("bogota", "MEDELLIN", 1, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 10000.0, quote.Cost)
}

func TestQuoteUnknownZone(t *testing.T) {
	db := newTestDB(t)
	seedRoute(t, db, "Bogota", "Medellin", 10000, 5, 2000, 5000)

	service := NewService(db)
	_, err := service.Quote("Bogota", "Leticia", 1, 0, 0, 0)
	assert.ErrorIs(t, err, ErrZoneNotFound)
}

func TestQuoteRouteIsDirected(t *testing.T) {
	db := newTestDB(t)
	seedRoute(t, db, "Bogota", "Medellin", 10000, 5, 2000, 5000)

	service := NewService(db)
	_, err := service.Quote("Medellin", "Bogota", 1, 0, 0, 0)
	assert.ErrorIs(t, err, ErrTariffNotFound)
}

func TestVolumetricWeight(t *testing.T) {
	assert.Equal(t, 20.0, VolumetricWeight(50, 50, 40, 5000))
	assert.Equal(t, 0.0, VolumetricWeight(0, 50, 40, 5000))
	assert.Equal(t, 0.0, VolumetricWeight(50, -1, 40, 5000))
	// non-positive factor falls back to the default divisor
	assert.Equal(t, 20.0, VolumetricWeight(50, 50, 40, 0))
}

func TestZoneNames(t *testing.T) {
	db := newTestDB(t)
	seedRoute(t, db, "Bogota", "Medellin", 10000, 5, 2000, 5000)

	service := NewService(db)
	names, err := service.ZoneNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Bogota", "Medellin"}, names)
}
