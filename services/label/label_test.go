package label

import (
	"testing"
	"time"

	"transvert-logistics/models/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleShipment() shipment.Shipment {
	email := "ana@example.com"
	dims := "30x20x10"
	return shipment.Shipment{
		ID:                 1,
		TrackingCode:       "G-1234567890ABCDEF",
		SenderName:         "Ana Torres",
		SenderPhone:        "3001234567",
		SenderEmail:        &email,
		RecipientName:      "Luis Mejía",
		RecipientPhone:     "3017654321",
		Type:               "Paquete",
		Weight:             2.5,
		Dimensions:         &dims,
		OriginAddress:      "Calle 10 #5-20, Bogota",
		DestinationAddress: "Carrera 43 #8-15, Medellin",
		Status:             shipment.StatusCreated,
		CreatedAt:          time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestGenerateProducesPDF(t *testing.T) {
	data, err := Generate(sampleShipment())
	require.NoError(t, err)

	require.Greater(t, len(data), 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerateHandlesNilOptionalFields(t *testing.T) {
	env := sampleShipment()
	env.SenderEmail = nil
	env.RecipientEmail = nil
	env.Dimensions = nil

	data, err := Generate(env)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
