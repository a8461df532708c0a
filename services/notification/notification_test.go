package notification

import (
	"testing"

	"transvert-logistics/models/shipment"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestRecipients(t *testing.T) {
	env := shipment.Shipment{
		SenderEmail:    strPtr("ana@example.com"),
		RecipientEmail: strPtr("luis@example.com"),
	}
	assert.Equal(t, []string{"ana@example.com", "luis@example.com"}, Recipients(env))
}

func TestRecipientsDeduplicates(t *testing.T) {
	env := shipment.Shipment{
		SenderEmail:    strPtr("ana@example.com"),
		RecipientEmail: strPtr("ana@example.com"),
	}
	assert.Equal(t, []string{"ana@example.com"}, Recipients(env))
}

func TestRecipientsSkipsMissing(t *testing.T) {
	assert.Empty(t, Recipients(shipment.Shipment{}))

	env := shipment.Shipment{
		SenderEmail:    strPtr(""),
		RecipientEmail: strPtr("luis@example.com"),
	}
	assert.Equal(t, []string{"luis@example.com"}, Recipients(env))
}

func TestDispatchSkipsCreatedStatus(t *testing.T) {
	d := &Dispatcher{}
	env := shipment.Shipment{
		TrackingCode:   "G-1234567890ABCDEF",
		SenderEmail:    strPtr("ana@example.com"),
		RecipientEmail: strPtr("luis@example.com"),
	}
	entry := shipment.TraceEntry{NewStatus: shipment.StatusCreated}

	// no dialer configured: a send attempt would be visible as a panic
	d.Dispatch(env, entry)
}

func TestDispatchWithoutDialerIsNoOp(t *testing.T) {
	d := &Dispatcher{}
	env := shipment.Shipment{
		TrackingCode: "G-1234567890ABCDEF",
		SenderEmail:  strPtr("ana@example.com"),
	}
	entry := shipment.TraceEntry{NewStatus: shipment.StatusPickedUp, Location: "Bodega Norte"}

	d.Dispatch(env, entry)
}

func TestDispatchWithoutRecipientsIsNoOp(t *testing.T) {
	d := &Dispatcher{}
	entry := shipment.TraceEntry{NewStatus: shipment.StatusPickedUp}

	d.Dispatch(shipment.Shipment{TrackingCode: "G-1234567890ABCDEF"}, entry)
}
