package shipment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, Status("Perdido").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusException.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())

	assert.False(t, StatusCreated.IsTerminal())
	assert.False(t, StatusOutForDelivery.IsTerminal())
}

func TestCanTransitionToFollowsDeliveryFlow(t *testing.T) {
	flow := []Status{
		StatusCreated, StatusPickedUp, StatusSorting,
		StatusInTransit, StatusOutForDelivery, StatusDelivered,
	}
	for i := 0; i < len(flow)-1; i++ {
		assert.True(t, flow[i].CanTransitionTo(flow[i+1]),
			"%s -> %s", flow[i], flow[i+1])
	}

	// skipping a step is rejected
	assert.False(t, StatusCreated.CanTransitionTo(StatusInTransit))
	// moving backwards is rejected
	assert.False(t, StatusInTransit.CanTransitionTo(StatusPickedUp))
}

func TestCanTransitionToAbsorbingStates(t *testing.T) {
	for _, s := range []Status{StatusCreated, StatusPickedUp, StatusSorting, StatusInTransit, StatusOutForDelivery} {
		assert.True(t, s.CanTransitionTo(StatusException), s.String())
		assert.True(t, s.CanTransitionTo(StatusCancelled), s.String())
	}
}

func TestCanTransitionToFromTerminal(t *testing.T) {
	for _, s := range []Status{StatusDelivered, StatusException, StatusCancelled} {
		for _, target := range AllStatuses() {
			assert.False(t, s.CanTransitionTo(target), "%s -> %s", s, target)
		}
	}
}

func TestCanTransitionToInvalidTarget(t *testing.T) {
	assert.False(t, StatusCreated.CanTransitionTo(Status("Perdido")))
}
