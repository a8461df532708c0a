package shipment

// Status is the lifecycle state of a shipment. The wire values are the
// Spanish labels the tracking frontend and the public API expose.
type Status string

const (
	StatusCreated        Status = "Creado"
	StatusPickedUp       Status = "Recogido"
	StatusSorting        Status = "En Clasificación"
	StatusInTransit      Status = "En Ruta"
	StatusOutForDelivery Status = "En Reparto"
	StatusDelivered      Status = "Entregado"
	StatusException      Status = "Excepción"
	StatusCancelled      Status = "Cancelado"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusPickedUp, StatusSorting, StatusInTransit,
		StatusOutForDelivery, StatusDelivered, StatusException, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal returns true for states with no outgoing transitions.
// Excepción and Cancelado are absorbing; Entregado ends the normal flow.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusException || s == StatusCancelled
}

// next maps each state to its successor in the normal delivery flow.
var next = map[Status]Status{
	StatusCreated:        StatusPickedUp,
	StatusPickedUp:       StatusSorting,
	StatusSorting:        StatusInTransit,
	StatusInTransit:      StatusOutForDelivery,
	StatusOutForDelivery: StatusDelivered,
}

// CanTransitionTo reports whether moving from s to target is allowed under
// the strict transition graph: the immediate successor in the delivery flow,
// or one of the absorbing exception states from any non-terminal state.
func (s Status) CanTransitionTo(target Status) bool {
	if !target.IsValid() || s.IsTerminal() {
		return false
	}
	if target == StatusException || target == StatusCancelled {
		return true
	}
	return next[s] == target
}

// AllStatuses returns every valid shipment status in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		StatusCreated,
		StatusPickedUp,
		StatusSorting,
		StatusInTransit,
		StatusOutForDelivery,
		StatusDelivered,
		StatusException,
		StatusCancelled,
	}
}
