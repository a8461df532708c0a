package shipment

import (
	"fmt"

	"transvert-logistics/types"

	shipmentModel "transvert-logistics/models/shipment"
)

// CreateRequest is the intake payload for both the authenticated form and the
// public API. Weight is typed loosely on purpose: a malformed value defaults
// to zero instead of rejecting the whole request.
type CreateRequest struct {
	SenderName  string `json:"remitente_nombre" validate:"required,max=100"`
	SenderPhone string `json:"remitente_telefono" validate:"required,max=20"`
	SenderEmail string `json:"remitente_email" validate:"omitempty,email"`

	RecipientName  string `json:"destinatario_nombre" validate:"required,max=100"`
	RecipientPhone string `json:"destinatario_telefono" validate:"required,max=20"`
	RecipientEmail string `json:"destinatario_email" validate:"omitempty,email"`

	Type       string      `json:"tipo_envio" validate:"required,max=20"`
	Weight     interface{} `json:"peso"`
	Dimensions string      `json:"dimensiones" validate:"omitempty,max=100"`

	OriginAddress      string `json:"direccion_origen" validate:"required,max=200"`
	DestinationAddress string `json:"direccion_destino" validate:"required,max=200"`
}

func (r CreateRequest) Validate() error {
	if r.SenderName == "" {
		return fmt.Errorf("remitente_nombre is required")
	}
	if r.SenderPhone == "" {
		return fmt.Errorf("remitente_telefono is required")
	}
	if r.RecipientName == "" {
		return fmt.Errorf("destinatario_nombre is required")
	}
	if r.RecipientPhone == "" {
		return fmt.Errorf("destinatario_telefono is required")
	}
	if r.Type == "" {
		return fmt.Errorf("tipo_envio is required")
	}
	if r.OriginAddress == "" {
		return fmt.Errorf("direccion_origen is required")
	}
	if r.DestinationAddress == "" {
		return fmt.Errorf("direccion_destino is required")
	}
	return types.ValidateStruct(r)
}

// TransitionRequest moves a shipment to a new status.
type TransitionRequest struct {
	ShipmentID uint   `json:"envio_id" validate:"required"`
	NewStatus  string `json:"nuevo_estado" validate:"required"`
	Location   string `json:"ubicacion" validate:"omitempty,max=100"`
	Detail     string `json:"detalle"`
}

func (r TransitionRequest) Validate() error {
	if r.ShipmentID == 0 {
		return fmt.Errorf("envio_id is required")
	}
	if !shipmentModel.Status(r.NewStatus).IsValid() {
		return fmt.Errorf("nuevo_estado must be one of the known shipment statuses")
	}
	return types.ValidateStruct(r)
}
