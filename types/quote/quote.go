package quote

import (
	"fmt"
)

// QuoteRequest is the quotation payload. Numeric fields are typed loosely:
// values that fail to parse count as zero rather than failing the request.
type QuoteRequest struct {
	Origin      string      `json:"origen"`
	Destination string      `json:"destino"`
	Weight      interface{} `json:"peso"`
	Length      interface{} `json:"largo"`
	Width       interface{} `json:"ancho"`
	Height      interface{} `json:"alto"`
}

func (r QuoteRequest) Validate() error {
	if r.Origin == "" || r.Destination == "" {
		return fmt.Errorf("Origen y Destino obligatorios.")
	}
	return nil
}

// QuoteResponse mirrors the public quotation wire format.
type QuoteResponse struct {
	Success          bool    `json:"success"`
	Cost             float64 `json:"costo"`
	BillableWeight   float64 `json:"peso_cobrado"`
	VolumetricWeight float64 `json:"peso_volumetrico"`
	Currency         string  `json:"moneda"`
}
