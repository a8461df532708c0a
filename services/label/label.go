package label

import (
	"bytes"
	"fmt"

	"transvert-logistics/models/shipment"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

const companyName = "TRANSVERT SOLUTIONS"

// Generate renders the printable A6 shipping label for a shipment: every
// shipment field plus a QR code encoding the tracking number. It works from
// the snapshot it receives and never touches the database.
func Generate(env shipment.Shipment) ([]byte, error) {
	qrPNG, err := qrcode.Encode(env.TrackingCode, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A6", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, companyName, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 9)
	line := func(indent float64, text string) {
		pdf.SetX(pdf.GetX() + indent)
		pdf.CellFormat(0, 5, tr(text), "", 1, "L", false, 0, "")
	}

	dimensions := ""
	if env.Dimensions != nil {
		dimensions = *env.Dimensions
	}

	line(0, fmt.Sprintf("GUIA: %s", env.TrackingCode))
	line(0, fmt.Sprintf("ESTADO: %s", env.Status))
	line(0, fmt.Sprintf("TIPO DE ENVÍO: %s", env.Type))
	line(0, "REMITENTE:")
	line(3, fmt.Sprintf("Nombre: %s", env.SenderName))
	line(3, fmt.Sprintf("Teléfono: %s", env.SenderPhone))
	line(3, fmt.Sprintf("Email: %s", deref(env.SenderEmail)))
	line(0, "DESTINATARIO:")
	line(3, fmt.Sprintf("Nombre: %s", env.RecipientName))
	line(3, fmt.Sprintf("Teléfono: %s", env.RecipientPhone))
	line(3, fmt.Sprintf("Email: %s", deref(env.RecipientEmail)))
	line(0, fmt.Sprintf("DIRECCIÓN ORIGEN: %s", env.OriginAddress))
	line(0, fmt.Sprintf("DIRECCIÓN DESTINO: %s", env.DestinationAddress))
	line(0, fmt.Sprintf("PESO: %.2f kg", env.Weight))
	line(0, fmt.Sprintf("DIMENSIONES: %s", dimensions))
	line(0, fmt.Sprintf("FECHA: %s", env.CreatedAt.Format("02/01/2006")))

	// QR centered below the text block.
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr-"+env.TrackingCode, opts, bytes.NewReader(qrPNG))
	pageWidth, _ := pdf.GetPageSize()
	qrSize := 35.0
	pdf.ImageOptions("qr-"+env.TrackingCode, (pageWidth-qrSize)/2, pdf.GetY()+4, qrSize, qrSize, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render label PDF: %w", err)
	}

	return buf.Bytes(), nil
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
