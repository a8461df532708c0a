package notification

import (
	"fmt"
	"os"
	"strconv"

	"transvert-logistics/logger"
	"transvert-logistics/models/shipment"

	"gopkg.in/gomail.v2"
)

// Dispatcher emails status updates to the parties involved in a shipment.
// Delivery is best effort: transport failures are logged and swallowed, never
// surfaced to the transition that triggered them.
type Dispatcher struct {
	dialer *gomail.Dialer
	from   string
	domain string
}

// NewDispatcherFromEnv builds a dispatcher from SMTP_* environment variables.
// Without SMTP_HOST the dispatcher degrades to a logged no-op.
func NewDispatcherFromEnv() *Dispatcher {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		logger.Warning("SMTP_HOST not set, status notifications disabled")
		return &Dispatcher{domain: os.Getenv("DEFAULT_DOMAIN")}
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	return &Dispatcher{
		dialer: gomail.NewDialer(host, port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASSWORD")),
		from:   os.Getenv("DEFAULT_FROM_EMAIL"),
		domain: os.Getenv("DEFAULT_DOMAIN"),
	}
}

// Dispatch sends the status-update email for a freshly written trace entry.
// The initial Creado entry is skipped: intake is acknowledged elsewhere.
func (d *Dispatcher) Dispatch(env shipment.Shipment, entry shipment.TraceEntry) {
	if entry.NewStatus == shipment.StatusCreated {
		return
	}

	recipients := Recipients(env)
	if len(recipients) == 0 {
		return
	}

	if d.dialer == nil {
		logger.Warning(fmt.Sprintf("SMTP not configured, dropping notification for %s", env.TrackingCode))
		return
	}

	subject := fmt.Sprintf("Actualización de Envío %s: %s", env.TrackingCode, entry.NewStatus)
	body := fmt.Sprintf(
		"Estimado cliente,\n\nEl estado de su envío %s ha sido actualizado.\n"+
			"Nuevo estado: %s\nUbicación: %s\nDetalle: %s\n\n"+
			"Puede seguir su envío en: http://%s/seguimiento/?numero_guia=%s",
		env.TrackingCode, entry.NewStatus, entry.Location, entry.Description,
		d.domain, env.TrackingCode,
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", d.from)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := d.dialer.DialAndSend(msg); err != nil {
		logger.Error(fmt.Sprintf("Failed to send notification for %s", env.TrackingCode), err)
		return
	}

	logger.Success(fmt.Sprintf("Status notification for %s sent to %d recipient(s)", env.TrackingCode, len(recipients)))
}

// Recipients returns the deduplicated non-empty email addresses of the
// sender and recipient.
func Recipients(env shipment.Shipment) []string {
	var recipients []string
	if env.SenderEmail != nil && *env.SenderEmail != "" {
		recipients = append(recipients, *env.SenderEmail)
	}
	if env.RecipientEmail != nil && *env.RecipientEmail != "" {
		duplicate := len(recipients) > 0 && recipients[0] == *env.RecipientEmail
		if !duplicate {
			recipients = append(recipients, *env.RecipientEmail)
		}
	}
	return recipients
}
