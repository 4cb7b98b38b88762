package services

import (
	"fmt"
	"log"
	"os"
	"strings"

	"oudora_back_end/internal/models"
	"oudora_back_end/internal/utils"
)

// Mailer is the notification side of order placement and the contact
// form. The SMTP implementation is swapped for a mock in tests.
type Mailer interface {
	SendInvoice(order *models.Order) error
	SendAdminAlert(order *models.Order) error
	SendContactMessage(name, email, message string) error
}

// SMTPMailer sends through the configured SMTP relay.
type SMTPMailer struct{}

func (SMTPMailer) SendInvoice(order *models.Order) error {
	trackURL := utils.TrackingURL(order.ID.String())

	qr, err := utils.TrackingQR(trackURL)
	if err != nil {
		log.Printf("⚠️ Tracking QR generation failed for order %s: %v", order.ID, err)
		qr = ""
	}

	html, err := utils.InvoiceEmailHTML(order, trackURL, qr)
	if err != nil {
		return err
	}

	// PDF rendering needs headless Chrome, so it is opt-in and always
	// best-effort: a render failure must not fail the order.
	var pdf []byte
	if os.Getenv("INVOICE_PDF_ENABLED") == "true" {
		pdf, err = utils.RenderInvoicePDF(order.ID.String())
		if err != nil {
			log.Printf("⚠️ Invoice PDF render failed for order %s: %v", order.ID, err)
			pdf = nil
		}
	}

	subject := fmt.Sprintf("🧾 Your Oudora Order #%s", shortOrderID(order))
	return utils.SendEmail(order.CustomerEmail, subject, html, pdf)
}

func (SMTPMailer) SendAdminAlert(order *models.Order) error {
	html, err := utils.AdminAlertHTML(order)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("🔔 New Order #%s — %s", shortOrderID(order), order.CustomerName)
	return utils.SendEmail(utils.AdminEmail(), subject, html, nil)
}

func (SMTPMailer) SendContactMessage(name, email, message string) error {
	html, err := utils.ContactEmailHTML(name, email, message)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("📬 Contact form message from %s", name)
	return utils.SendEmail(utils.AdminEmail(), subject, html, nil)
}

func shortOrderID(order *models.Order) string {
	return strings.ToUpper(order.ID.String()[:8])
}
