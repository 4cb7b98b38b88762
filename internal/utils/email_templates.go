package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"oudora_back_end/internal/models"
)

var templateFuncs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("Rs %.2f", v) },
	"lineTotal": func(item models.OrderItem) string {
		return fmt.Sprintf("Rs %.2f", item.Price*float64(item.Quantity))
	},
	"upper":   strings.ToUpper,
	"shortID": func(id string) string { return strings.ToUpper(id[:8]) },
}

var invoiceTmpl = template.Must(template.New("invoice").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f4f4f4;">
  <div style="background-color: #ffffff; padding: 30px; border-radius: 8px;">
    <div style="text-align: center; border-bottom: 3px solid #d4af37; padding-bottom: 20px; margin-bottom: 30px;">
      <h1 style="color: #1a1a1a; margin: 0; font-size: 28px;">Oudora</h1>
      <p style="color: #666; margin: 5px 0;">Luxury Ittars</p>
      <p style="color: #666; margin: 5px 0;">Invoice #{{.Order.ID}}</p>
    </div>

    <div style="margin-bottom: 30px; padding: 15px; background-color: #f9f9f9; border-radius: 5px;">
      <h3 style="margin-top: 0; color: #1a1a1a; font-size: 14px; text-transform: uppercase;">Order Information</h3>
      <p><strong>Order ID:</strong> {{.Order.ID}}</p>
      <p><strong>Order Date:</strong> {{.Order.CreatedAt.Format "January 2, 2006"}}</p>
      <p><strong>Status:</strong> {{.Order.Status}}</p>
      <h3 style="color: #1a1a1a; font-size: 14px; text-transform: uppercase;">Shipping Address</h3>
      <p><strong>{{.Order.CustomerName}}</strong></p>
      <p>{{.Order.ShippingAddress.String}}</p>
      <p><strong>Email:</strong> {{.Order.CustomerEmail}}</p>
      <p><strong>Phone:</strong> {{.Order.CustomerPhone}}</p>
    </div>

    <table style="width: 100%; border-collapse: collapse; margin-bottom: 20px;">
      <thead>
        <tr>
          <th style="background-color: #1a1a1a; color: #d4af37; padding: 12px; text-align: left;">Product</th>
          <th style="background-color: #1a1a1a; color: #d4af37; padding: 12px; text-align: left;">Quantity</th>
          <th style="background-color: #1a1a1a; color: #d4af37; padding: 12px; text-align: right;">Price</th>
          <th style="background-color: #1a1a1a; color: #d4af37; padding: 12px; text-align: right;">Total</th>
        </tr>
      </thead>
      <tbody>
        {{range .Order.Items}}
        <tr>
          <td style="padding: 12px; border-bottom: 1px solid #ddd;"><strong>{{.Name}}</strong></td>
          <td style="padding: 12px; border-bottom: 1px solid #ddd;">{{.Quantity}}</td>
          <td style="padding: 12px; border-bottom: 1px solid #ddd; text-align: right;">{{money .Price}}</td>
          <td style="padding: 12px; border-bottom: 1px solid #ddd; text-align: right;">{{lineTotal .}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <div style="margin-top: 20px; padding-top: 20px; border-top: 2px solid #ddd;">
      <p>Subtotal: {{money .Order.Subtotal}}</p>
      {{if gt .Order.Tax 0.0}}<p>Tax: {{money .Order.Tax}}</p>{{end}}
      <p style="font-size: 24px; font-weight: bold; color: #1a1a1a; border-top: 2px solid #d4af37; padding-top: 10px;">Total: {{money .Order.Total}}</p>
    </div>

    <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #ddd; text-align: center; color: #666; font-size: 12px;">
      <p>Thank you for your order!</p>
      <p style="margin-bottom: 10px;"><strong>Track Your Order:</strong></p>
      <a href="{{.TrackURL}}" style="display: inline-block; padding: 12px 24px; background-color: #d4af37; color: #1a1a1a; text-decoration: none; border-radius: 5px; font-weight: bold;">
        Track Order #{{shortID .Order.ID.String}}
      </a>
      {{if .QR}}
      <p style="margin-top: 15px;">Or scan this code:</p>
      <img src="{{.QR}}" alt="Order tracking QR code" width="144" height="144" />
      {{end}}
      <p style="margin-top: 15px;">
        You can also track your order on our website with your Order ID: <strong>{{.Order.ID}}</strong>
      </p>
    </div>
  </div>
</body>
</html>`))

var adminAlertTmpl = template.Must(template.New("adminAlert").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 700px; margin: 0 auto; padding: 20px; background-color: #f4f4f4;">
  <div style="background-color: #ffffff; padding: 30px; border-radius: 8px; border-left: 5px solid #d4af37;">
    <div style="text-align: center; border-bottom: 3px solid #d4af37; padding-bottom: 20px; margin-bottom: 30px;">
      <h1 style="color: #1a1a1a; margin: 0; font-size: 28px;">🛍️ New Order Received</h1>
      <div style="display: inline-block; background-color: #ff6b6b; color: white; padding: 8px 16px; border-radius: 20px; font-weight: bold;">NEW ORDER</div>
    </div>

    <div style="margin-bottom: 30px; padding: 15px; background-color: #f9f9f9; border-radius: 5px;">
      <h3 style="margin-top: 0; color: #1a1a1a; font-size: 14px; text-transform: uppercase;">Order Information</h3>
      <p><strong>Order ID:</strong> {{.ID}}</p>
      <p><strong>Order Date:</strong> {{.CreatedAt.Format "January 2, 2006 15:04"}}</p>
      <p><strong>Status:</strong> <span style="color: #ff6b6b; font-weight: bold;">{{upper .Status}}</span></p>
      <p><strong>Payment Method:</strong> {{.PaymentMethod}}</p>
      <h3 style="color: #1a1a1a; font-size: 14px; text-transform: uppercase;">Customer Information</h3>
      <p><strong>Name:</strong> {{.CustomerName}}</p>
      <p><strong>Email:</strong> {{.CustomerEmail}}</p>
      <p><strong>Phone:</strong> {{.CustomerPhone}}</p>
    </div>

    <div style="margin-bottom: 20px;">
      <h3 style="color: #1a1a1a; margin-bottom: 10px;">Shipping Address:</h3>
      <p style="background-color: #f9f9f9; padding: 15px; border-radius: 5px; margin: 0;">{{.ShippingAddress.String}}</p>
    </div>

    <table style="width: 100%; border-collapse: collapse; margin-bottom: 20px;">
      <thead>
        <tr>
          <th style="background-color: #1a1a1a; color: #d4af37; padding: 12px; text-align: left;">Product</th>
          <th style="background-color: #1a1a1a; color: #d4af37; padding: 12px; text-align: left;">Quantity</th>
          <th style="background-color: #1a1a1a; color: #d4af37; padding: 12px; text-align: right;">Price</th>
          <th style="background-color: #1a1a1a; color: #d4af37; padding: 12px; text-align: right;">Total</th>
        </tr>
      </thead>
      <tbody>
        {{range .Items}}
        <tr>
          <td style="padding: 12px; border-bottom: 1px solid #ddd;"><strong>{{.Name}}</strong></td>
          <td style="padding: 12px; border-bottom: 1px solid #ddd;">{{.Quantity}}</td>
          <td style="padding: 12px; border-bottom: 1px solid #ddd; text-align: right;">{{money .Price}}</td>
          <td style="padding: 12px; border-bottom: 1px solid #ddd; text-align: right;">{{lineTotal .}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <div style="margin-top: 20px; padding-top: 20px; border-top: 2px solid #ddd;">
      <p>Subtotal: {{money .Subtotal}}</p>
      {{if gt .Tax 0.0}}<p>Tax: {{money .Tax}}</p>{{end}}
      <p style="font-size: 24px; font-weight: bold; color: #1a1a1a; border-top: 2px solid #d4af37; padding-top: 10px;">Total: {{money .Total}}</p>
    </div>
  </div>
</body>
</html>`))

var contactTmpl = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f4f4f4;">
  <div style="background-color: #ffffff; padding: 30px; border-radius: 8px; border-left: 5px solid #d4af37;">
    <h1 style="color: #1a1a1a; margin-top: 0;">📬 New Contact Message</h1>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <h3 style="color: #1a1a1a;">Message</h3>
    <p style="background-color: #f9f9f9; padding: 15px; border-radius: 5px; white-space: pre-wrap;">{{.Message}}</p>
  </div>
</body>
</html>`))

// InvoiceEmailHTML renders the customer invoice. qrDataURI may be empty
// when QR generation failed; the email then carries the link only.
func InvoiceEmailHTML(order *models.Order, trackURL, qrDataURI string) (string, error) {
	data := struct {
		Order    *models.Order
		TrackURL string
		QR       template.URL
	}{order, trackURL, template.URL(qrDataURI)}

	var buf bytes.Buffer
	if err := invoiceTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func AdminAlertHTML(order *models.Order) (string, error) {
	var buf bytes.Buffer
	if err := adminAlertTmpl.Execute(&buf, order); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func ContactEmailHTML(name, email, message string) (string, error) {
	data := struct{ Name, Email, Message string }{name, email, message}
	var buf bytes.Buffer
	if err := contactTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
