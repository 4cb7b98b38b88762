package utils

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/skip2/go-qrcode"
)

// TrackingQR encodes the order-tracking URL as a PNG data URI ready for
// an <img src="...">.
func TrackingQR(trackURL string) (string, error) {
	png, err := qrcode.Encode(trackURL, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// TrackingURL builds the public tracking link used in invoice emails.
func TrackingURL(orderID string) string {
	return fmt.Sprintf("%s/track-order?orderId=%s", FrontendBaseURL(), url.QueryEscape(orderID))
}

// RenderInvoicePDF loads the storefront invoice page in headless Chrome
// and prints it to PDF. Attachment of the result is best-effort; order
// placement never fails because of it.
func RenderInvoicePDF(orderID string) ([]byte, error) {
	q := url.Values{}
	q.Set("orderId", orderID)
	q.Set("print", "1")
	fullURL := fmt.Sprintf("%s/invoice?%s", FrontendBaseURL(), q.Encode())

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var pdfBuf []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate(fullURL),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
