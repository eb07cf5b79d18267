package services

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// PurchaseReceiptEmailData holds data for the purchase receipt email
type PurchaseReceiptEmailData struct {
	CustomerName   string
	CustomerEmail  string
	PurchaseNumber string
	PurchaseDate   string
	Items          []ReceiptItem
	Total          float64
	PDFContent     []byte
}

// ReceiptItem represents a line item in a receipt
type ReceiptItem struct {
	ProductName string
	Quantity    int
	Price       float64
	Subtotal    float64
}

// SendPurchaseReceiptEmail sends an order receipt with HTML preview + PDF
// invoice attachment via Resend
func (r *ResendClient) SendPurchaseReceiptEmail(data PurchaseReceiptEmailData) error {
	var itemsRows strings.Builder
	for _, item := range data.Items {
		itemsRows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 8px 0; font-size: 14px; color: #3d3a34;">%s</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #3d3a34;">%d</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #3d3a34;">$%.2f</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; font-weight: 600; color: #3d3a34;">$%.2f</td>
      </tr>
    `, item.ProductName, item.Quantity, item.Price, item.Subtotal))
	}

	htmlBody := fmt.Sprintf(`
  <div style="max-width: 560px; margin: 0 auto; font-family: Helvetica, Arial, sans-serif;">
    <h1 style="font-size: 22px; color: #3d3a34;">Thanks for your order, %s!</h1>
    <p style="font-size: 14px; color: #6e6a61;">
      Order <strong>#%s</strong> placed on %s. Your invoice is attached as a PDF,
      and your downloads are available on your order history page.
    </p>
    <table style="width: 100%%; border-collapse: collapse; margin-top: 16px;">
      <thead>
        <tr style="border-bottom: 1px solid #e5e1d8;">
          <th style="padding: 8px 0; font-size: 12px; text-align: left; color: #6e6a61;">Item</th>
          <th style="padding: 8px 0; font-size: 12px; text-align: right; color: #6e6a61;">Qty</th>
          <th style="padding: 8px 0; font-size: 12px; text-align: right; color: #6e6a61;">Price</th>
          <th style="padding: 8px 0; font-size: 12px; text-align: right; color: #6e6a61;">Total</th>
        </tr>
      </thead>
      <tbody>%s</tbody>
    </table>
    <p style="font-size: 16px; text-align: right; color: #3d3a34; margin-top: 16px;">
      <strong>Total: $%.2f</strong>
    </p>
    <p style="font-size: 12px; color: #a39f95; margin-top: 24px;">
      Cozy Corner Goods · digital guides for a calmer home
    </p>
  </div>
`, data.CustomerName, data.PurchaseNumber, data.PurchaseDate, itemsRows.String(), data.Total)

	payload := map[string]interface{}{
		"from":    r.from,
		"to":      data.CustomerEmail,
		"subject": fmt.Sprintf("Your Cozy Corner Goods receipt for order #%s", data.PurchaseNumber),
		"html":    htmlBody,
	}

	if len(data.PDFContent) > 0 {
		payload["attachments"] = []map[string]interface{}{
			{
				"filename": fmt.Sprintf("invoice-%s.pdf", data.PurchaseNumber),
				"content":  base64.StdEncoding.EncodeToString(data.PDFContent),
			},
		}
	}

	return r.send(payload)
}
