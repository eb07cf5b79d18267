package services

import (
	"bytes"
	"fmt"
	"log"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/moghost88/cozy-corner-goods/models"
)

// GeneratePurchaseInvoicePDF renders an in-memory invoice PDF for a purchase.
func GeneratePurchaseInvoicePDF(purchase *models.Purchase, customerName, customerEmail string) *bytes.Buffer {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkBrown := color.Color{Red: 61, Green: 58, Blue: 52}
	warmGray := color.Color{Red: 110, Green: 106, Blue: 97}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("INVOICE", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkBrown,
			})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("COZY CORNER GOODS", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkBrown,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("orders@cozycornergoods.shop", props.Text{
				Size:  9,
				Color: warmGray,
			})
		})
	})

	m.Row(8, func() {})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("BILL TO", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkBrown,
			})
		})
		m.Col(6, func() {
			m.Text("INVOICE DETAILS", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkBrown,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(customerName, props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkBrown,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Invoice #%s", purchase.PurchaseNumber), props.Text{
				Size:  10,
				Color: darkBrown,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(customerEmail, props.Text{
				Size:  9,
				Color: warmGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Date: %s", purchase.CreatedAt.Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: warmGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(8, func() {})

	// Items table header
	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Description", props.Text{Size: 8, Style: consts.Bold, Color: darkBrown})
		})
		m.Col(2, func() {
			m.Text("Qty", props.Text{Size: 8, Style: consts.Bold, Color: darkBrown, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text("Price", props.Text{Size: 8, Style: consts.Bold, Color: darkBrown, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text("Total", props.Text{Size: 8, Style: consts.Bold, Color: darkBrown, Align: consts.Right})
		})
	})

	for _, item := range purchase.Items {
		item := item
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(item.ProductName, props.Text{Size: 9, Color: darkBrown})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d", item.Quantity), props.Text{Size: 9, Color: darkBrown, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", item.Price), props.Text{Size: 9, Color: darkBrown, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", item.Subtotal), props.Text{Size: 9, Color: darkBrown, Align: consts.Right})
			})
		})
	}

	m.Row(8, func() {})

	m.Row(8, func() {
		m.Col(8, func() {})
		m.Col(4, func() {
			m.Text(fmt.Sprintf("TOTAL  $%.2f", purchase.Total), props.Text{
				Size:  12,
				Style: consts.Bold,
				Color: darkBrown,
				Align: consts.Right,
			})
		})
	})

	m.Row(10, func() {})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Digital goods, delivered instantly. No shipping required.", props.Text{
				Size:  8,
				Color: warmGray,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		log.Printf("[invoice.pdf] failed to render invoice %s: %v", purchase.PurchaseNumber, err)
		return &bytes.Buffer{}
	}
	return &buf
}
