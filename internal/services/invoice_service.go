package services

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
	"marketplace/internal/repositories"
	"marketplace/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// InvoiceService renders an order and its lines as a PDF invoice.
type InvoiceService struct {
	Items     repositories.OrderItemRepository
	Products  repositories.ProductRepository
	RequestID string
}

type invoiceLine struct {
	Product  string
	Quantity int
	Price    float64
}

// Generate returns the PDF bytes and a download filename for a loaded order.
func (s InvoiceService) Generate(ctx context.Context, o models.Order) ([]byte, string, error) {
	items, err := s.Items.ListByOrder(ctx, o.ID)
	if err != nil {
		return nil, "", err
	}
	lines := make([]invoiceLine, 0, len(items))
	for _, it := range items {
		name := "product #" + strconv.FormatInt(it.ProductID, 10)
		p, err := s.Products.GetByID(ctx, it.ProductID)
		switch {
		case err == nil:
			name = p.Name
		case !domain.IsNotFound(err):
			return nil, "", err
		}
		lines = append(lines, invoiceLine{Product: name, Quantity: it.Quantity, Price: it.Price})
	}
	utils.LogEvent(s.RequestID, "invoice", "generate", fmt.Sprintf("order_id=%d lines=%d", o.ID, len(lines)))
	return buildInvoicePDF(o, lines)
}

func buildInvoicePDF(o models.Order, lines []invoiceLine) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Order    : #%d", o.ID))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date     : "+utils.FormatDateTime(o.CreatedAt))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Ship to  : "+safe(o.ShippingAddress, "-"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 7, "Product", "1", 0, "", false, 0, "")
	pdf.CellFormat(25, 7, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Subtotal", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	var total float64
	for _, l := range lines {
		sub := l.Price * float64(l.Quantity)
		total += sub
		pdf.CellFormat(90, 7, l.Product, "1", 0, "", false, 0, "")
		pdf.CellFormat(25, 7, strconv.Itoa(l.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, utils.FormatMoney(l.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, utils.FormatMoney(sub), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatMoney(total))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("invoice-%d.pdf", o.ID), nil
}

func safe(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
