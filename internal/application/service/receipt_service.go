package service

import (
	"fmt"
	"log"

	"github.com/stallworks/stallpos-api/internal/domain/entity"
	"github.com/stallworks/stallpos-api/pkg/printer"
)

// ReceiptService renders completed sales as ESC/POS receipts and sends
// them to the configured thermal printer. It is purely a feedback
// channel: print failures are logged and swallowed.
type ReceiptService struct {
	printer   printer.Printer
	stallName string
	charWidth int
}

// NewReceiptService creates a new receipt service
func NewReceiptService(p printer.Printer, stallName string, charWidth int) *ReceiptService {
	return &ReceiptService{
		printer:   p,
		stallName: stallName,
		charWidth: charWidth,
	}
}

// PrintSale prints a receipt for a completed sale. An unreachable
// printer is skipped silently rather than logged per sale.
func (s *ReceiptService) PrintSale(sale *entity.Sale) {
	if !s.printer.IsConnected() {
		return
	}
	if err := s.printer.Print(s.renderSale(sale)); err != nil {
		log.Printf("Warning: receipt print failed for %s: %v", sale.ReceiptNo, err)
	}
}

// renderSale builds the ESC/POS byte stream for a sale receipt.
func (s *ReceiptService) renderSale(sale *entity.Sale) []byte {
	doc := printer.NewDocument(s.charWidth)

	doc.Align(printer.AlignCenter).
		Font(printer.FontDouble).
		Line(s.stallName).
		Font(printer.FontNormal).
		Line(sale.RecordedAt.Format("02 Jan 2006 15:04")).
		Line(sale.ReceiptNo).
		Align(printer.AlignLeft).
		Separator()

	for _, item := range sale.Items {
		doc.Pair(
			fmt.Sprintf("%s x%d", item.Name, item.Qty),
			printer.Money(item.Price*int64(item.Qty)),
		)
	}

	doc.Separator().
		Font(printer.FontTall).
		Pair("TOTAL", printer.Money(sale.Total)).
		Font(printer.FontNormal).
		Pair("Paid by", sale.Payment.Label()).
		Separator().
		Align(printer.AlignCenter).
		Line("Thank you, visit again!").
		Cut()

	return doc.Bytes()
}
