package entity

import (
	"github.com/google/uuid"

	"github.com/stallworks/stallpos-api/internal/domain/enum"
)

// BillLine is one line of an in-progress bill. Name and price are copied
// from the menu item at add time, so catalog edits never reach an open bill.
type BillLine struct {
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Name       string    `json:"name"`
	Price      int64     `json:"price"`
	Qty        int       `json:"qty"`
}

// Bill is the in-progress order being assembled before payment. It lives
// only in memory and is owned by the bill service; completing it produces
// an immutable Sale.
type Bill struct {
	Lines   []BillLine         `json:"lines"`
	Total   int64              `json:"total"`
	Payment enum.PaymentMethod `json:"payment,omitempty"`
}

// NewBill returns an empty bill with no payment selected.
func NewBill() *Bill {
	return &Bill{Lines: []BillLine{}}
}

// AddItem merges the item into an existing line by menu item id, or appends
// a new line with quantity 1, then recomputes the total.
func (b *Bill) AddItem(menuItemID uuid.UUID, name string, price int64) {
	for i := range b.Lines {
		if b.Lines[i].MenuItemID == menuItemID {
			b.Lines[i].Qty++
			b.recompute()
			return
		}
	}
	b.Lines = append(b.Lines, BillLine{
		MenuItemID: menuItemID,
		Name:       name,
		Price:      price,
		Qty:        1,
	})
	b.recompute()
}

// RemoveUnit decrements the quantity at the given line index, dropping the
// line when it reaches zero. Out-of-range indices are a no-op; the caller's
// UI is expected to prevent them.
func (b *Bill) RemoveUnit(index int) bool {
	if index < 0 || index >= len(b.Lines) {
		return false
	}
	if b.Lines[index].Qty > 1 {
		b.Lines[index].Qty--
	} else {
		b.Lines = append(b.Lines[:index], b.Lines[index+1:]...)
	}
	b.recompute()
	return true
}

// SetPayment records the chosen payment method.
func (b *Bill) SetPayment(method enum.PaymentMethod) {
	b.Payment = method
}

// CanComplete reports whether the bill is ready to be finalized: a payment
// method is selected and there is something to charge.
func (b *Bill) CanComplete() bool {
	return b.Payment != "" && b.Total > 0
}

// Reset empties the bill and clears the payment selection.
func (b *Bill) Reset() {
	b.Lines = []BillLine{}
	b.Total = 0
	b.Payment = ""
}

func (b *Bill) recompute() {
	var total int64
	for i := range b.Lines {
		total += b.Lines[i].Price * int64(b.Lines[i].Qty)
	}
	b.Total = total
}
