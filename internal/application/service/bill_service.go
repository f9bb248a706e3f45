package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stallworks/stallpos-api/internal/domain/entity"
	"github.com/stallworks/stallpos-api/internal/domain/enum"
	"github.com/stallworks/stallpos-api/internal/domain/repository"
	"github.com/stallworks/stallpos-api/pkg/apperror"
	"github.com/stallworks/stallpos-api/pkg/utils"
)

// BillService owns the in-progress bill for each register. A bill never
// touches the database; completing it snapshots the lines into an
// immutable Sale appended to the ledger, then resets the bill.
type BillService struct {
	menuRepo repository.MenuRepository
	saleRepo repository.SaleRepository
	receipts *ReceiptService

	mu    sync.Mutex
	bills map[string]*entity.Bill

	now func() time.Time
}

// NewBillService creates a new bill service
func NewBillService(
	menuRepo repository.MenuRepository,
	saleRepo repository.SaleRepository,
	receipts *ReceiptService,
) *BillService {
	return &BillService{
		menuRepo: menuRepo,
		saleRepo: saleRepo,
		receipts: receipts,
		bills:    make(map[string]*entity.Bill),
		now:      time.Now,
	}
}

// bill returns the register's bill, creating an empty one on first use.
// Callers must hold s.mu.
func (s *BillService) bill(register string) *entity.Bill {
	b, ok := s.bills[register]
	if !ok {
		b = entity.NewBill()
		s.bills[register] = b
	}
	return b
}

// snapshot copies the bill so handlers can marshal it without holding the lock.
func snapshot(b *entity.Bill) *entity.Bill {
	cp := &entity.Bill{
		Lines:   make([]entity.BillLine, len(b.Lines)),
		Total:   b.Total,
		Payment: b.Payment,
	}
	copy(cp.Lines, b.Lines)
	return cp
}

// GetBill returns the register's current bill.
func (s *BillService) GetBill(register string) *entity.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.bill(register))
}

// AddItem adds one unit of a menu item to the register's bill, merging
// into an existing line when the item is already on it. The line copies
// the item's name and price, so later catalog edits leave the bill alone.
func (s *BillService) AddItem(ctx context.Context, register string, menuItemID uuid.UUID) (*entity.Bill, error) {
	item, err := s.menuRepo.GetByID(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.bill(register)
	b.AddItem(item.ID, item.Name, item.Price)
	return snapshot(b), nil
}

// RemoveUnit removes one unit at the given line index. Out-of-range
// indices are a defensive no-op, as the UI can race its own re-render.
func (s *BillService) RemoveUnit(register string, index int) *entity.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.bill(register)
	b.RemoveUnit(index)
	return snapshot(b)
}

// SetPayment selects the payment method for the register's bill.
func (s *BillService) SetPayment(register, method string) (*entity.Bill, error) {
	payment, ok := enum.ParsePaymentMethod(method)
	if !ok {
		return nil, apperror.NewBadRequestError("Payment method must be cash or online")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.bill(register)
	b.SetPayment(payment)
	return snapshot(b), nil
}

// Void discards the register's bill without recording anything.
func (s *BillService) Void(register string) *entity.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.bill(register)
	b.Reset()
	return snapshot(b)
}

// Complete finalizes the register's bill: it appends exactly one Sale to
// the ledger with the bill's total and a detached item snapshot, then
// resets the bill. Completing an empty bill or one without a payment
// method is rejected with no state change.
func (s *BillService) Complete(ctx context.Context, register string) (*entity.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.bill(register)
	if !b.CanComplete() {
		return nil, apperror.NewBadRequestError("Add items and select a payment method before completing the sale")
	}

	now := s.now()
	sale := &entity.Sale{
		ReceiptNo:    utils.GenerateReceiptNo(),
		RecordedAt:   now,
		BusinessDate: now.Format("2006-01-02"),
		Register:     register,
		Total:        b.Total,
		Payment:      b.Payment,
		Items:        make([]entity.SaleItem, 0, len(b.Lines)),
	}
	for _, line := range b.Lines {
		sale.Items = append(sale.Items, entity.SaleItem{
			Name:  line.Name,
			Price: line.Price,
			Qty:   line.Qty,
		})
	}

	if err := s.saleRepo.Append(ctx, sale); err != nil {
		return nil, err
	}

	b.Reset()

	// Fire-and-forget feedback: a failed receipt print never unwinds a
	// recorded sale.
	if s.receipts != nil {
		go s.receipts.PrintSale(sale)
	}

	return sale, nil
}
