package request

import "github.com/google/uuid"

// AddBillItemRequest adds one unit of a menu item to the current bill
type AddBillItemRequest struct {
	MenuItemID uuid.UUID `json:"menu_item_id" binding:"required"`
}

// SetPaymentRequest selects the bill's payment method
type SetPaymentRequest struct {
	Method string `json:"method" binding:"required"`
}
