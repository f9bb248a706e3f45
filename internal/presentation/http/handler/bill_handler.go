package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stallworks/stallpos-api/internal/application/service"
	"github.com/stallworks/stallpos-api/internal/presentation/http/dto/request"
	"github.com/stallworks/stallpos-api/internal/presentation/http/dto/response"
)

// BillHandler handles in-progress bill HTTP requests
type BillHandler struct {
	billService *service.BillService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService *service.BillService) *BillHandler {
	return &BillHandler{billService: billService}
}

// Get returns the register's current bill
func (h *BillHandler) Get(c *gin.Context) {
	bill := h.billService.GetBill(GetRegister(c))
	response.OK(c, "Current bill", bill)
}

// AddItem handles adding one unit of a menu item to the bill
func (h *BillHandler) AddItem(c *gin.Context) {
	var req request.AddBillItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.billService.AddItem(c.Request.Context(), GetRegister(c), req.MenuItemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to bill", bill)
}

// RemoveUnit handles removing one unit at a bill line index. An index
// that no longer exists leaves the bill unchanged.
func (h *BillHandler) RemoveUnit(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid line index")
		return
	}

	bill := h.billService.RemoveUnit(GetRegister(c), index)
	response.OK(c, "Item removed from bill", bill)
}

// SetPayment handles selecting the payment method
func (h *BillHandler) SetPayment(c *gin.Context) {
	var req request.SetPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.billService.SetPayment(GetRegister(c), req.Method)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment method selected", bill)
}

// Void discards the current bill without recording a sale
func (h *BillHandler) Void(c *gin.Context) {
	bill := h.billService.Void(GetRegister(c))
	response.OK(c, "Bill voided", bill)
}

// Complete finalizes the bill into a recorded sale
func (h *BillHandler) Complete(c *gin.Context) {
	sale, err := h.billService.Complete(c.Request.Context(), GetRegister(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded", sale)
}
