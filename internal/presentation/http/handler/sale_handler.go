package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stallworks/stallpos-api/internal/application/service"
	"github.com/stallworks/stallpos-api/internal/domain/enum"
	"github.com/stallworks/stallpos-api/internal/domain/repository"
	"github.com/stallworks/stallpos-api/internal/presentation/http/dto/request"
	"github.com/stallworks/stallpos-api/internal/presentation/http/dto/response"
	"github.com/stallworks/stallpos-api/pkg/pagination"
)

// SaleHandler handles sale ledger HTTP requests
type SaleHandler struct {
	reportService *service.ReportService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(reportService *service.ReportService) *SaleHandler {
	return &SaleHandler{reportService: reportService}
}

// Get handles retrieving a single ledger entry by id
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.reportService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved", sale)
}

// List handles listing ledger entries with pagination
func (h *SaleHandler) List(c *gin.Context) {
	var req request.SaleFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.SaleFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    req.Page,
			PerPage: req.PerPage,
		},
		Date: req.Date,
	}

	if req.Payment != "" {
		if payment, ok := enum.ParsePaymentMethod(req.Payment); ok {
			params.Payment = &payment
		}
	}

	sales, total, err := h.reportService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", pagination.NewPaginatedResult(sales, pag))
}
