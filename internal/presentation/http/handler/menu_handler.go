package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stallworks/stallpos-api/internal/application/service"
	"github.com/stallworks/stallpos-api/internal/presentation/http/dto/request"
	"github.com/stallworks/stallpos-api/internal/presentation/http/dto/response"
)

// MenuHandler handles menu catalog HTTP requests
type MenuHandler struct {
	catalogService *service.CatalogService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(catalogService *service.CatalogService) *MenuHandler {
	return &MenuHandler{catalogService: catalogService}
}

// List handles listing the menu catalog
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.catalogService.ListItems(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu retrieved successfully", items)
}

// Create handles adding a menu item
func (h *MenuHandler) Create(c *gin.Context) {
	var req request.AddMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Enter a valid name and price (Rs. 10-200)")
		return
	}

	item, err := h.catalogService.AddItem(c.Request.Context(), &service.AddItemInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Menu item added", item)
}

// Delete handles removing a menu item
func (h *MenuHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	if err := h.catalogService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item deleted", nil)
}
