package request

// AddMenuItemRequest represents a menu item creation request.
// Bounds mirror the catalog rules; the service re-validates after
// trimming the name.
type AddMenuItemRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Price int64  `json:"price" binding:"required,min=10,max=200"`
}
