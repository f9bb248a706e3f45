package request

// PurgeDateRequest authorizes deletion of all sales for one date.
// Both the passkey and the explicit confirm flag are required before the
// ledger is touched.
type PurgeDateRequest struct {
	Passkey string `json:"passkey" binding:"required"`
	Confirm bool   `json:"confirm"`
}

// SaleFilterRequest represents ledger listing parameters
type SaleFilterRequest struct {
	Date    string `form:"date"`
	Payment string `form:"payment"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
