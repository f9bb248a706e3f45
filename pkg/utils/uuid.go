package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateReceiptNo generates a unique receipt number for a completed sale
func GenerateReceiptNo() string {
	return "RCP-" + strings.ToUpper(uuid.New().String()[:8])
}
