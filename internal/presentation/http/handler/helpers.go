package handler

import (
	"github.com/gin-gonic/gin"
)

// GetRegister extracts the register name from the Gin context, defaulting
// to "main" for tokens issued before registers were named.
func GetRegister(c *gin.Context) string {
	register, exists := c.Get("register")
	if !exists {
		return "main"
	}
	name, ok := register.(string)
	if !ok || name == "" {
		return "main"
	}
	return name
}
