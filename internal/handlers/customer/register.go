package customer

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Register creates a customer account (self-service).
// KISS flow:
// 1) Validate payload
// 2) Insert row (conflict if email exists)
func (h *Handler) Register(c *gin.Context) {
	var in struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Mobile   string `json:"mobile"`
	}
	if err := c.ShouldBindJSON(&in); err != nil ||
		strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Password) == "" ||
		strings.TrimSpace(in.Mobile) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	if _, err := h.db.Exec("INSERT INTO customers (name,email,password,mobile) VALUES (?,?,?,?)",
		in.Name, in.Email, in.Password, in.Mobile); err != nil {
		// Most likely the unique email constraint
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer registered successfully"})
}
