package admin

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Create adds a new admin account.
// KISS flow:
// 1) Validate payload
// 2) Insert row (conflict if email exists)
func (h *Handler) Create(c *gin.Context) {
	var in struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&in); err != nil ||
		strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Password) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	if _, err := h.db.Exec("INSERT INTO admins (name,email,password) VALUES (?,?,?)", in.Name, in.Email, in.Password); err != nil {
		// Most likely the unique email constraint
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Admin added successfully"})
}
