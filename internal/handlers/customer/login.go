package customer

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Login checks customer credentials and returns the customer id plus the
// mobile number the frontend displays. Plaintext comparison, same as the
// admin path.
func (h *Handler) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&in); err != nil ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Password) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "email and password are required"})
		return
	}

	var row struct {
		ID     int64  `db:"id"`
		Mobile string `db:"mobile"`
	}
	if err := h.db.Get(&row, "SELECT id, mobile FROM customers WHERE email=? AND password=?", in.Email, in.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "customer_id": row.ID, "mobile": row.Mobile})
}
