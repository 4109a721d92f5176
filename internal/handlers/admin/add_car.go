package admin

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AddCar registers a new car. New cars start available.
func (h *Handler) AddCar(c *gin.Context) {
	var in struct {
		Model       string  `json:"model"`
		Brand       string  `json:"brand"`
		PricePerDay float64 `json:"price_per_day"`
	}
	if err := c.ShouldBindJSON(&in); err != nil ||
		strings.TrimSpace(in.Model) == "" ||
		strings.TrimSpace(in.Brand) == "" ||
		in.PricePerDay <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	if _, err := h.db.Exec("INSERT INTO cars (model,brand,price_per_day,available) VALUES (?,?,?,1)",
		in.Model, in.Brand, in.PricePerDay); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Car added successfully"})
}
