package cars

import (
	"net/http"

	"github.com/carhive/rental-api/internal/db"
	"github.com/gin-gonic/gin"
)

// List returns every car, including ones currently flagged unavailable.
// The frontend does its own filtering on the available flag.
func (h *Handler) List(c *gin.Context) {
	var cs []db.Car
	if err := h.db.Select(&cs, "SELECT id, model, brand, price_per_day, available FROM cars ORDER BY id ASC"); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	out := make([]gin.H, 0, len(cs))
	for _, car := range cs {
		out = append(out, gin.H{
			"id":            car.ID,
			"model":         car.Model,
			"brand":         car.Brand,
			"price_per_day": car.PricePerDay,
			"available":     car.Available,
		})
	}
	c.JSON(http.StatusOK, out)
}
