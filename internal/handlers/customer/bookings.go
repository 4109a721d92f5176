package customer

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Bookings returns a customer's bookings joined with car details.
func (h *Handler) Bookings(c *gin.Context) {
	id := c.Param("id")

	type row struct {
		ID        int64  `db:"id"`
		Model     string `db:"model"`
		Brand     string `db:"brand"`
		StartDate string `db:"start_date"`
		EndDate   string `db:"end_date"`
		Status    string `db:"status"`
	}

	var rows []row
	if err := h.db.Select(&rows, `SELECT b.id, ca.model, ca.brand, b.start_date, b.end_date, b.status
		FROM bookings b
		JOIN cars ca ON ca.id=b.car_id
		WHERE b.customer_id=?`, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	out := make([]gin.H, 0, len(rows))
	for _, x := range rows {
		out = append(out, gin.H{
			"id":         x.ID,
			"model":      x.Model,
			"brand":      x.Brand,
			"start_date": x.StartDate,
			"end_date":   x.EndDate,
			"status":     x.Status,
		})
	}
	c.JSON(http.StatusOK, out)
}
