package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Bookings returns every booking joined with its customer and car.
// Rows come back in natural storage order.
func (h *Handler) Bookings(c *gin.Context) {
	type row struct {
		ID             int64  `db:"id"`
		CustomerName   string `db:"customer_name"`
		CustomerMobile string `db:"customer_mobile"`
		Model          string `db:"model"`
		Brand          string `db:"brand"`
		StartDate      string `db:"start_date"`
		EndDate        string `db:"end_date"`
		Status         string `db:"status"`
	}

	var rows []row
	if err := h.db.Select(&rows, `SELECT b.id, cu.name AS customer_name, cu.mobile AS customer_mobile,
			ca.model, ca.brand, b.start_date, b.end_date, b.status
		FROM bookings b
		JOIN customers cu ON cu.id=b.customer_id
		JOIN cars ca ON ca.id=b.car_id`); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	out := make([]gin.H, 0, len(rows))
	for _, x := range rows {
		out = append(out, gin.H{
			"id":              x.ID,
			"customer_name":   x.CustomerName,
			"customer_mobile": x.CustomerMobile,
			"model":           x.Model,
			"brand":           x.Brand,
			"start_date":      x.StartDate,
			"end_date":        x.EndDate,
			"status":          x.Status,
		})
	}
	c.JSON(http.StatusOK, out)
}
