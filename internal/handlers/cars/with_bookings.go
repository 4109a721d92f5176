package cars

import (
	"net/http"

	"github.com/carhive/rental-api/internal/db"
	"github.com/gin-gonic/gin"
)

// ListWithBookings returns every car with its active bookings embedded.
// Only rows whose status is exactly "Booked" are attached; cancelled and
// completed bookings are excluded. Cars without active bookings get an
// empty list.
func (h *Handler) ListWithBookings(c *gin.Context) {
	var cs []db.Car
	if err := h.db.Select(&cs, "SELECT id, model, brand, price_per_day, available FROM cars ORDER BY id ASC"); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	type bookingRow struct {
		CarID     int64  `db:"car_id"`
		StartDate string `db:"start_date"`
		EndDate   string `db:"end_date"`
		Status    string `db:"status"`
	}
	var bs []bookingRow
	if err := h.db.Select(&bs, "SELECT car_id, start_date, end_date, status FROM bookings WHERE status=?", db.StatusBooked); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	byCar := make(map[int64][]gin.H, len(cs))
	for _, b := range bs {
		byCar[b.CarID] = append(byCar[b.CarID], gin.H{
			"start_date": b.StartDate,
			"end_date":   b.EndDate,
			"status":     b.Status,
		})
	}

	out := make([]gin.H, 0, len(cs))
	for _, car := range cs {
		bookings := byCar[car.ID]
		if bookings == nil {
			bookings = []gin.H{}
		}
		out = append(out, gin.H{
			"id":            car.ID,
			"model":         car.Model,
			"brand":         car.Brand,
			"price_per_day": car.PricePerDay,
			"available":     car.Available,
			"bookings":      bookings,
		})
	}
	c.JSON(http.StatusOK, out)
}
