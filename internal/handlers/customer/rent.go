package customer

import (
	"net/http"
	"strings"

	"github.com/carhive/rental-api/internal/db"
	"github.com/gin-gonic/gin"
)

// Rent books a car for a date range.
// Two independent writes: insert the booking, then flag the car
// unavailable. They are intentionally not wrapped in one transaction --
// a crash between the two leaves the flags out of sync. There is also no
// check that the car is currently available or that the dates are free;
// the frontend filters on the available flag.
func (h *Handler) Rent(c *gin.Context) {
	var in struct {
		CustomerID int64  `json:"customer_id"`
		CarID      int64  `json:"car_id"`
		StartDate  string `json:"start_date"`
		EndDate    string `json:"end_date"`
	}
	if err := c.ShouldBindJSON(&in); err != nil ||
		in.CustomerID <= 0 ||
		in.CarID <= 0 ||
		strings.TrimSpace(in.StartDate) == "" ||
		strings.TrimSpace(in.EndDate) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	if _, err := h.db.Exec("INSERT INTO bookings (customer_id,car_id,start_date,end_date,status) VALUES (?,?,?,?,?)",
		in.CustomerID, in.CarID, in.StartDate, in.EndDate, db.StatusBooked); err != nil {
		// Foreign keys make this fail for unknown customer or car ids
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "unknown customer or car"})
		return
	}

	if _, err := h.db.Exec("UPDATE cars SET available=0 WHERE id=?", in.CarID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Car rented successfully"})
}
