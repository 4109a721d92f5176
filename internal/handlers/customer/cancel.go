package customer

import (
	"net/http"

	"github.com/carhive/rental-api/internal/db"
	"github.com/gin-gonic/gin"
)

// CancelBooking sets a booking's status to "Canceled by Customer".
// Deliberately a different literal from the admin path's "Cancelled";
// consumers treat the two as distinct states. Unconditional overwrite,
// and the car stays flagged unavailable.
func (h *Handler) CancelBooking(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.db.Exec("UPDATE bookings SET status=? WHERE id=?", db.StatusCanceledByCustomer, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}
