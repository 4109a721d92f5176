package admin

import (
	"net/http"

	"github.com/carhive/rental-api/internal/db"
	"github.com/gin-gonic/gin"
)

// CancelBooking sets a booking's status to Cancelled.
// The overwrite is unconditional: no guard on the current status, and the
// car's available flag is left untouched.
func (h *Handler) CancelBooking(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.db.Exec("UPDATE bookings SET status=? WHERE id=?", db.StatusCancelled, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}
