package admin

import (
	"net/http"

	"github.com/carhive/rental-api/internal/db"
	"github.com/gin-gonic/gin"
)

// CompleteBooking sets a booking's status to Completed, unconditionally.
func (h *Handler) CompleteBooking(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.db.Exec("UPDATE bookings SET status=? WHERE id=?", db.StatusCompleted, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking completed"})
}
