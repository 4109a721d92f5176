package handlers

import (
	"net/http"

	"github.com/carhive/rental-api/internal/db"
	"github.com/carhive/rental-api/internal/handlers/admin"
	"github.com/carhive/rental-api/internal/handlers/cars"
	"github.com/carhive/rental-api/internal/handlers/customer"
	"github.com/carhive/rental-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Router assembles the full HTTP surface. main.go and the handler tests
// build the same engine through this function.
func Router(d *db.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	adminH := admin.New(d)
	custH := customer.New(d)
	carsH := cars.New(d)

	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "Welcome to the Car Rental API") })
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Admin
	r.POST("/admin/login", adminH.Login)
	r.POST("/admin/add", adminH.Create)
	r.POST("/admin/add_car", adminH.AddCar)
	r.GET("/admin/bookings", adminH.Bookings)
	r.PUT("/admin/cancel_booking/:id", adminH.CancelBooking)
	r.PUT("/admin/complete_booking/:id", adminH.CompleteBooking)

	// Customer
	r.POST("/customer/register", custH.Register)
	r.POST("/customer/login", custH.Login)
	r.POST("/customer/rent", custH.Rent)
	r.GET("/customer/bookings/:id", custH.Bookings)
	r.PUT("/customer/cancel_booking/:id", custH.CancelBooking)

	// Cars (shared)
	r.GET("/cars", carsH.List)
	r.GET("/cars_with_bookings", carsH.ListWithBookings)

	return r
}
