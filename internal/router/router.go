package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/MoisesNEY/hotel-management-system-sub001/internal/domain"
	"github.com/MoisesNEY/hotel-management-system-sub001/internal/middleware"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CreateWalkInBooking(c *ginext.Context)
	PatchBooking(c *ginext.Context)
	ApproveBooking(c *ginext.Context)
	AssignRoom(c *ginext.Context)
	CheckInBooking(c *ginext.Context)
	CheckOutBooking(c *ginext.Context)
	GetInvoice(c *ginext.Context)
	GetBookingInvoice(c *ginext.Context)
	ListInvoices(c *ginext.Context)
	PayInvoice(c *ginext.Context)
	CreateServiceRequest(c *ginext.Context)
	ListServiceRequests(c *ginext.Context)
	UpdateServiceRequestStatus(c *ginext.Context)
}

func InitRouter(mode, jwtSecret string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	auth := middleware.Auth(jwtSecret)

	api := router.Group("/api", auth)
	{
		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)

		// Invoices
		api.GET("/invoices", h.ListInvoices)
		api.GET("/invoices/:id", h.GetInvoice)
		api.POST("/invoices/:id/pay", h.PayInvoice)

		// Service requests
		api.POST("/bookings/:id/service-requests", h.CreateServiceRequest)
		api.GET("/service-requests", h.ListServiceRequests)
	}

	staff := router.Group("/api/staff", auth, middleware.RequireRole(domain.RoleEmployee, domain.RoleAdmin))
	{
		staff.POST("/bookings", h.CreateWalkInBooking)
		staff.GET("/bookings", h.ListBookings)
		staff.GET("/bookings/:id", h.GetBooking)
		staff.PATCH("/bookings/:id", h.PatchBooking)
		staff.POST("/bookings/:id/approve", h.ApproveBooking)
		staff.POST("/bookings/:id/assign-room", h.AssignRoom)
		staff.POST("/bookings/:id/check-in", h.CheckInBooking)
		staff.POST("/bookings/:id/check-out", h.CheckOutBooking)
		staff.POST("/bookings/:id/cancel", h.CancelBooking)
		staff.GET("/bookings/:id/invoice", h.GetBookingInvoice)

		staff.POST("/service-requests/:id/status", h.UpdateServiceRequestStatus)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
