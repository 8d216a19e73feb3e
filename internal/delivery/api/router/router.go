// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lodge/internal/delivery/api/middleware"
	"lodge/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	HotelHandler    *handler.HotelHandler
	BookingHandler  *handler.BookingHandler
	FacilityHandler *handler.FacilityHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	hotelHandler    *handler.HotelHandler
	bookingHandler  *handler.BookingHandler
	facilityHandler *handler.FacilityHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		hotelHandler:    params.HotelHandler,
		bookingHandler:  params.BookingHandler,
		facilityHandler: params.FacilityHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Public catalog routes
	hotelsGroup := e.Group("/hotels")
	{
		hotelsGroup.GET("", r.hotelHandler.ListHotels)
		hotelsGroup.GET("/:id/rooms", r.hotelHandler.ListHotelRooms)
	}

	// Facility routes
	facilitiesGroup := e.Group("/facilities")
	{
		facilitiesGroup.GET("", r.facilityHandler.ListFacilities)
		facilitiesGroup.POST("", r.facilityHandler.CreateFacility, r.authMiddleware.Authenticate)
	}

	// Booking routes require authentication
	bookingsGroup := e.Group("/bookings")
	bookingsGroup.Use(r.authMiddleware.Authenticate)
	{
		bookingsGroup.POST("", r.bookingHandler.CreateBooking)
		bookingsGroup.GET("", r.bookingHandler.ListBookings)
		bookingsGroup.GET("/me", r.bookingHandler.ListMyBookings)
		bookingsGroup.GET("/:id/qr", r.bookingHandler.GetBookingQR)
	}
}
