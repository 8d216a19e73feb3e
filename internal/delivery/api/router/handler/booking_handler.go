package handler

import (
	"log/slog"
	"net/http"
	"time"

	"lodge/internal/delivery/api/middleware"
	"lodge/internal/delivery/api/response"
	"lodge/internal/domain/entity"
	"lodge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// dateLayout is the wire format for check-in and check-out days.
const dateLayout = "2006-01-02"

// BookingHandlerParams holds dependencies for BookingHandler, injected by Fx.
type BookingHandlerParams struct {
	fx.In

	BookingUC usecase.BookingUsecase
	Logger    *slog.Logger
}

// BookingHandler holds dependencies for reservation-related handlers
type BookingHandler struct {
	bookingUC usecase.BookingUsecase
	logger    *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler
func NewBookingHandler(params BookingHandlerParams) *BookingHandler {
	return &BookingHandler{
		bookingUC: params.BookingUC,
		logger:    params.Logger,
	}
}

// CreateBookingRequest represents the request body for creating a booking
type CreateBookingRequest struct {
	RoomID   string `json:"room_id" validate:"required,uuid"`
	DateFrom string `json:"date_from" validate:"required,datetime=2006-01-02"`
	DateTo   string `json:"date_to" validate:"required,datetime=2006-01-02"`
}

// BookingResponse is the public representation of a booking
type BookingResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	RoomID    string    `json:"room_id"`
	DateFrom  string    `json:"date_from"`
	DateTo    string    `json:"date_to"`
	Price     int64     `json:"price"`
	Nights    int       `json:"nights"`
	TotalCost int64     `json:"total_cost"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func toBookingResponse(booking *entity.Booking) *BookingResponse {
	return &BookingResponse{
		ID:        booking.ID.String(),
		UserID:    booking.UserID.String(),
		RoomID:    booking.RoomID.String(),
		DateFrom:  booking.DateFrom.Format(dateLayout),
		DateTo:    booking.DateTo.Format(dateLayout),
		Price:     booking.Price,
		Nights:    booking.Nights(),
		TotalCost: booking.TotalCost(),
		Status:    string(booking.Status),
		CreatedAt: booking.CreatedAt,
	}
}

func toBookingResponses(bookings []*entity.Booking) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		out = append(out, toBookingResponse(booking))
	}

	return out
}

// CreateBooking handles booking creation for the authenticated user
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid room ID")
	}

	dateFrom, err := time.ParseInLocation(dateLayout, req.DateFrom, time.UTC)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Invalid date_from")
	}

	dateTo, err := time.ParseInLocation(dateLayout, req.DateTo, time.UTC)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Invalid date_to")
	}

	booking, err := h.bookingUC.CreateBooking(c.Request().Context(), userID, &usecase.CreateBookingInput{
		RoomID:   roomID,
		DateFrom: dateFrom,
		DateTo:   dateTo,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toBookingResponse(booking))
}

// ListBookings handles listing every booking
func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.bookingUC.ListBookings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookingResponses(bookings))
}

// ListMyBookings handles listing the authenticated user's bookings
func (h *BookingHandler) ListMyBookings(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookings, err := h.bookingUC.ListUserBookings(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookingResponses(bookings))
}

// GetBookingQR streams the check-in QR code PNG for a booking
func (h *BookingHandler) GetBookingQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid booking ID")
	}

	png, err := h.bookingUC.GetBookingQR(c.Request().Context(), userID, bookingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
