package handler

import (
	"log/slog"
	"net/http"
	"time"

	"lodge/internal/delivery/api/response"
	"lodge/internal/domain/entity"
	"lodge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HotelHandlerParams holds dependencies for HotelHandler, injected by Fx.
type HotelHandlerParams struct {
	fx.In

	HotelUC usecase.HotelUsecase
	Logger  *slog.Logger
}

// HotelHandler holds dependencies for catalog-related handlers
type HotelHandler struct {
	hotelUC usecase.HotelUsecase
	logger  *slog.Logger
}

// NewHotelHandler is the constructor for HotelHandler
func NewHotelHandler(params HotelHandlerParams) *HotelHandler {
	return &HotelHandler{
		hotelUC: params.HotelUC,
		logger:  params.Logger,
	}
}

// HotelResponse is the public representation of a hotel
type HotelResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// RoomResponse is the public representation of a room
type RoomResponse struct {
	ID          string `json:"id"`
	HotelID     string `json:"hotel_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
}

func toHotelResponses(hotels []*entity.Hotel) []*HotelResponse {
	out := make([]*HotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		out = append(out, &HotelResponse{
			ID:        hotel.ID.String(),
			Title:     hotel.Title,
			Location:  hotel.Location,
			CreatedAt: hotel.CreatedAt,
		})
	}

	return out
}

func toRoomResponses(rooms []*entity.Room) []*RoomResponse {
	out := make([]*RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, &RoomResponse{
			ID:          room.ID.String(),
			HotelID:     room.HotelID.String(),
			Title:       room.Title,
			Description: room.Description,
			Price:       room.Price,
			Quantity:    room.Quantity,
		})
	}

	return out
}

// ListHotels handles listing every hotel
func (h *HotelHandler) ListHotels(c echo.Context) error {
	hotels, err := h.hotelUC.ListHotels(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toHotelResponses(hotels))
}

// ListHotelRooms handles listing the rooms of a hotel
func (h *HotelHandler) ListHotelRooms(c echo.Context) error {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid hotel ID")
	}

	rooms, err := h.hotelUC.ListHotelRooms(c.Request().Context(), hotelID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRoomResponses(rooms))
}
