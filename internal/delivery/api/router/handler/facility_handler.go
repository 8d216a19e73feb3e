package handler

import (
	"log/slog"
	"net/http"
	"time"

	"lodge/internal/delivery/api/response"
	"lodge/internal/domain/entity"
	"lodge/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FacilityHandlerParams holds dependencies for FacilityHandler, injected by Fx.
type FacilityHandlerParams struct {
	fx.In

	FacilityUC usecase.FacilityUsecase
	Logger     *slog.Logger
}

// FacilityHandler holds dependencies for facility-related handlers
type FacilityHandler struct {
	facilityUC usecase.FacilityUsecase
	logger     *slog.Logger
}

// NewFacilityHandler is the constructor for FacilityHandler
func NewFacilityHandler(params FacilityHandlerParams) *FacilityHandler {
	return &FacilityHandler{
		facilityUC: params.FacilityUC,
		logger:     params.Logger,
	}
}

// CreateFacilityRequest represents the request body for creating a facility
type CreateFacilityRequest struct {
	Title string `json:"title" validate:"required,min=1,max=100"`
}

// FacilityResponse is the public representation of a facility
type FacilityResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

func toFacilityResponse(facility *entity.Facility) *FacilityResponse {
	return &FacilityResponse{
		ID:        facility.ID.String(),
		Title:     facility.Title,
		CreatedAt: facility.CreatedAt,
	}
}

// CreateFacility handles facility creation
func (h *FacilityHandler) CreateFacility(c echo.Context) error {
	var req CreateFacilityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid facility input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	facility, err := h.facilityUC.CreateFacility(c.Request().Context(), &usecase.CreateFacilityInput{
		Title: req.Title,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toFacilityResponse(facility))
}

// ListFacilities handles listing every facility
func (h *FacilityHandler) ListFacilities(c echo.Context) error {
	facilities, err := h.facilityUC.ListFacilities(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*FacilityResponse, 0, len(facilities))
	for _, facility := range facilities {
		out = append(out, toFacilityResponse(facility))
	}

	return response.Success(c, http.StatusOK, out)
}
