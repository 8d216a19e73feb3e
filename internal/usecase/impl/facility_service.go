package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "lodge/internal/delivery/context"
	"lodge/internal/domain/entity"
	"lodge/internal/domain/repository"
	"lodge/internal/domain/service"
	"lodge/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// facilityEventTimeout bounds the background publish after the HTTP request ends.
const facilityEventTimeout = 30 * time.Second

// facilityService implements the FacilityUsecase interface.
type facilityService struct {
	txManager    repository.TransactionManager
	facilityRepo repository.FacilityRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// FacilityServiceParams holds dependencies for FacilityService, injected by Fx.
type FacilityServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	FacilityRepo repository.FacilityRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewFacilityService is the constructor for facilityService. It receives all dependencies as interfaces.
func NewFacilityService(params FacilityServiceParams) usecase.FacilityUsecase {
	return &facilityService{
		txManager:    params.TxManager,
		facilityRepo: params.FacilityRepo,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *facilityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateFacility persists a new facility, then publishes a facility-created
// event in the background. The event is fire-and-forget: a publish failure is
// logged but never fails the request.
func (srv *facilityService) CreateFacility(ctx context.Context, input *usecase.CreateFacilityInput) (*entity.Facility, error) {
	facility := &entity.Facility{Title: input.Title}

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		facilityRepo := repoFactory.NewFacilityRepository()

		if err := facilityRepo.Create(ctx, facility); err != nil {
			return errors.Wrap(err, "failed to create facility")
		}

		return nil
	}); err != nil {
		srv.log(ctx).Warn("Failed to execute facility creation transaction",
			slog.String("title", input.Title), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Facility created",
		slog.Any("facilityID", facility.ID), slog.String("title", facility.Title))

	srv.publishFacilityCreated(ctx, facility)

	return facility, nil
}

// publishFacilityCreated emits the event in a detached goroutine. The publish
// context survives request cancellation but is bounded by facilityEventTimeout.
func (srv *facilityService) publishFacilityCreated(ctx context.Context, facility *entity.Facility) {
	event := &service.FacilityCreatedEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		FacilityID: facility.ID.String(),
		Title:      facility.Title,
		CreatedAt:  facility.CreatedAt,
	}

	logger := srv.log(ctx)

	go func() {
		publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), facilityEventTimeout)
		defer cancel()

		if err := srv.publisher.PublishFacilityCreated(publishCtx, event); err != nil {
			logger.Warn("Failed to publish facility-created event",
				slog.String("facility_id", event.FacilityID), slog.Any("error", err))
		}
	}()
}

// ListFacilities returns every facility.
func (srv *facilityService) ListFacilities(ctx context.Context) ([]*entity.Facility, error) {
	facilities, err := srv.facilityRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list facilities", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list facilities")
	}

	return facilities, nil
}
