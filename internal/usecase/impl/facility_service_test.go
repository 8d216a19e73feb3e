package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"lodge/internal/domain/entity"
	domainerrors "lodge/internal/domain/errors"
	"lodge/internal/domain/repository"
	"lodge/internal/domain/service"
	mockRepo "lodge/internal/mocks/repository"
	mockService "lodge/internal/mocks/service"
	"lodge/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type facilityServiceFixture struct {
	service      usecase.FacilityUsecase
	txManager    *mockRepo.MockTransactionManager
	facilityRepo *mockRepo.MockFacilityRepository
	publisher    *mockService.MockEventPublisher
}

func createTestFacilityService(t *testing.T) *facilityServiceFixture {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	facilityRepo := mockRepo.NewMockFacilityRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewFacilityService(FacilityServiceParams{
		TxManager:    txManager,
		FacilityRepo: facilityRepo,
		Publisher:    publisher,
		Logger:       logger,
	})

	return &facilityServiceFixture{
		service:      svc,
		txManager:    txManager,
		facilityRepo: facilityRepo,
		publisher:    publisher,
	}
}

func (f *facilityServiceFixture) onExecute(t *testing.T, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			setup(mockFactory)

			return fn(mockFactory)
		})
}

func TestFacilityService_CreateFacility_Success(t *testing.T) {
	f := createTestFacilityService(t)

	ctx := context.Background()
	facilityID := uuid.New()
	published := make(chan *service.FacilityCreatedEvent, 1)

	f.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockFacilityRepo := mockRepo.NewMockFacilityRepository(t)
		factory.EXPECT().NewFacilityRepository().Return(mockFacilityRepo)

		mockFacilityRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Facility")).
			Run(func(ctx context.Context, facility *entity.Facility) {
				facility.ID = facilityID
				facility.CreatedAt = time.Now()
			}).
			Return(nil)
	})

	f.publisher.EXPECT().
		PublishFacilityCreated(mock.Anything, mock.AnythingOfType("*service.FacilityCreatedEvent")).
		Run(func(ctx context.Context, event *service.FacilityCreatedEvent) {
			published <- event
		}).
		Return(nil)

	facility, err := f.service.CreateFacility(ctx, &usecase.CreateFacilityInput{Title: "Pool"})

	require.NoError(t, err)
	assert.Equal(t, facilityID, facility.ID)
	assert.Equal(t, "Pool", facility.Title)

	select {
	case event := <-published:
		assert.Equal(t, facilityID.String(), event.FacilityID)
		assert.Equal(t, "Pool", event.Title)
	case <-time.After(time.Second):
		t.Fatal("facility-created event was not published")
	}
}

func TestFacilityService_CreateFacility_PublishFailureDoesNotFailRequest(t *testing.T) {
	f := createTestFacilityService(t)

	ctx := context.Background()
	published := make(chan struct{}, 1)

	f.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockFacilityRepo := mockRepo.NewMockFacilityRepository(t)
		factory.EXPECT().NewFacilityRepository().Return(mockFacilityRepo)
		mockFacilityRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Facility")).
			Return(nil)
	})

	f.publisher.EXPECT().
		PublishFacilityCreated(mock.Anything, mock.AnythingOfType("*service.FacilityCreatedEvent")).
		Run(func(ctx context.Context, event *service.FacilityCreatedEvent) {
			published <- struct{}{}
		}).
		Return(assert.AnError)

	facility, err := f.service.CreateFacility(ctx, &usecase.CreateFacilityInput{Title: "Gym"})

	require.NoError(t, err)
	assert.NotNil(t, facility)

	select {
	case <-published:
	case <-time.After(time.Second):
		t.Fatal("facility-created event was not published")
	}
}

func TestFacilityService_CreateFacility_DuplicateTitle(t *testing.T) {
	f := createTestFacilityService(t)

	ctx := context.Background()

	f.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockFacilityRepo := mockRepo.NewMockFacilityRepository(t)
		factory.EXPECT().NewFacilityRepository().Return(mockFacilityRepo)
		mockFacilityRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Facility")).
			Return(domainerrors.ErrFacilityAlreadyExists)
	})

	facility, err := f.service.CreateFacility(ctx, &usecase.CreateFacilityInput{Title: "Pool"})

	assert.ErrorIs(t, err, domainerrors.ErrFacilityAlreadyExists)
	assert.Nil(t, facility)
}

func TestFacilityService_ListFacilities_Success(t *testing.T) {
	f := createTestFacilityService(t)

	ctx := context.Background()
	facilities := []*entity.Facility{
		{ID: uuid.New(), Title: "Pool"},
		{ID: uuid.New(), Title: "Gym"},
	}

	f.facilityRepo.EXPECT().FindAll(ctx).Return(facilities, nil)

	got, err := f.service.ListFacilities(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestFacilityService_ListFacilities_Error(t *testing.T) {
	f := createTestFacilityService(t)

	ctx := context.Background()

	f.facilityRepo.EXPECT().FindAll(ctx).Return(nil, assert.AnError)

	got, err := f.service.ListFacilities(ctx)

	assert.Error(t, err)
	assert.Nil(t, got)
}
