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

type authServiceFixture struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) *authServiceFixture {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return &authServiceFixture{
		service:      svc,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// onExecute wires the transaction manager so the callback runs against a fresh
// mock factory and its return value propagates to the caller.
func (f *authServiceFixture) onExecute(t *testing.T, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			setup(mockFactory)

			return fn(mockFactory)
		})
}

func TestAuthService_Register_Success(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	f.hasher.EXPECT().Hash("s3cret-password").Return("hashed-password", nil)

	f.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)

		mockUserRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User"), "hashed-password").
			Run(func(ctx context.Context, user *entity.User, passwordHash string) {
				user.ID = userID
				user.CreatedAt = time.Now()
			}).
			Return(nil)
	})

	out, err := f.service.Register(ctx, &usecase.RegisterInput{
		Email:    "guest@example.com",
		Password: "s3cret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, out.User.ID)
	assert.Equal(t, "guest@example.com", out.User.Email)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()

	f.hasher.EXPECT().Hash("s3cret-password").Return("", assert.AnError)

	out, err := f.service.Register(ctx, &usecase.RegisterInput{
		Email:    "guest@example.com",
		Password: "s3cret-password",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	assert.Nil(t, out)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()

	f.hasher.EXPECT().Hash("s3cret-password").Return("hashed-password", nil)

	f.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)

		mockUserRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User"), "hashed-password").
			Return(domainerrors.ErrUserAlreadyExists)
	})

	out, err := f.service.Register(ctx, &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "s3cret-password",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Nil(t, out)
}

func TestAuthService_Login_Success(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "guest@example.com"}

	f.userRepo.EXPECT().
		FindByEmailWithHash(ctx, "guest@example.com").
		Return(user, "stored-hash", nil)
	f.hasher.EXPECT().Check("s3cret-password", "stored-hash").Return(true)
	f.tokenService.EXPECT().GenerateAccessToken(userID).Return("signed.jwt.token", nil)

	out, err := f.service.Login(ctx, &usecase.LoginInput{
		Email:    "guest@example.com",
		Password: "s3cret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", out.AccessToken)
	assert.Equal(t, userID, out.User.ID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()

	f.userRepo.EXPECT().
		FindByEmailWithHash(ctx, "nobody@example.com").
		Return(nil, "", repository.ErrUserNotFound)

	// Unknown emails still burn a hash check so timing does not leak
	// whether the address is registered.
	f.hasher.EXPECT().Check("whatever", dummyPasswordHash).Return(false)

	out, err := f.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailNotRegistered)
	assert.Nil(t, out)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "guest@example.com"}

	f.userRepo.EXPECT().
		FindByEmailWithHash(ctx, "guest@example.com").
		Return(user, "stored-hash", nil)
	f.hasher.EXPECT().Check("wrong-password", "stored-hash").Return(false)

	out, err := f.service.Login(ctx, &usecase.LoginInput{
		Email:    "guest@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, domainerrors.ErrIncorrectPassword)
	assert.Nil(t, out)
}

func TestAuthService_Login_TokenGenerationFailure(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "guest@example.com"}

	f.userRepo.EXPECT().
		FindByEmailWithHash(ctx, "guest@example.com").
		Return(user, "stored-hash", nil)
	f.hasher.EXPECT().Check("s3cret-password", "stored-hash").Return(true)
	f.tokenService.EXPECT().GenerateAccessToken(user.ID).Return("", assert.AnError)

	out, err := f.service.Login(ctx, &usecase.LoginInput{
		Email:    "guest@example.com",
		Password: "s3cret-password",
	})

	assert.Error(t, err)
	assert.Nil(t, out)
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	f.tokenService.EXPECT().
		ValidateToken("signed.jwt.token").
		Return(&service.Claims{UserID: userID}, nil)

	got, err := f.service.Authenticate(ctx, "signed.jwt.token")

	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestAuthService_Authenticate_ExpiredToken(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()

	f.tokenService.EXPECT().
		ValidateToken("stale.jwt.token").
		Return(nil, service.ErrTokenExpired)

	got, err := f.service.Authenticate(ctx, "stale.jwt.token")

	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
	assert.Equal(t, uuid.Nil, got)
}

func TestAuthService_Authenticate_InvalidToken(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()

	f.tokenService.EXPECT().
		ValidateToken("garbage").
		Return(nil, service.ErrInvalidToken)

	got, err := f.service.Authenticate(ctx, "garbage")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	assert.Equal(t, uuid.Nil, got)
}
