package impl

import (
	"context"
	"testing"

	"farmnaturals/internal/domain/entity"
	domainerrors "farmnaturals/internal/domain/errors"
	"farmnaturals/internal/domain/repository"
	"farmnaturals/internal/domain/service"
	"farmnaturals/internal/usecase"
	mockRepo "farmnaturals/internal/mocks/repository"
	mockService "farmnaturals/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type identityFixture struct {
	service      usecase.IdentityUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestIdentityService(t *testing.T, bootstrapAdmins ...string) *identityFixture {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	svc := NewIdentityService(IdentityServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       newTestConfig(bootstrapAdmins...),
		Logger:       newDiscardLogger(),
	})

	return &identityFixture{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestIdentityService_Register_Success(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "a@example.com", user.Email)
			assert.Equal(t, "hashed", user.PasswordHash)
			assert.False(t, user.IsAdmin)
			user.ID = 7
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: " a@example.com ", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, uint(7), user.ID)
}

func TestIdentityService_Register_EmailTaken(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(&entity.User{Email: "a@example.com"}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "a@example.com", Password: "secret"})

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestIdentityService_Register_ConcurrentDuplicate(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "a@example.com", Password: "secret"})

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestIdentityService_Register_HashError(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret").Return("", errors.New("boom"))

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "a@example.com", Password: "secret"})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestIdentityService_Login_Success(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	user := &entity.User{Email: "root@example.com", PasswordHash: "hashed", IsAdmin: true}

	fx.userRepo.EXPECT().FindByEmail(ctx, "root@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret", "hashed").Return(true)
	fx.tokenService.EXPECT().
		GenerateToken(entity.Principal{Email: "root@example.com", IsAdmin: true}).
		Return("signed-token", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "root@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
	assert.True(t, out.IsAdmin)
}

func TestIdentityService_Login_Failures(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestIdentityService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestIdentityService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(&entity.User{Email: "a@example.com", PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("repository error", func(t *testing.T) {
		fx := createTestIdentityService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(nil, errors.New("connection refused"))

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@example.com", Password: "x"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		assert.Contains(t, err.Error(), "failed to look up user")
	})
}

func TestIdentityService_Authorize(t *testing.T) {
	ctx := context.Background()

	t.Run("admin granted", func(t *testing.T) {
		fx := createTestIdentityService(t)
		fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{
			Admin:            true,
			RegisteredClaims: jwt.RegisteredClaims{Subject: "root@example.com"},
		}, nil)

		principal, err := fx.service.Authorize(ctx, "tok", entity.CapabilityAdmin)
		require.NoError(t, err)
		assert.Equal(t, "root@example.com", principal.Email)
		assert.True(t, principal.IsAdmin)
	})

	t.Run("customer denied admin", func(t *testing.T) {
		fx := createTestIdentityService(t)
		fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "a@example.com"},
		}, nil)

		_, err := fx.service.Authorize(ctx, "tok", entity.CapabilityAdmin)
		assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)
	})

	t.Run("customer capability", func(t *testing.T) {
		fx := createTestIdentityService(t)
		fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "a@example.com"},
		}, nil)

		principal, err := fx.service.Authorize(ctx, "tok", entity.CapabilityCustomer)
		require.NoError(t, err)
		assert.False(t, principal.IsAdmin)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestIdentityService(t)
		fx.tokenService.EXPECT().ValidateToken("tok").Return(nil, jwt.ErrTokenExpired)

		_, err := fx.service.Authorize(ctx, "tok", entity.CapabilityAdmin)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})

	t.Run("missing token", func(t *testing.T) {
		fx := createTestIdentityService(t)

		_, err := fx.service.Authorize(ctx, "", entity.CapabilityAdmin)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})
}

func TestIdentityService_BootstrapAdmins(t *testing.T) {
	ctx := context.Background()

	t.Run("promotes configured emails", func(t *testing.T) {
		fx := createTestIdentityService(t, "root@example.com", " ", "ops@example.com")
		fx.userRepo.EXPECT().
			PromoteToAdmin(ctx, []string{"root@example.com", "ops@example.com"}).
			Return(int64(1), nil)

		require.NoError(t, fx.service.BootstrapAdmins(ctx))
	})

	t.Run("nothing configured", func(t *testing.T) {
		fx := createTestIdentityService(t)

		require.NoError(t, fx.service.BootstrapAdmins(ctx))
	})

	t.Run("repository error", func(t *testing.T) {
		fx := createTestIdentityService(t, "root@example.com")
		fx.userRepo.EXPECT().PromoteToAdmin(ctx, []string{"root@example.com"}).Return(int64(0), errors.New("down"))

		assert.Error(t, fx.service.BootstrapAdmins(ctx))
	})
}
