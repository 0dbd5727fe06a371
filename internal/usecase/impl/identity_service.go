// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"farmnaturals/config"
	deliverycontext "farmnaturals/internal/delivery/context"
	"farmnaturals/internal/domain/entity"
	domainerrors "farmnaturals/internal/domain/errors"
	"farmnaturals/internal/domain/repository"
	"farmnaturals/internal/domain/service"
	"farmnaturals/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const tokenTypeBearer = "bearer"

// identityService implements the IdentityUsecase interface.
type identityService struct {
	userRepo        repository.UserRepository
	hasher          service.PasswordHasher
	tokenService    service.TokenService
	bootstrapAdmins []string
	logger          *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	var admins []string
	if params.Config != nil && params.Config.Auth != nil {
		for _, email := range params.Config.Auth.BootstrapAdmins {
			if email = strings.TrimSpace(email); email != "" {
				admins = append(admins, email)
			}
		}
	}

	return &identityService{
		userRepo:        params.UserRepo,
		hasher:          params.Hasher,
		tokenService:    params.TokenService,
		bootstrapAdmins: admins,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a customer account. The email must not be registered yet.
func (srv *identityService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	email := strings.TrimSpace(input.Email)

	_, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		srv.log(ctx).Warn("Registration for existing email", slog.String("email", email))

		return nil, domainerrors.ErrEmailAlreadyRegistered
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to look up user")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: hash,
	}

	// A concurrent registration can still win between the lookup and the insert.
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailAlreadyRegistered
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("email", email), slog.Any("userID", user.ID))

	return user, nil
}

// Login checks the password and issues a signed access token.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (srv *identityService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.TrimSpace(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login for unknown email", slog.String("email", email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login password mismatch", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateToken(*user.Principal())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.LoginOutput{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		IsAdmin:     user.IsAdmin,
	}, nil
}

// Authorize validates the credential and checks the requested capability.
func (srv *identityService) Authorize(ctx context.Context, credential string, capability entity.Capability) (*entity.Principal, error) {
	if credential == "" {
		return nil, domainerrors.ErrInvalidToken.WithDetails("missing bearer credential")
	}

	claims, err := srv.tokenService.ValidateToken(credential)
	if err != nil {
		srv.log(ctx).Debug("Rejected bearer credential", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidToken
	}

	principal := &entity.Principal{Email: claims.Subject, IsAdmin: claims.Admin}
	if !principal.Can(capability) {
		srv.log(ctx).Warn("Capability denied",
			slog.String("email", principal.Email),
			slog.String("capability", capability.String()),
		)

		if capability == entity.CapabilityAdmin {
			return nil, domainerrors.ErrAdminRequired
		}

		return nil, domainerrors.ErrInvalidToken
	}

	return principal, nil
}

// BootstrapAdmins promotes the configured administrator emails.
func (srv *identityService) BootstrapAdmins(ctx context.Context) error {
	if len(srv.bootstrapAdmins) == 0 {
		return nil
	}

	promoted, err := srv.userRepo.PromoteToAdmin(ctx, srv.bootstrapAdmins)
	if err != nil {
		return errors.Wrap(err, "failed to promote bootstrap admins")
	}

	srv.log(ctx).Info("Bootstrap admins applied",
		slog.Int("configured", len(srv.bootstrapAdmins)),
		slog.Int64("promoted", promoted),
	)

	return nil
}
