// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "soundem/internal/delivery/context"
	"soundem/internal/domain/entity"
	domainerrors "soundem/internal/domain/errors"
	"soundem/internal/domain/repository"
	"soundem/internal/domain/service"
	"soundem/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new user and issues its first token.
//
// The three input checks (email required, password required, email taken)
// run independently so the caller receives every violation in a single
// response. The pre-insert taken check reports the common case; the
// unique index inside the transaction decides races, mapping the loser's
// constraint violation to the same "taken" violation.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	validation := domainerrors.NewValidationError()
	if input.Email == "" {
		validation.Add("email", domainerrors.MsgEmailRequired)
	}
	if input.Password == "" {
		validation.Add("password", domainerrors.MsgPasswordRequired)
	}
	if input.Email != "" {
		_, err := srv.userRepo.FindByEmail(ctx, input.Email)
		switch {
		case err == nil:
			validation.Add("email", domainerrors.MsgEmailTaken)
		case errors.Is(err, repository.ErrUserNotFound):
			// Email is free.
		default:
			return nil, errors.Wrap(err, "failed to check email availability")
		}
	}
	if validation.HasViolations() {
		return nil, validation
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Email:        input.Email,
		PasswordHash: passwordHash,
	}
	err = srv.createUserWithRetry(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			taken := domainerrors.NewValidationError()
			taken.Add("email", domainerrors.MsgEmailTaken)

			return nil, taken
		}

		return nil, err
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", user.ID))

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

// createUserWithRetry runs the insert transaction, repeating it once if
// the first attempt lost a lock race. The rolled-back transaction leaves
// nothing behind, so the retry starts clean.
func (srv *userService) createUserWithRetry(ctx context.Context, user *entity.User) error {
	insert := func() error {
		return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return repoFactory.NewUserRepository().Create(ctx, user)
		})
	}

	err := insert()
	if err == nil || !errors.Is(err, repository.ErrTransientContention) {
		return err
	}

	srv.log(ctx).Warn("Registration insert hit contention, retrying once", slog.String("error", err.Error()))

	return insert()
}

// Login verifies credentials and issues a fresh token. Unknown email and
// wrong password are indistinguishable to the caller.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("User logged in", slog.Int64("userID", user.ID))

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

// AuthenticateToken resolves a bearer token to its user. Every failure
// collapses into ErrUnauthenticated, including tokens that validate but
// reference a user that no longer exists.
func (srv *userService) AuthenticateToken(ctx context.Context, tokenString string) (*entity.User, error) {
	userID, ok := srv.tokenService.Validate(tokenString)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthenticated
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}
