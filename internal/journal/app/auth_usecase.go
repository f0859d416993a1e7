package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"bookjournal/internal/journal/domain/entities"
	"bookjournal/internal/journal/domain/services"
	"bookjournal/internal/journal/ports/api"
	"bookjournal/internal/journal/ports/repositories"
	svc "bookjournal/internal/journal/ports/services"
	"bookjournal/pkg/logger"
)

const (
	methodRegister = "Register"
	methodLogin    = "Login"

	msgStartRegistration   = "starting user registration"
	msgEmailExists         = "user with this email already exists"
	msgUserRegistered      = "user registered successfully"
	msgLoginAttempt        = "login attempt"
	msgLoginNonExistent    = "login attempt with non-existent email"
	msgInvalidPasswordAuth = "invalid password provided"
	msgUserLoggedIn        = "user logged in successfully"
	msgInvalidUserData     = "invalid user data"

	msgErrCheckExistingUser = "failed to check existing user"
	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrGenerateToken     = "failed to generate access token"
	msgErrFindingUser       = "error finding user by email"
	msgErrVerifyingPassword = "error verifying password"

	errCtxValidatingUser    = "validating user"
	errCtxCheckingUser      = "checking existing user"
	errCtxEmailRegistered   = "email already registered"
	errCtxHashingPassword   = "hashing password"
	errCtxCreatingUser      = "creating user"
	errCtxGeneratingToken   = "generating token"
	errCtxFindingUser       = "finding user"
	errCtxVerifyingPassword = "verifying password"
)

// AuthUseCaseImpl реализует интерфейс AuthUseCase.
type AuthUseCaseImpl struct {
	tx          repositories.Transactor
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(
	tx repositories.Transactor,
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		tx:          tx,
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// Register создает пользователя и сразу выдает ему токен доступа.
func (a *AuthUseCaseImpl) Register(ctx context.Context, email, password, nickname string) (*services.AuthResult, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("email", email))
	log.Debug(ctx, msgStartRegistration)

	var created *entities.User
	err := a.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := entities.NewUser(email, password, nickname)
		if err != nil {
			log.Debug(ctx, msgInvalidUserData, zap.Error(err))
			return fmt.Errorf("%s: %w", errCtxValidatingUser, err)
		}

		// Проверяем уже нормализованный email.
		exists, err := a.userRepo.ExistsByEmail(ctx, user.Email)
		if err != nil {
			log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
			return fmt.Errorf("%s: %w", errCtxCheckingUser, err)
		}
		if exists {
			log.Debug(ctx, msgEmailExists)
			return fmt.Errorf("%s: %w", errCtxEmailRegistered, entities.ErrEmailAlreadyExists)
		}

		hash, err := a.passwordSvc.Hash(ctx, password)
		if errors.Is(err, services.ErrInvalidPassword) {
			log.Debug(ctx, msgInvalidUserData, zap.Error(err))
			return fmt.Errorf("%s: %w: %w", errCtxHashingPassword, entities.ErrPasswordUnusable, err)
		}
		if err != nil {
			log.Error(ctx, msgErrHashPassword, zap.Error(err))
			return fmt.Errorf("%s: %w", errCtxHashingPassword, err)
		}
		user.SetEncodedPassword(hash)

		created, err = a.userRepo.Create(ctx, user)
		if err != nil {
			log.Error(ctx, msgErrCreateUser, zap.Error(err))
			return fmt.Errorf("%s: %w", errCtxCreatingUser, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result, err := a.issueToken(ctx, created)
	if err != nil {
		log.Error(ctx, msgErrGenerateToken, zap.Error(err))
		return nil, err
	}

	log.Info(ctx, msgUserRegistered, zap.Int64("userID", created.ID))
	return result, nil
}

// Login проверяет учетные данные. Неизвестный email и неверный пароль неразличимы для клиента.
func (a *AuthUseCaseImpl) Login(ctx context.Context, email, password string) (*services.AuthResult, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", email))
	log.Debug(ctx, msgLoginAttempt)

	var user *entities.User
	err := a.tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = a.userRepo.FindByEmail(ctx, email)
		return err
	})
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, entities.ErrInvalidCredentials
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPassword) {
			log.Debug(ctx, msgInvalidPasswordAuth)
			return nil, entities.ErrInvalidCredentials
		}
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPasswordAuth)
		return nil, entities.ErrInvalidCredentials
	}

	result, err := a.issueToken(ctx, user)
	if err != nil {
		log.Error(ctx, msgErrGenerateToken, zap.Error(err))
		return nil, err
	}

	log.Info(ctx, msgUserLoggedIn, zap.Int64("userID", user.ID))
	return result, nil
}

func (a *AuthUseCaseImpl) issueToken(ctx context.Context, user *entities.User) (*services.AuthResult, error) {
	token, _, err := a.tokenSvc.GenerateAccessToken(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", errCtxGeneratingToken, services.ErrTokenGenerationFailed, err)
	}
	return &services.AuthResult{User: user, Token: token, TokenType: services.TokenTypeBearer}, nil
}
