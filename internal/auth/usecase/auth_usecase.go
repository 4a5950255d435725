package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Fin1704/3KingAuto-server/domain"
	"github.com/Fin1704/3KingAuto-server/internal/game/catalog"
	"github.com/Fin1704/3KingAuto-server/internal/service/logger"
	"github.com/Fin1704/3KingAuto-server/internal/service/middleware"
	"github.com/Fin1704/3KingAuto-server/internal/service/validation"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase interface {
	Register(ctx context.Context, username string, password string) (*domain.Player, error)
	Login(ctx context.Context, username string, password string) (*domain.Player, error)
	Profile(ctx context.Context, playerID string) (*domain.Player, error)
}

type authUsecase struct {
	authRepository domain.AuthRepository
	heroes         *catalog.Catalog
	now            func() time.Time
}

func NewAuthUsecase(authRepository domain.AuthRepository, heroes *catalog.Catalog) AuthUsecase {
	return &authUsecase{
		authRepository: authRepository,
		heroes:         heroes,
		now:            time.Now,
	}
}

func (uc *authUsecase) validate(ctx context.Context, username string, password string) error {
	requestID := middleware.GetRequestID(ctx)
	switch {
	case username == "":
		logger.AccessLogger.Warn("Username is required", zap.String("request_id", requestID))
		return fmt.Errorf("%w: username is required", domain.ErrValidation)
	case password == "":
		logger.AccessLogger.Warn("Password is required", zap.String("request_id", requestID))
		return fmt.Errorf("%w: password is required", domain.ErrValidation)
	case !validation.ValidateLogin(username):
		logger.AccessLogger.Warn("not correct username", zap.String("request_id", requestID))
		return fmt.Errorf("%w: username must be 3 to 30 letters or digits", domain.ErrValidation)
	case !validation.ValidatePassword(password):
		logger.AccessLogger.Warn("not correct password", zap.String("request_id", requestID))
		return fmt.Errorf("%w: password must be %d to %d bytes long",
			domain.ErrValidation, validation.PasswordMinLength, validation.PasswordMaxLength)
	}
	return nil
}

func (uc *authUsecase) Register(ctx context.Context, username string, password string) (*domain.Player, error) {
	username = domain.NormalizeUsername(username)
	if err := uc.validate(ctx, username, password); err != nil {
		return nil, err
	}

	hashed, err := middleware.HashPassword(password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		logger.AccessLogger.Error("Failed to hash password", zap.String("request_id", middleware.GetRequestID(ctx)), zap.Error(err))
		return nil, err
	}

	player := &domain.Player{
		Username: username,
		Password: hashed,
	}
	if err := uc.authRepository.CreatePlayer(ctx, player, uc.heroes.Starter("")); err != nil {
		return nil, err
	}
	return player, nil
}

// Login answers an unknown username and a wrong password the same way.
func (uc *authUsecase) Login(ctx context.Context, username string, password string) (*domain.Player, error) {
	username = domain.NormalizeUsername(username)
	if err := uc.validate(ctx, username, password); err != nil {
		return nil, err
	}

	player, err := uc.authRepository.GetPlayerByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrPlayerNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !middleware.CheckPassword(player.Password, password) {
		logger.AccessLogger.Warn("Wrong password", zap.String("request_id", middleware.GetRequestID(ctx)), zap.String("player_id", player.ID))
		return nil, domain.ErrInvalidCredentials
	}

	at := uc.now()
	if err := uc.authRepository.UpdateLastLogin(ctx, player.ID, at); err != nil {
		return nil, err
	}
	player.LastLoginAt = &at
	return player, nil
}

func (uc *authUsecase) Profile(ctx context.Context, playerID string) (*domain.Player, error) {
	if playerID == "" {
		return nil, domain.ErrUnauthorized
	}
	return uc.authRepository.GetPlayerByID(ctx, playerID)
}
