package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Fin1704/3KingAuto-server/domain"
	"github.com/Fin1704/3KingAuto-server/internal/service/logger"
	"github.com/Fin1704/3KingAuto-server/internal/service/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) domain.AuthRepository {
	return &authRepository{
		db: db,
	}
}

func storageError(action string) error {
	return fmt.Errorf("%w: %s failed", domain.ErrStorage, action)
}

// CreatePlayer inserts the player and its starter hero in one transaction.
// On success player.ID and player.Heroes are filled in.
func (r *authRepository) CreatePlayer(ctx context.Context, player *domain.Player, starter domain.Hero) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("CreatePlayer called", zap.String("request_id", requestID), zap.String("username", player.Username))

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Player
		err := tx.Select("id").Where("username = ?", player.Username).First(&existing).Error
		if err == nil {
			return domain.ErrUsernameTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Omit("Heroes", "Runes").Create(player).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrUsernameTaken
			}
			return err
		}

		starter.PlayerID = player.ID
		if err := domain.NormalizeHero(&starter); err != nil {
			return err
		}
		if err := tx.Create(&starter).Error; err != nil {
			return err
		}
		player.Heroes = []domain.Hero{starter}
		player.Runes = []domain.Rune{}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) || errors.Is(err, domain.ErrValidation) {
			logger.DBLogger.Warn("CreatePlayer declined", zap.String("request_id", requestID), zap.String("username", player.Username), zap.Error(err))
			return err
		}
		logger.DBLogger.Error("Error creating player", zap.String("request_id", requestID), zap.String("username", player.Username), zap.Error(err))
		return storageError("CreatePlayer")
	}

	logger.DBLogger.Info("Successfully created player", zap.String("request_id", requestID), zap.String("player_id", player.ID))
	return nil
}

func (r *authRepository) findPlayer(ctx context.Context, action string, query string, arg string) (*domain.Player, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info(action+" called", zap.String("request_id", requestID), zap.String("lookup", arg))

	var player domain.Player
	if err := r.db.WithContext(ctx).
		Preload("Heroes").
		Preload("Runes").
		Where(query, arg).
		First(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlayerNotFound
		}
		logger.DBLogger.Error("Error getting player", zap.String("request_id", requestID), zap.String("lookup", arg), zap.Error(err))
		return nil, storageError(action)
	}
	return &player, nil
}

func (r *authRepository) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	return r.findPlayer(ctx, "GetPlayerByUsername", "username = ?", username)
}

func (r *authRepository) GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	return r.findPlayer(ctx, "GetPlayerByID", "id = ?", playerID)
}

func (r *authRepository) UpdateLastLogin(ctx context.Context, playerID string, at time.Time) error {
	requestID := middleware.GetRequestID(ctx)
	res := r.db.WithContext(ctx).
		Model(&domain.Player{}).
		Where("id = ?", playerID).
		Update("last_login_at", at)
	if res.Error != nil {
		logger.DBLogger.Error("Error updating last login", zap.String("request_id", requestID), zap.String("player_id", playerID), zap.Error(res.Error))
		return storageError("UpdateLastLogin")
	}
	if res.RowsAffected == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}
