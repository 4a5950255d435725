package repository

import (
	"context"
	"fmt"

	"github.com/Fin1704/3KingAuto-server/domain"
	"github.com/Fin1704/3KingAuto-server/internal/service/logger"
	"github.com/Fin1704/3KingAuto-server/internal/service/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type gameRepository struct {
	db        *gorm.DB
	ledger    ledger
	inventory inventory
	roster    roster
}

func NewGameRepository(db *gorm.DB) domain.GameRepository {
	return &gameRepository{
		db: db,
	}
}

// fail logs err and hides driver details behind domain.ErrStorage. Business
// outcomes (declines, conflicts) pass through unchanged.
func (r *gameRepository) fail(ctx context.Context, action string, playerID string, err error) error {
	requestID := middleware.GetRequestID(ctx)
	if domain.OutcomeOf(err) != domain.OutcomeError {
		logger.DBLogger.Warn(action+" declined",
			zap.String("request_id", requestID),
			zap.String("player_id", playerID),
			zap.Error(err))
		return err
	}
	logger.DBLogger.Error(action+" failed",
		zap.String("request_id", requestID),
		zap.String("player_id", playerID),
		zap.Error(err))
	return fmt.Errorf("%w: %s failed", domain.ErrStorage, action)
}

func (r *gameRepository) KillMonster(ctx context.Context, playerID string, reward int) (domain.KillMonsterResult, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("KillMonster called", zap.String("request_id", requestID), zap.String("player_id", playerID), zap.Int("reward", reward))

	var result domain.KillMonsterResult
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		player, err := r.ledger.load(tx, playerID)
		if err != nil {
			return err
		}
		balance, err := r.ledger.adjust(tx, playerID, reward, player.Gems)
		if err != nil {
			return err
		}
		result = domain.KillMonsterResult{GemsAwarded: reward, NewBalance: balance}
		return nil
	}); err != nil {
		return domain.KillMonsterResult{}, r.fail(ctx, "KillMonster", playerID, err)
	}

	logger.DBLogger.Info("Monster reward credited", zap.String("request_id", requestID), zap.String("player_id", playerID), zap.Int("balance", result.NewBalance))
	return result, nil
}

func (r *gameRepository) SummonBoss(ctx context.Context, playerID string, code string, cost int) (domain.SummonBossResult, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("SummonBoss called", zap.String("request_id", requestID), zap.String("player_id", playerID))

	var result domain.SummonBossResult
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		player, err := r.ledger.load(tx, playerID)
		if err != nil {
			return err
		}
		if player.Gems < cost {
			return domain.ErrInsufficientFunds
		}
		balance, err := r.ledger.setBossCode(tx, playerID, code, player.Gems, cost)
		if err != nil {
			return err
		}
		result = domain.SummonBossResult{BossCode: code, NewBalance: balance}
		return nil
	}); err != nil {
		return domain.SummonBossResult{}, r.fail(ctx, "SummonBoss", playerID, err)
	}

	logger.DBLogger.Info("Boss summoned", zap.String("request_id", requestID), zap.String("player_id", playerID), zap.Int("balance", result.NewBalance))
	return result, nil
}

func (r *gameRepository) KillBoss(ctx context.Context, playerID string, code string, runeID int) (domain.Rune, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("KillBoss called", zap.String("request_id", requestID), zap.String("player_id", playerID))

	var awarded domain.Rune
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := r.ledger.load(tx, playerID); err != nil {
			return err
		}
		if err := r.ledger.clearBossCodeIfMatches(tx, playerID, code); err != nil {
			return err
		}
		var err error
		awarded, err = r.inventory.award(tx, playerID, runeID)
		return err
	}); err != nil {
		return domain.Rune{}, r.fail(ctx, "KillBoss", playerID, err)
	}

	logger.DBLogger.Info("Boss killed, rune awarded", zap.String("request_id", requestID), zap.String("player_id", playerID), zap.Int("rune_key", awarded.ID), zap.Int("rune_id", awarded.RuneID))
	return awarded, nil
}

func (r *gameRepository) EquipRune(ctx context.Context, playerID string, runeKey int, slotIndex int) (domain.Rune, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("EquipRune called", zap.String("request_id", requestID), zap.String("player_id", playerID), zap.Int("rune_key", runeKey), zap.Int("slot", slotIndex))

	var equipped domain.Rune
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		equipped, err = r.inventory.equip(tx, playerID, runeKey, slotIndex)
		return err
	}); err != nil {
		return domain.Rune{}, r.fail(ctx, "EquipRune", playerID, err)
	}
	return equipped, nil
}

func (r *gameRepository) UnequipRune(ctx context.Context, playerID string, runeKey int) (domain.Rune, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("UnequipRune called", zap.String("request_id", requestID), zap.String("player_id", playerID), zap.Int("rune_key", runeKey))

	var unequipped domain.Rune
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		unequipped, err = r.inventory.unequip(tx, playerID, runeKey)
		return err
	}); err != nil {
		return domain.Rune{}, r.fail(ctx, "UnequipRune", playerID, err)
	}
	return unequipped, nil
}

func (r *gameRepository) BuyHero(ctx context.Context, playerID string, hero domain.Hero, price int) (domain.Hero, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("BuyHero called", zap.String("request_id", requestID), zap.String("player_id", playerID), zap.Int("hero_id", hero.HeroID))

	hero.PlayerID = playerID
	var bought domain.Hero
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		bought, err = r.roster.purchase(tx, hero, price)
		return err
	}); err != nil {
		return domain.Hero{}, r.fail(ctx, "BuyHero", playerID, err)
	}

	logger.DBLogger.Info("Hero purchased", zap.String("request_id", requestID), zap.String("player_id", playerID), zap.Int("hero_id", bought.HeroID))
	return bought, nil
}

// MineMinerals charges fee and credits reward as a single balance change.
func (r *gameRepository) MineMinerals(ctx context.Context, playerID string, fee int, reward int) (int, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("MineMinerals called", zap.String("request_id", requestID), zap.String("player_id", playerID), zap.Int("reward", reward))

	var balance int
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		player, err := r.ledger.load(tx, playerID)
		if err != nil {
			return err
		}
		if player.Gems < fee {
			return domain.ErrInsufficientFunds
		}
		balance, err = r.ledger.adjust(tx, playerID, reward-fee, player.Gems)
		return err
	}); err != nil {
		return 0, r.fail(ctx, "MineMinerals", playerID, err)
	}
	return balance, nil
}
