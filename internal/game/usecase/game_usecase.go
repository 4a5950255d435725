package usecase

import (
	"context"
	"fmt"

	"github.com/Fin1704/3KingAuto-server/domain"
	"github.com/Fin1704/3KingAuto-server/internal/game/catalog"
	"github.com/Fin1704/3KingAuto-server/internal/game/reward"
	"github.com/Fin1704/3KingAuto-server/internal/service/logger"
	"github.com/Fin1704/3KingAuto-server/internal/service/middleware"
	"github.com/Fin1704/3KingAuto-server/internal/service/validation"
	"go.uber.org/zap"
)

const (
	DefaultTopLimit = 10
	MaxTopLimit     = 100
)

type GameUsecase interface {
	KillMonster(ctx context.Context, playerID string) (domain.KillMonsterResult, error)
	SummonBoss(ctx context.Context, playerID string) (domain.SummonBossResult, error)
	KillBoss(ctx context.Context, playerID string, bossCode string) (domain.Rune, error)
	EquipRune(ctx context.Context, playerID string, runeKey int, slotIndex *int) (domain.Rune, error)
	UnequipRune(ctx context.Context, playerID string, runeKey int) (domain.Rune, error)
	BuyHero(ctx context.Context, playerID string, heroID int) (domain.Hero, error)
	MineMinerals(ctx context.Context, playerID string) (domain.MineResult, error)
	GetTopByGems(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

type gameUsecase struct {
	gameRepository domain.GameRepository
	rewards        *reward.Engine
	heroes         *catalog.Catalog
}

func NewGameUsecase(gameRepository domain.GameRepository, rewards *reward.Engine, heroes *catalog.Catalog) GameUsecase {
	return &gameUsecase{
		gameRepository: gameRepository,
		rewards:        rewards,
		heroes:         heroes,
	}
}

func invalid(ctx context.Context, msg string) error {
	logger.AccessLogger.Warn(msg, zap.String("request_id", middleware.GetRequestID(ctx)))
	return fmt.Errorf("%w: %s", domain.ErrValidation, msg)
}

func (uc *gameUsecase) KillMonster(ctx context.Context, playerID string) (domain.KillMonsterResult, error) {
	return uc.gameRepository.KillMonster(ctx, playerID, uc.rewards.MonsterKillReward())
}

func (uc *gameUsecase) SummonBoss(ctx context.Context, playerID string) (domain.SummonBossResult, error) {
	return uc.gameRepository.SummonBoss(ctx, playerID, uc.rewards.BossCode(), domain.SummonBossCost)
}

func (uc *gameUsecase) KillBoss(ctx context.Context, playerID string, bossCode string) (domain.Rune, error) {
	if bossCode == "" {
		return domain.Rune{}, invalid(ctx, "boss code is required")
	}
	if !validation.ValidateBossCode(bossCode) {
		return domain.Rune{}, invalid(ctx, "boss code must be alphanumeric")
	}
	return uc.gameRepository.KillBoss(ctx, playerID, bossCode, uc.rewards.RuneID())
}

func (uc *gameUsecase) EquipRune(ctx context.Context, playerID string, runeKey int, slotIndex *int) (domain.Rune, error) {
	if runeKey <= 0 {
		return domain.Rune{}, invalid(ctx, "rune id is required")
	}
	if slotIndex == nil {
		return domain.Rune{}, invalid(ctx, "slot index is required")
	}
	if *slotIndex < 0 || *slotIndex >= domain.MaxEquippedRunes {
		return domain.Rune{}, invalid(ctx, fmt.Sprintf("slot index must be between 0 and %d", domain.MaxEquippedRunes-1))
	}
	return uc.gameRepository.EquipRune(ctx, playerID, runeKey, *slotIndex)
}

func (uc *gameUsecase) UnequipRune(ctx context.Context, playerID string, runeKey int) (domain.Rune, error) {
	if runeKey <= 0 {
		return domain.Rune{}, invalid(ctx, "rune id is required")
	}
	return uc.gameRepository.UnequipRune(ctx, playerID, runeKey)
}

func (uc *gameUsecase) BuyHero(ctx context.Context, playerID string, heroID int) (domain.Hero, error) {
	if heroID <= 0 {
		return domain.Hero{}, invalid(ctx, "hero id is required")
	}
	if _, ok := uc.heroes.Lookup(heroID); !ok {
		logger.AccessLogger.Warn("Hero has no definition, seeding column defaults",
			zap.String("request_id", middleware.GetRequestID(ctx)), zap.Int("hero_id", heroID))
	}
	return uc.gameRepository.BuyHero(ctx, playerID, uc.heroes.NewHero(playerID, heroID), domain.HeroPrice)
}

// MineMinerals draws the tier before touching the ledger, so a declined or
// conflicting attempt consumes a draw but never gems.
func (uc *gameUsecase) MineMinerals(ctx context.Context, playerID string) (domain.MineResult, error) {
	tier := uc.rewards.MineralDrop()
	balance, err := uc.gameRepository.MineMinerals(ctx, playerID, domain.MiningFee, tier.Gems)
	if err != nil {
		return domain.MineResult{}, err
	}
	return domain.MineResult{TierID: tier.ID, GemsAwarded: tier.Gems, NewBalance: balance}, nil
}

func (uc *gameUsecase) GetTopByGems(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	switch {
	case limit <= 0:
		limit = DefaultTopLimit
	case limit > MaxTopLimit:
		limit = MaxTopLimit
	}
	return uc.gameRepository.GetTopByGems(ctx, limit)
}
