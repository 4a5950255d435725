package mocks

import (
	"context"

	"github.com/Fin1704/3KingAuto-server/domain"
	"github.com/stretchr/testify/mock"
)

type MockGameUsecase struct {
	mock.Mock
}

func (m *MockGameUsecase) KillMonster(ctx context.Context, playerID string) (domain.KillMonsterResult, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(domain.KillMonsterResult), args.Error(1)
}

func (m *MockGameUsecase) SummonBoss(ctx context.Context, playerID string) (domain.SummonBossResult, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(domain.SummonBossResult), args.Error(1)
}

func (m *MockGameUsecase) KillBoss(ctx context.Context, playerID string, bossCode string) (domain.Rune, error) {
	args := m.Called(ctx, playerID, bossCode)
	return args.Get(0).(domain.Rune), args.Error(1)
}

func (m *MockGameUsecase) EquipRune(ctx context.Context, playerID string, runeKey int, slotIndex *int) (domain.Rune, error) {
	args := m.Called(ctx, playerID, runeKey, slotIndex)
	return args.Get(0).(domain.Rune), args.Error(1)
}

func (m *MockGameUsecase) UnequipRune(ctx context.Context, playerID string, runeKey int) (domain.Rune, error) {
	args := m.Called(ctx, playerID, runeKey)
	return args.Get(0).(domain.Rune), args.Error(1)
}

func (m *MockGameUsecase) BuyHero(ctx context.Context, playerID string, heroID int) (domain.Hero, error) {
	args := m.Called(ctx, playerID, heroID)
	return args.Get(0).(domain.Hero), args.Error(1)
}

func (m *MockGameUsecase) MineMinerals(ctx context.Context, playerID string) (domain.MineResult, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(domain.MineResult), args.Error(1)
}

func (m *MockGameUsecase) GetTopByGems(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) KillMonster(ctx context.Context, playerID string, reward int) (domain.KillMonsterResult, error) {
	args := m.Called(ctx, playerID, reward)
	return args.Get(0).(domain.KillMonsterResult), args.Error(1)
}

func (m *MockGameRepository) SummonBoss(ctx context.Context, playerID string, code string, cost int) (domain.SummonBossResult, error) {
	args := m.Called(ctx, playerID, code, cost)
	return args.Get(0).(domain.SummonBossResult), args.Error(1)
}

func (m *MockGameRepository) KillBoss(ctx context.Context, playerID string, code string, runeID int) (domain.Rune, error) {
	args := m.Called(ctx, playerID, code, runeID)
	return args.Get(0).(domain.Rune), args.Error(1)
}

func (m *MockGameRepository) EquipRune(ctx context.Context, playerID string, runeKey int, slotIndex int) (domain.Rune, error) {
	args := m.Called(ctx, playerID, runeKey, slotIndex)
	return args.Get(0).(domain.Rune), args.Error(1)
}

func (m *MockGameRepository) UnequipRune(ctx context.Context, playerID string, runeKey int) (domain.Rune, error) {
	args := m.Called(ctx, playerID, runeKey)
	return args.Get(0).(domain.Rune), args.Error(1)
}

func (m *MockGameRepository) BuyHero(ctx context.Context, playerID string, hero domain.Hero, price int) (domain.Hero, error) {
	args := m.Called(ctx, playerID, hero, price)
	return args.Get(0).(domain.Hero), args.Error(1)
}

func (m *MockGameRepository) MineMinerals(ctx context.Context, playerID string, fee int, reward int) (int, error) {
	args := m.Called(ctx, playerID, fee, reward)
	return args.Int(0), args.Error(1)
}

func (m *MockGameRepository) GetTopByGems(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
	}
	return nil, args.Error(1)
}
