package domain

import "context"

type KillBossRequest struct {
	BossCode string `json:"bossCode"`
}

type EquipRuneRequest struct {
	ID    int  `json:"id"`
	Index *int `json:"index"`
}

type UnequipRuneRequest struct {
	ID int `json:"id"`
}

type BuyHeroRequest struct {
	HeroID int `json:"idHero"`
}

type KillMonsterResult struct {
	GemsAwarded int `json:"gemsAwarded"`
	NewBalance  int `json:"newBalance"`
}

type SummonBossResult struct {
	BossCode   string `json:"code"`
	NewBalance int    `json:"newBalance"`
}

type MineResult struct {
	TierID      int `json:"tierId"`
	GemsAwarded int `json:"gemsAwarded"`
	NewBalance  int `json:"newBalance"`
}

type LeaderboardEntry struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Gems     int    `json:"gems"`
	Rank     int    `json:"rank"`
}

// ActionResponse is the envelope every game action answers with.
type ActionResponse struct {
	Success bool    `json:"success"`
	Outcome Outcome `json:"outcome"`
	Message string  `json:"message"`
}

type KillMonsterResponse struct {
	ActionResponse
	KillMonsterResult
}

type SummonBossResponse struct {
	ActionResponse
	SummonBossResult
}

type KillBossResponse struct {
	ActionResponse
	NewRune Rune `json:"newRune"`
}

type RuneResponse struct {
	ActionResponse
	Rune Rune `json:"rune"`
}

type BuyHeroResponse struct {
	ActionResponse
	Hero *Hero `json:"hero,omitempty"`
}

type MineResponse struct {
	ActionResponse
	MineResult
}

type TopResponse struct {
	ActionResponse
	Players []LeaderboardEntry `json:"players"`
}

// GameRepository runs every game action as one transaction against the store.
// Random draws are made by the caller so the repository stays deterministic.
type GameRepository interface {
	KillMonster(ctx context.Context, playerID string, reward int) (KillMonsterResult, error)
	SummonBoss(ctx context.Context, playerID string, code string, cost int) (SummonBossResult, error)
	KillBoss(ctx context.Context, playerID string, code string, runeID int) (Rune, error)
	EquipRune(ctx context.Context, playerID string, runeKey int, slotIndex int) (Rune, error)
	UnequipRune(ctx context.Context, playerID string, runeKey int) (Rune, error)
	BuyHero(ctx context.Context, playerID string, hero Hero, price int) (Hero, error)
	MineMinerals(ctx context.Context, playerID string, fee int, reward int) (int, error)
	GetTopByGems(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}
