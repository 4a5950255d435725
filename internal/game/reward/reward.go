// Package reward computes game rewards from random draws and static tables.
// Nothing here touches storage; callers apply the results to the ledger.
package reward

import (
	"math/rand/v2"
	"strings"
)

const bossCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const (
	monsterRewardMax = 10
	runeKinds        = 10
	bossCodeLength   = 5
)

// Source is the randomness the engine draws from.
type Source interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
	// Float64 returns a value in [0, 1).
	Float64() float64
}

type globalSource struct{}

func (globalSource) IntN(n int) int   { return rand.IntN(n) }
func (globalSource) Float64() float64 { return rand.Float64() }

// MineralTier is one row of the mining drop table.
type MineralTier struct {
	ID     int
	Weight float64
	Gems   int
}

// weightMilli is the weight scaled to thousandths so cumulative sums are exact.
func (t MineralTier) weightMilli() int {
	return int(t.Weight*1000 + 0.5)
}

var MineralTiers = []MineralTier{
	{ID: 1, Weight: 50, Gems: 5},
	{ID: 2, Weight: 20, Gems: 100},
	{ID: 3, Weight: 15, Gems: 150},
	{ID: 4, Weight: 10, Gems: 200},
	{ID: 5, Weight: 4, Gems: 250},
	{ID: 6, Weight: 0.9, Gems: 300},
	{ID: 7, Weight: 0.1, Gems: 500},
}

type Engine struct {
	src Source
}

// NewEngine uses the process-wide math/rand/v2 generator, which is safe for concurrent use.
func NewEngine() *Engine {
	return &Engine{src: globalSource{}}
}

func NewEngineWithSource(src Source) *Engine {
	return &Engine{src: src}
}

// MonsterKillReward is uniform over 1..10.
func (e *Engine) MonsterKillReward() int {
	return e.src.IntN(monsterRewardMax) + 1
}

// RuneID is uniform over 1..10.
func (e *Engine) RuneID() int {
	return e.src.IntN(runeKinds) + 1
}

func (e *Engine) BossCode() string {
	var b strings.Builder
	b.Grow(bossCodeLength)
	for i := 0; i < bossCodeLength; i++ {
		b.WriteByte(bossCodeAlphabet[e.src.IntN(len(bossCodeAlphabet))])
	}
	return b.String()
}

// MineralDrop draws over [0,100) and picks the first tier whose cumulative weight
// is >= the draw.
func (e *Engine) MineralDrop() MineralTier {
	return TierForDraw(e.src.Float64() * 100)
}

// TierForDraw maps a draw in [0,100) to its tier. Cumulative weights are summed in
// thousandths, so the last tier ends at exactly 100 and every draw below 100 matches.
// A draw outside the table falls back to tier 1.
func TierForDraw(draw float64) MineralTier {
	cumulative := 0
	for _, tier := range MineralTiers {
		cumulative += tier.weightMilli()
		if draw <= float64(cumulative)/1000 {
			return tier
		}
	}
	return MineralTiers[0]
}
