package reward

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedSource struct {
	ints   []int
	floats []float64
}

func (s *fixedSource) IntN(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *fixedSource) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func TestMonsterKillReward(t *testing.T) {
	e := NewEngineWithSource(&fixedSource{ints: []int{0, 9}})
	assert.Equal(t, 1, e.MonsterKillReward())
	assert.Equal(t, 10, e.MonsterKillReward())

	live := NewEngine()
	for i := 0; i < 1000; i++ {
		r := live.MonsterKillReward()
		assert.True(t, r >= 1 && r <= 10, r)
	}
}

func TestRuneID(t *testing.T) {
	live := NewEngine()
	for i := 0; i < 1000; i++ {
		id := live.RuneID()
		assert.True(t, id >= 1 && id <= 10, id)
	}
}

func TestBossCode(t *testing.T) {
	e := NewEngineWithSource(&fixedSource{ints: []int{0, 25, 26, 51, 1}})
	assert.Equal(t, "AZazB", e.BossCode())

	live := NewEngine()
	for i := 0; i < 200; i++ {
		code := live.BossCode()
		assert.Len(t, code, 5)
		assert.Regexp(t, `^[A-Za-z]{5}$`, code)
	}
}

func TestTierForDraw(t *testing.T) {
	cases := []struct {
		draw float64
		want int
	}{
		{0, 1},
		{49.99, 1},
		{50, 1},
		{50.0001, 2},
		{70, 2},
		{84.5, 3},
		{94, 4},
		{98.7, 5},
		{99.9, 6},
		{99.95, 7},
		{99.999999, 7},
		{150, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TierForDraw(tc.draw).ID, "draw %v", tc.draw)
	}
}

func TestMineralDrop(t *testing.T) {
	e := NewEngineWithSource(&fixedSource{floats: []float64{0.9995, 0.1}})

	top := e.MineralDrop()
	assert.Equal(t, 7, top.ID)
	assert.Equal(t, 500, top.Gems)

	low := e.MineralDrop()
	assert.Equal(t, 1, low.ID)
	assert.Equal(t, 5, low.Gems)
}

func TestMineralTiersSumToHundred(t *testing.T) {
	total := 0
	for _, tier := range MineralTiers {
		total += tier.weightMilli()
	}
	assert.Equal(t, 100000, total)
}
