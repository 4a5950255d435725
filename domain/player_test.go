package domain

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestTableNames(t *testing.T) {
	cache := &sync.Map{}
	tests := []struct {
		model any
		want  string
	}{
		{&Player{}, "players"},
		{&Hero{}, "heroes"},
		{&Rune{}, "runes"},
	}
	for _, tt := range tests {
		s, err := schema.Parse(tt.model, cache, schema.NamingStrategy{})
		require.NoError(t, err)
		assert.Equal(t, tt.want, s.Table)
	}
}

func TestNormalizeHero(t *testing.T) {
	h := Hero{HeroStats: HeroStats{HP: -5, AttackMin: 1, AttackMax: 3}}
	require.NoError(t, NormalizeHero(&h))
	assert.Equal(t, 0, h.HP)

	h = Hero{HeroStats: HeroStats{AttackMin: 4, AttackMax: 3}}
	err := NormalizeHero(&h)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestCheckBalance(t *testing.T) {
	assert.NoError(t, CheckBalance(0))
	assert.ErrorIs(t, CheckBalance(-1), ErrInsufficientFunds)
}
