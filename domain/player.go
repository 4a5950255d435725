package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	// MaxEquippedRunes caps how many runes a player can have equipped at once.
	MaxEquippedRunes = 6

	SummonBossCost = 200
	HeroPrice      = 10000
	MiningFee      = 100

	BossCodeLength = 5
)

type Player struct {
	ID          string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid();column:id" json:"id"`
	Username    string     `gorm:"type:varchar(30);unique;not null;column:username" json:"username"`
	Password    string     `gorm:"type:varchar(100);not null;column:password" json:"-"`
	Gems        int        `gorm:"type:int;not null;default:0;check:gems >= 0;column:gems" json:"gems"`
	BossCode    *string    `gorm:"type:varchar(30);column:boss_code" json:"-"`
	LastLoginAt *time.Time `gorm:"column:last_login_at" json:"lastLoginAt,omitempty"`
	Heroes      []Hero     `gorm:"foreignKey:PlayerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Runes       []Rune     `gorm:"foreignKey:PlayerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// HeroStats is the seed stat block copied onto a hero row at acquisition time.
type HeroStats struct {
	Level       int     `gorm:"type:smallint;not null;default:1;column:level" yaml:"level" json:"level"`
	Exp         int     `gorm:"type:int;not null;default:0;column:exp" yaml:"exp" json:"exp"`
	AttackMin   int     `gorm:"type:smallint;not null;default:0;column:attack_min" yaml:"attackMin" json:"attackMin"`
	AttackMax   int     `gorm:"type:smallint;not null;default:0;column:attack_max" yaml:"attackMax" json:"attackMax"`
	Defense     int     `gorm:"type:smallint;not null;default:0;column:defense" yaml:"defense" json:"defense"`
	AttackSpeed float64 `gorm:"type:decimal(4,2);not null;default:1.2;column:attack_speed" yaml:"attackSpeed" json:"attackSpeed"`
	MoveSpeed   float64 `gorm:"type:decimal(4,2);not null;default:1.0;column:move_speed" yaml:"moveSpeed" json:"moveSpeed"`
	HP          int     `gorm:"type:int;not null;column:hp" yaml:"hp" json:"hp"`
}

type Hero struct {
	ID       int    `gorm:"primaryKey;autoIncrement;column:id" json:"-"`
	PlayerID string `gorm:"type:uuid;not null;column:player_id;index:idx_heroes_player_hero,unique" json:"-"`
	HeroID   int    `gorm:"not null;column:hero_id;index:idx_heroes_player_hero,unique" json:"id"`
	HeroStats
}

func (Hero) TableName() string {
	return "heroes"
}

type Rune struct {
	ID         int    `gorm:"primaryKey;autoIncrement;column:id" json:"key"`
	PlayerID   string `gorm:"type:uuid;not null;column:player_id;index:idx_runes_player_equipped" json:"-"`
	RuneID     int    `gorm:"not null;column:rune_id" json:"id"`
	IsEquipped bool   `gorm:"not null;column:is_equipped;index:idx_runes_player_equipped" json:"isEquipped"`
	SlotIndex  *int   `gorm:"column:slot_index" json:"index"`
}

// NormalizeUsername applies the canonical form stored in the players table.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// NormalizeHero clamps and checks a hero stat block before it is written.
func NormalizeHero(h *Hero) error {
	if h.HP < 0 {
		h.HP = 0
	}
	if h.AttackMin > h.AttackMax {
		return fmt.Errorf("%w: attackMin cannot be greater than attackMax", ErrValidation)
	}
	return nil
}

// CheckBalance rejects any balance that would go below zero.
func CheckBalance(balance int) error {
	if balance < 0 {
		return ErrInsufficientFunds
	}
	return nil
}
