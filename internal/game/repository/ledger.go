package repository

import (
	"errors"

	"github.com/Fin1704/3KingAuto-server/domain"
	"gorm.io/gorm"
)

// ledger owns the player's gem balance and boss code. Every write is conditional on
// the balance the caller read, so a racing request makes the write miss instead of
// overwriting: a miss is reported as domain.ErrConflict.
type ledger struct{}

func (ledger) load(tx *gorm.DB, playerID string) (domain.Player, error) {
	var player domain.Player
	if err := tx.Where("id = ?", playerID).First(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Player{}, domain.ErrPlayerNotFound
		}
		return domain.Player{}, err
	}
	return player, nil
}

// adjust applies gems += delta if the stored balance still equals expected.
func (ledger) adjust(tx *gorm.DB, playerID string, delta int, expected int) (int, error) {
	newBalance := expected + delta
	if err := domain.CheckBalance(newBalance); err != nil {
		return expected, err
	}

	res := tx.Model(&domain.Player{}).
		Where("id = ? AND gems = ?", playerID, expected).
		Update("gems", newBalance)
	if res.Error != nil {
		return expected, res.Error
	}
	if res.RowsAffected == 0 {
		return expected, domain.ErrConflict
	}
	return newBalance, nil
}

// setBossCode debits cost and stores code in the same guarded write.
func (ledger) setBossCode(tx *gorm.DB, playerID string, code string, expected int, cost int) (int, error) {
	newBalance := expected - cost
	if err := domain.CheckBalance(newBalance); err != nil {
		return expected, err
	}

	res := tx.Model(&domain.Player{}).
		Where("id = ? AND gems = ?", playerID, expected).
		Updates(map[string]interface{}{"gems": newBalance, "boss_code": code})
	if res.Error != nil {
		return expected, res.Error
	}
	if res.RowsAffected == 0 {
		return expected, domain.ErrConflict
	}
	return newBalance, nil
}

// clearBossCodeIfMatches succeeds only for the code currently stored.
func (ledger) clearBossCodeIfMatches(tx *gorm.DB, playerID string, code string) error {
	res := tx.Model(&domain.Player{}).
		Where("id = ? AND boss_code = ?", playerID, code).
		Update("boss_code", gorm.Expr("NULL"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrInvalidBossCode
	}
	return nil
}
