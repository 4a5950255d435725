package repository

import (
	"errors"

	"github.com/Fin1704/3KingAuto-server/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// inventory owns rune rows. Ownership is unbounded; only the equipped count is capped.
type inventory struct{}

func (inventory) award(tx *gorm.DB, playerID string, runeID int) (domain.Rune, error) {
	r := domain.Rune{
		PlayerID:   playerID,
		RuneID:     runeID,
		IsEquipped: false,
	}
	if err := tx.Create(&r).Error; err != nil {
		return domain.Rune{}, err
	}
	return r, nil
}

func (inventory) load(tx *gorm.DB, playerID string, runeKey int) (domain.Rune, error) {
	var r domain.Rune
	if err := tx.Where("id = ? AND player_id = ?", runeKey, playerID).First(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Rune{}, domain.ErrRuneNotFound
		}
		return domain.Rune{}, err
	}
	return r, nil
}

// equip locks the owner row first so concurrent equips of one player run one after
// another, then sets the slot with the cap check inside the same statement. A rune
// that is already equipped does not count against the cap when it moves slots.
func (inv inventory) equip(tx *gorm.DB, playerID string, runeKey int, slotIndex int) (domain.Rune, error) {
	var owner domain.Player
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", playerID).
		First(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Rune{}, domain.ErrPlayerNotFound
		}
		return domain.Rune{}, err
	}

	r, err := inv.load(tx, playerID, runeKey)
	if err != nil {
		return domain.Rune{}, err
	}

	res := tx.Model(&domain.Rune{}).
		Where("id = ? AND player_id = ? AND (is_equipped OR (SELECT COUNT(*) FROM runes WHERE player_id = ? AND is_equipped) < ?)",
			runeKey, playerID, playerID, domain.MaxEquippedRunes).
		Updates(map[string]interface{}{"is_equipped": true, "slot_index": slotIndex})
	if res.Error != nil {
		return domain.Rune{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Rune{}, domain.ErrEquipLimitReached
	}

	r.IsEquipped = true
	r.SlotIndex = &slotIndex
	return r, nil
}

// unequip is idempotent: an unequipped rune stays unequipped and the call succeeds.
func (inv inventory) unequip(tx *gorm.DB, playerID string, runeKey int) (domain.Rune, error) {
	r, err := inv.load(tx, playerID, runeKey)
	if err != nil {
		return domain.Rune{}, err
	}
	if !r.IsEquipped && r.SlotIndex == nil {
		return r, nil
	}

	if err := tx.Model(&domain.Rune{}).
		Where("id = ? AND player_id = ?", runeKey, playerID).
		Updates(map[string]interface{}{"is_equipped": false, "slot_index": gorm.Expr("NULL")}).Error; err != nil {
		return domain.Rune{}, err
	}

	r.IsEquipped = false
	r.SlotIndex = nil
	return r, nil
}
