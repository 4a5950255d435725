package repository

import (
	"errors"

	"github.com/Fin1704/3KingAuto-server/domain"
	"gorm.io/gorm"
)

// roster owns which heroes a player has bought.
type roster struct {
	ledger ledger
}

func (roster) owns(tx *gorm.DB, playerID string, heroID int) (bool, error) {
	var count int64
	if err := tx.Model(&domain.Hero{}).
		Where("player_id = ? AND hero_id = ?", playerID, heroID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (roster) create(tx *gorm.DB, hero *domain.Hero) error {
	if err := domain.NormalizeHero(hero); err != nil {
		return err
	}
	if err := tx.Create(hero).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrHeroAlreadyOwned
		}
		return err
	}
	return nil
}

// purchase debits price through the ledger and creates the hero row.
func (ros roster) purchase(tx *gorm.DB, hero domain.Hero, price int) (domain.Hero, error) {
	player, err := ros.ledger.load(tx, hero.PlayerID)
	if err != nil {
		return domain.Hero{}, err
	}

	owned, err := ros.owns(tx, hero.PlayerID, hero.HeroID)
	if err != nil {
		return domain.Hero{}, err
	}
	if owned {
		return domain.Hero{}, domain.ErrHeroAlreadyOwned
	}

	if player.Gems < price {
		return domain.Hero{}, domain.ErrInsufficientFunds
	}
	if _, err := ros.ledger.adjust(tx, player.ID, -price, player.Gems); err != nil {
		return domain.Hero{}, err
	}

	if err := ros.create(tx, &hero); err != nil {
		return domain.Hero{}, err
	}
	return hero, nil
}
