// Package catalog holds the static hero definitions heroes are seeded from.
//
// A Catalog is built once at startup and only read afterwards, so it is safe to
// share between requests without locking.
package catalog

import (
	"fmt"
	"os"

	"github.com/Fin1704/3KingAuto-server/domain"
	"gopkg.in/yaml.v3"
)

// StarterHeroID is the hero every player receives at registration.
const StarterHeroID = 1

type Catalog struct {
	starterID int
	heroes    map[int]domain.HeroStats
}

type file struct {
	Starter int                      `yaml:"starter"`
	Heroes  map[int]domain.HeroStats `yaml:"heroes"`
}

// columnDefaults mirrors the column defaults of the heroes table.
var columnDefaults = domain.HeroStats{
	Level:       1,
	AttackSpeed: 1.2,
	MoveSpeed:   1.0,
	HP:          200,
}

func Default() *Catalog {
	return &Catalog{
		starterID: StarterHeroID,
		heroes: map[int]domain.HeroStats{
			1: columnDefaults,
			2: {Level: 1, Exp: 1, AttackMin: 10, AttackMax: 35, Defense: 5, AttackSpeed: 1.2, MoveSpeed: 1, HP: 250},
			3: {Level: 1, Exp: 1, AttackMin: 20, AttackMax: 30, Defense: 7, AttackSpeed: 1.2, MoveSpeed: 1, HP: 200},
		},
	}
}

// Load reads a YAML hero table. An empty definition ({}) gets the column defaults.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read hero catalog: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse hero catalog: %w", err)
	}
	if f.Starter == 0 {
		f.Starter = StarterHeroID
	}

	c := &Catalog{starterID: f.Starter, heroes: make(map[int]domain.HeroStats, len(f.Heroes))}
	for id, stats := range f.Heroes {
		if id <= 0 {
			return nil, fmt.Errorf("hero catalog: invalid hero id %d", id)
		}
		if stats == (domain.HeroStats{}) {
			stats = columnDefaults
		}
		hero := domain.Hero{HeroID: id, HeroStats: stats}
		if err := domain.NormalizeHero(&hero); err != nil {
			return nil, fmt.Errorf("hero catalog: hero %d: %w", id, err)
		}
		c.heroes[id] = hero.HeroStats
	}
	if _, ok := c.heroes[c.starterID]; !ok {
		return nil, fmt.Errorf("hero catalog: starter hero %d is not defined", c.starterID)
	}
	return c, nil
}

// Lookup reports the seed stats for heroID.
func (c *Catalog) Lookup(heroID int) (domain.HeroStats, bool) {
	stats, ok := c.heroes[heroID]
	return stats, ok
}

// NewHero seeds a hero row for heroID. Ids without a definition produce a
// degenerate hero carrying only the column defaults.
func (c *Catalog) NewHero(playerID string, heroID int) domain.Hero {
	stats, ok := c.Lookup(heroID)
	if !ok {
		stats = columnDefaults
	}
	return domain.Hero{PlayerID: playerID, HeroID: heroID, HeroStats: stats}
}

func (c *Catalog) Starter(playerID string) domain.Hero {
	return c.NewHero(playerID, c.starterID)
}
