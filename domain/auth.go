package domain

import (
	"context"
	"time"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type PlayerSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Gems     int    `json:"gems"`
}

// PlayerProfile is what register, login and profile hand back to the client.
type PlayerProfile struct {
	Player     PlayerSummary `json:"player"`
	Characters []Hero        `json:"characters"`
	Runes      []Rune        `json:"runes"`
}

type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
	PlayerProfile
}

type ProfileResponse struct {
	Success bool `json:"success"`
	PlayerProfile
}

func NewPlayerProfile(p *Player) PlayerProfile {
	profile := PlayerProfile{
		Player: PlayerSummary{
			ID:       p.ID,
			Username: p.Username,
			Gems:     p.Gems,
		},
		Characters: p.Heroes,
		Runes:      p.Runes,
	}
	if profile.Characters == nil {
		profile.Characters = []Hero{}
	}
	if profile.Runes == nil {
		profile.Runes = []Rune{}
	}
	return profile
}

type AuthRepository interface {
	CreatePlayer(ctx context.Context, player *Player, starter Hero) error
	GetPlayerByUsername(ctx context.Context, username string) (*Player, error)
	GetPlayerByID(ctx context.Context, playerID string) (*Player, error)
	UpdateLastLogin(ctx context.Context, playerID string, at time.Time) error
}
