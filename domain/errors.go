package domain

import "errors"

var (
	ErrValidation         = errors.New("invalid input")
	ErrUnauthorized       = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrRuneNotFound       = errors.New("rune not found")
	ErrInsufficientFunds  = errors.New("not enough gems")
	ErrInvalidBossCode    = errors.New("invalid boss code")
	ErrEquipLimitReached  = errors.New("equipped rune limit reached")
	ErrHeroAlreadyOwned   = errors.New("hero already owned")
	ErrConflict           = errors.New("conflict detected, please try again")
	ErrStorage            = errors.New("storage failure")
)

// Outcome is the category an action result falls into at the API boundary.
type Outcome string

const (
	OutcomeSuccess      Outcome = "success"
	OutcomeInvalid      Outcome = "invalid"
	OutcomeDeclined     Outcome = "declined"
	OutcomeConflict     Outcome = "conflict"
	OutcomeUnauthorized Outcome = "unauthorized"
	OutcomeError        Outcome = "error"
)

// OutcomeOf classifies err. Anything not recognised is a system failure.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrValidation):
		return OutcomeInvalid
	case errors.Is(err, ErrConflict):
		return OutcomeConflict
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidCredentials):
		return OutcomeUnauthorized
	case errors.Is(err, ErrUsernameTaken),
		errors.Is(err, ErrPlayerNotFound),
		errors.Is(err, ErrRuneNotFound),
		errors.Is(err, ErrInsufficientFunds),
		errors.Is(err, ErrInvalidBossCode),
		errors.Is(err, ErrEquipLimitReached),
		errors.Is(err, ErrHeroAlreadyOwned):
		return OutcomeDeclined
	default:
		return OutcomeError
	}
}
