package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/Fin1704/3KingAuto-server/domain"
	"github.com/Fin1704/3KingAuto-server/internal/game/usecase"
	"github.com/Fin1704/3KingAuto-server/internal/service/logger"
	"github.com/Fin1704/3KingAuto-server/internal/service/middleware"
	"github.com/Fin1704/3KingAuto-server/internal/service/response"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type GameHandler struct {
	usecase   usecase.GameUsecase
	jwtToken  middleware.JwtTokenService
	sanitizer *bluemonday.Policy
}

func NewGameHandler(usecase usecase.GameUsecase, jwtToken middleware.JwtTokenService) *GameHandler {
	return &GameHandler{
		usecase:   usecase,
		jwtToken:  jwtToken,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// authorize returns the player id carried by the bearer token.
func (h *GameHandler) authorize(r *http.Request) (string, error) {
	tokenString, ok := middleware.BearerToken(r)
	if !ok {
		return "", fmt.Errorf("%w: missing bearer token", domain.ErrUnauthorized)
	}
	claims, err := h.jwtToken.Validate(tokenString)
	if err != nil {
		return "", fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}
	return claims.PlayerID, nil
}

func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is required", domain.ErrValidation)
		}
		return fmt.Errorf("%w: malformed request body", domain.ErrValidation)
	}
	return nil
}

func (h *GameHandler) received(r *http.Request, action string) {
	logger.AccessLogger.Info("Received "+action+" request",
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)
}

func (h *GameHandler) completed(w http.ResponseWriter, r *http.Request, action string, start time.Time, status int, body any) {
	response.JSON(w, status, body)
	logger.AccessLogger.Info("Completed "+action+" request",
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", status),
	)
}

func (h *GameHandler) handleError(w http.ResponseWriter, r *http.Request, action string, err error) {
	h.handleErrorWithStatus(w, r, action, err, response.Status(err))
}

func (h *GameHandler) handleErrorWithStatus(w http.ResponseWriter, r *http.Request, action string, err error, status int) {
	requestID := middleware.GetRequestID(r.Context())
	if status >= http.StatusInternalServerError {
		logger.AccessLogger.Error(action+" failed", zap.String("request_id", requestID), zap.Error(err))
	} else {
		logger.AccessLogger.Warn(action+" rejected", zap.String("request_id", requestID), zap.Error(err), zap.Int("status", status))
	}
	response.JSON(w, status, response.Failure(err))
}

func (h *GameHandler) KillMonster(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()
	h.received(r, "KillMonster")

	playerID, err := h.authorize(r)
	if err != nil {
		h.handleError(w, r, "KillMonster", err)
		return
	}

	result, err := h.usecase.KillMonster(ctx, playerID)
	if err != nil {
		h.handleError(w, r, "KillMonster", err)
		return
	}

	h.completed(w, r, "KillMonster", start, http.StatusOK, domain.KillMonsterResponse{
		ActionResponse:    response.Success("Monster killed"),
		KillMonsterResult: result,
	})
}

func (h *GameHandler) SummonBoss(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()
	h.received(r, "SummonBoss")

	playerID, err := h.authorize(r)
	if err != nil {
		h.handleError(w, r, "SummonBoss", err)
		return
	}

	result, err := h.usecase.SummonBoss(ctx, playerID)
	if err != nil {
		h.handleError(w, r, "SummonBoss", err)
		return
	}

	h.completed(w, r, "SummonBoss", start, http.StatusOK, domain.SummonBossResponse{
		ActionResponse:   response.Success("Boss summoned"),
		SummonBossResult: result,
	})
}

func (h *GameHandler) KillBoss(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()
	h.received(r, "KillBoss")

	playerID, err := h.authorize(r)
	if err != nil {
		h.handleError(w, r, "KillBoss", err)
		return
	}

	var data domain.KillBossRequest
	if err := decode(r, &data); err != nil {
		h.handleError(w, r, "KillBoss", err)
		return
	}
	data.BossCode = h.sanitizer.Sanitize(data.BossCode)

	awarded, err := h.usecase.KillBoss(ctx, playerID, data.BossCode)
	if err != nil {
		h.handleError(w, r, "KillBoss", err)
		return
	}

	h.completed(w, r, "KillBoss", start, http.StatusOK, domain.KillBossResponse{
		ActionResponse: response.Success("Boss defeated"),
		NewRune:        awarded,
	})
}

func (h *GameHandler) EquipRune(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()
	h.received(r, "EquipRune")

	playerID, err := h.authorize(r)
	if err != nil {
		h.handleError(w, r, "EquipRune", err)
		return
	}

	var data domain.EquipRuneRequest
	if err := decode(r, &data); err != nil {
		h.handleError(w, r, "EquipRune", err)
		return
	}

	equipped, err := h.usecase.EquipRune(ctx, playerID, data.ID, data.Index)
	if err != nil {
		h.handleError(w, r, "EquipRune", err)
		return
	}

	h.completed(w, r, "EquipRune", start, http.StatusOK, domain.RuneResponse{
		ActionResponse: response.Success("Rune equipped"),
		Rune:           equipped,
	})
}

func (h *GameHandler) UnequipRune(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()
	h.received(r, "UnequipRune")

	playerID, err := h.authorize(r)
	if err != nil {
		h.handleError(w, r, "UnequipRune", err)
		return
	}

	var data domain.UnequipRuneRequest
	if err := decode(r, &data); err != nil {
		h.handleError(w, r, "UnequipRune", err)
		return
	}

	unequipped, err := h.usecase.UnequipRune(ctx, playerID, data.ID)
	if err != nil {
		h.handleError(w, r, "UnequipRune", err)
		return
	}

	h.completed(w, r, "UnequipRune", start, http.StatusOK, domain.RuneResponse{
		ActionResponse: response.Success("Rune unequipped"),
		Rune:           unequipped,
	})
}

// BuyHero answers declines (already owned, not enough gems) with 200 and
// success=false; clients read the outcome from the body.
func (h *GameHandler) BuyHero(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()
	h.received(r, "BuyHero")

	playerID, err := h.authorize(r)
	if err != nil {
		h.handleError(w, r, "BuyHero", err)
		return
	}

	var data domain.BuyHeroRequest
	if err := decode(r, &data); err != nil {
		h.handleError(w, r, "BuyHero", err)
		return
	}

	hero, err := h.usecase.BuyHero(ctx, playerID, data.HeroID)
	if err != nil {
		if errors.Is(err, domain.ErrHeroAlreadyOwned) || errors.Is(err, domain.ErrInsufficientFunds) {
			h.handleErrorWithStatus(w, r, "BuyHero", err, http.StatusOK)
			return
		}
		h.handleError(w, r, "BuyHero", err)
		return
	}

	h.completed(w, r, "BuyHero", start, http.StatusOK, domain.BuyHeroResponse{
		ActionResponse: response.Success("Hero purchased"),
		Hero:           &hero,
	})
}

func (h *GameHandler) MineMinerals(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()
	h.received(r, "MineMinerals")

	playerID, err := h.authorize(r)
	if err != nil {
		h.handleError(w, r, "MineMinerals", err)
		return
	}

	result, err := h.usecase.MineMinerals(ctx, playerID)
	if err != nil {
		h.handleError(w, r, "MineMinerals", err)
		return
	}

	h.completed(w, r, "MineMinerals", start, http.StatusOK, domain.MineResponse{
		ActionResponse: response.Success("Minerals mined"),
		MineResult:     result,
	})
}

func (h *GameHandler) GetTopByGems(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()
	h.received(r, "GetTopByGems")

	if _, err := h.authorize(r); err != nil {
		h.handleError(w, r, "GetTopByGems", err)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.handleError(w, r, "GetTopByGems", fmt.Errorf("%w: limit must be a number", domain.ErrValidation))
			return
		}
		limit = parsed
	}

	entries, err := h.usecase.GetTopByGems(ctx, limit)
	if err != nil {
		h.handleError(w, r, "GetTopByGems", err)
		return
	}

	h.completed(w, r, "GetTopByGems", start, http.StatusOK, domain.TopResponse{
		ActionResponse: response.Success(""),
		Players:        entries,
	})
}
