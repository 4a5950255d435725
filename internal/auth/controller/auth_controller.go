package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Fin1704/3KingAuto-server/domain"
	"github.com/Fin1704/3KingAuto-server/internal/auth/usecase"
	"github.com/Fin1704/3KingAuto-server/internal/service/logger"
	"github.com/Fin1704/3KingAuto-server/internal/service/middleware"
	"github.com/Fin1704/3KingAuto-server/internal/service/response"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type AuthHandler struct {
	usecase   usecase.AuthUsecase
	jwtToken  middleware.JwtTokenService
	tokenTTL  time.Duration
	sanitizer *bluemonday.Policy
}

func NewAuthHandler(usecase usecase.AuthUsecase, jwtToken middleware.JwtTokenService, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		usecase:   usecase,
		jwtToken:  jwtToken,
		tokenTTL:  tokenTTL,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	h.authenticate(w, r, "Register", "Player registered successfully", h.usecase.Register)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.authenticate(w, r, "Login", "Login successful", h.usecase.Login)
}

type credentialsFunc func(ctx context.Context, username string, password string) (*domain.Player, error)

// authenticate runs register or login and answers with a fresh token and the profile.
func (h *AuthHandler) authenticate(w http.ResponseWriter, r *http.Request, action string, message string, run credentialsFunc) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received "+action+" request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	var creds domain.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		logger.AccessLogger.Error("Failed to decode request body",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		h.handleError(w, fmt.Errorf("%w: malformed request body", domain.ErrValidation), requestID)
		return
	}
	creds.Username = h.sanitizer.Sanitize(creds.Username)

	player, err := run(ctx, creds.Username, creds.Password)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	token, err := h.jwtToken.Create(player.ID, time.Now().Add(h.tokenTTL).Unix())
	if err != nil {
		logger.AccessLogger.Error("Failed to create JWT token",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		h.handleError(w, err, requestID)
		return
	}

	response.JSON(w, http.StatusOK, domain.AuthResponse{
		Success:       true,
		Message:       message,
		Token:         token,
		PlayerProfile: domain.NewPlayerProfile(player),
	})

	logger.AccessLogger.Info("Completed "+action+" request",
		zap.String("request_id", requestID),
		zap.String("player_id", player.ID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received Profile request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	tokenString, ok := middleware.BearerToken(r)
	if !ok {
		h.handleError(w, fmt.Errorf("%w: missing bearer token", domain.ErrUnauthorized), requestID)
		return
	}
	claims, err := h.jwtToken.Validate(tokenString)
	if err != nil {
		h.handleError(w, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized), requestID)
		return
	}

	player, err := h.usecase.Profile(ctx, claims.PlayerID)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	response.JSON(w, http.StatusOK, domain.ProfileResponse{
		Success:       true,
		PlayerProfile: domain.NewPlayerProfile(player),
	})

	logger.AccessLogger.Info("Completed Profile request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func (h *AuthHandler) handleError(w http.ResponseWriter, err error, requestID string) {
	status := response.Status(err)
	logger.AccessLogger.Error("Handling error",
		zap.String("request_id", requestID),
		zap.Int("status", status),
		zap.Error(err),
	)
	response.JSON(w, status, response.Failure(err))
}
