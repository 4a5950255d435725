// Package response maps action errors to HTTP statuses and writes JSON bodies.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Fin1704/3KingAuto-server/domain"
	"github.com/Fin1704/3KingAuto-server/internal/service/logger"
	"go.uber.org/zap"
)

const internalMessage = "internal server error"

// Status picks the HTTP status for err. Not-found declines are 404, every other
// decline and validation failure is 400.
func Status(err error) int {
	switch domain.OutcomeOf(err) {
	case domain.OutcomeSuccess:
		return http.StatusOK
	case domain.OutcomeInvalid:
		return http.StatusBadRequest
	case domain.OutcomeConflict:
		return http.StatusConflict
	case domain.OutcomeUnauthorized:
		return http.StatusUnauthorized
	case domain.OutcomeDeclined:
		if errors.Is(err, domain.ErrPlayerNotFound) || errors.Is(err, domain.ErrRuneNotFound) {
			return http.StatusNotFound
		}
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message is the client-facing reason for err. System failures stay opaque.
func Message(err error) string {
	if domain.OutcomeOf(err) == domain.OutcomeError {
		return internalMessage
	}
	return err.Error()
}

// Failure builds the envelope for a non-success result.
func Failure(err error) domain.ActionResponse {
	return domain.ActionResponse{
		Success: false,
		Outcome: domain.OutcomeOf(err),
		Message: Message(err),
	}
}

func Success(message string) domain.ActionResponse {
	return domain.ActionResponse{
		Success: true,
		Outcome: domain.OutcomeSuccess,
		Message: message,
	}
}

func JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.AccessLogger.Error("Failed to encode response", zap.Error(err))
	}
}
