package repository

import (
	"context"

	"github.com/Fin1704/3KingAuto-server/domain"
	"github.com/Fin1704/3KingAuto-server/internal/service/logger"
	"github.com/Fin1704/3KingAuto-server/internal/service/middleware"
	"go.uber.org/zap"
)

func (r *gameRepository) GetTopByGems(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetTopByGems called", zap.String("request_id", requestID), zap.Int("limit", limit))

	entries := make([]domain.LeaderboardEntry, 0, limit)
	if err := r.db.WithContext(ctx).
		Model(&domain.Player{}).
		Select("id, username, gems").
		Order("gems DESC").
		Order("username").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, r.fail(ctx, "GetTopByGems", "", err)
	}

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}
