package middleware

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net/http"
	"time"

	"github.com/Fin1704/3KingAuto-server/internal/service/logger"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const IdempotencyHeader = "Idempotency-Key"

const maxIdempotencyKeyLen = 128

// IdempotencyStore remembers which request keys were already seen.
type IdempotencyStore interface {
	// Reserve returns false when key was reserved before and has not expired.
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Release drops a reservation so the same key can be sent again.
	Release(ctx context.Context, key string) error
}

type redisIdempotencyStore struct {
	client *redis.Client
}

func NewRedisIdempotencyStore(client *redis.Client) IdempotencyStore {
	return &redisIdempotencyStore{client: client}
}

func (s *redisIdempotencyStore) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, "idempotency:"+key, time.Now().Unix(), ttl).Result()
}

func (s *redisIdempotencyStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, "idempotency:"+key).Err()
}

// statusRecorder remembers the status code the wrapped handler answered with.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	if rec.status == 0 {
		rec.status = code
	}
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	if rec.status == 0 {
		rec.status = http.StatusOK
	}
	return rec.ResponseWriter.Write(b)
}

// IdempotencyMiddleware rejects a replayed Idempotency-Key with 409 so a double-submitted
// action is reported as a conflict instead of being applied twice. A key whose request was
// not answered with 2xx is released, so a retry with the same key runs again. Requests
// without the header, and all requests when store is nil, pass through. Store failures fail open.
func IdempotencyMiddleware(store IdempotencyStore, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			idemKey := r.Header.Get(IdempotencyHeader)
			if store == nil || idemKey == "" || r.Method == http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			requestID := GetRequestID(r.Context())
			if len(idemKey) > maxIdempotencyKeyLen {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"success":false,"outcome":"invalid","message":"idempotency key is too long"}`))
				return
			}

			token, _ := BearerToken(r)
			scoped := fmt.Sprintf("%s:%x:%s", r.URL.Path, sha256.Sum256([]byte(token)), idemKey)
			reserved, err := store.Reserve(r.Context(), scoped, ttl)
			if err != nil {
				logger.AccessLogger.Warn("Idempotency store unavailable",
					zap.String("request_id", requestID),
					zap.Error(err),
				)
				next.ServeHTTP(w, r)
				return
			}
			if !reserved {
				logger.AccessLogger.Warn("Duplicate request rejected",
					zap.String("request_id", requestID),
					zap.String("path", r.URL.Path),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusConflict)
				_, _ = w.Write([]byte(`{"success":false,"outcome":"conflict","message":"duplicate request"}`))
				return
			}

			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)
			if rec.status == 0 || (rec.status >= 200 && rec.status < 300) {
				return
			}
			// The request context may already be cancelled after a timeout.
			if err := store.Release(context.WithoutCancel(r.Context()), scoped); err != nil {
				logger.AccessLogger.Warn("Failed to release idempotency key",
					zap.String("request_id", requestID),
					zap.Error(err),
				)
			}
		})
	}
}
