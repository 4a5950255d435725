package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Fin1704/3KingAuto-server/domain"
	"github.com/Fin1704/3KingAuto-server/internal/auth/mocks"
	"github.com/Fin1704/3KingAuto-server/internal/service/logger"
	"github.com/Fin1704/3KingAuto-server/internal/service/middleware"
	jwtmocks "github.com/Fin1704/3KingAuto-server/internal/service/middleware/mocks"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func createTestRequest(method, url string, body []byte) (*http.Request, *httptest.ResponseRecorder) {
	r := httptest.NewRequest(method, url, bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r, httptest.NewRecorder()
}

func setupHandler() (*AuthHandler, *mocks.MockAuthUsecase, *jwtmocks.MockJwtTokenService) {
	logger.AccessLogger = zap.NewNop()
	mockUsecase := new(mocks.MockAuthUsecase)
	mockJWT := new(jwtmocks.MockJwtTokenService)
	return NewAuthHandler(mockUsecase, mockJWT, 24*time.Hour), mockUsecase, mockJWT
}

func registeredPlayer() *domain.Player {
	return &domain.Player{
		ID:       "p1",
		Username: "alice",
		Heroes:   []domain.Hero{{HeroID: 1, HeroStats: domain.HeroStats{Level: 1, HP: 200}}},
	}
}

func TestRegister(t *testing.T) {
	t.Run("Success - Token And Profile", func(t *testing.T) {
		h, mockUsecase, mockJWT := setupHandler()
		mockUsecase.On("Register", mock.Anything, "alice", "Secure123").Return(registeredPlayer(), nil)
		mockJWT.On("Create", "p1", mock.AnythingOfType("int64")).Return("signed", nil)

		body, _ := json.Marshal(domain.Credentials{Username: "alice", Password: "Secure123"})
		r, w := createTestRequest(http.MethodPost, "/api/auth/register", body)
		h.Register(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp domain.AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "signed", resp.Token)
		assert.Equal(t, "alice", resp.Player.Username)
		require.Len(t, resp.Characters, 1)
		assert.Equal(t, 1, resp.Characters[0].HeroID)
		assert.NotNil(t, resp.Runes)
		mockUsecase.AssertExpectations(t)
		mockJWT.AssertExpectations(t)
	})

	t.Run("Declined - Username Taken", func(t *testing.T) {
		h, mockUsecase, mockJWT := setupHandler()
		mockUsecase.On("Register", mock.Anything, "alice", "Secure123").Return(nil, domain.ErrUsernameTaken)

		body, _ := json.Marshal(domain.Credentials{Username: "alice", Password: "Secure123"})
		r, w := createTestRequest(http.MethodPost, "/api/auth/register", body)
		h.Register(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp domain.ActionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "username already exists", resp.Message)
		mockJWT.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Malformed Body", func(t *testing.T) {
		h, _, _ := setupHandler()

		r, w := createTestRequest(http.MethodPost, "/api/auth/register", []byte("not json"))
		h.Register(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Markup Stripped From Username", func(t *testing.T) {
		h, mockUsecase, mockJWT := setupHandler()
		mockUsecase.On("Register", mock.Anything, "alice", "Secure123").Return(registeredPlayer(), nil)
		mockJWT.On("Create", "p1", mock.Anything).Return("signed", nil)

		body, _ := json.Marshal(domain.Credentials{Username: "<script>x</script>alice", Password: "Secure123"})
		r, w := createTestRequest(http.MethodPost, "/api/auth/register", body)
		h.Register(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		mockUsecase.AssertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, mockUsecase, mockJWT := setupHandler()
		mockUsecase.On("Login", mock.Anything, "alice", "Secure123").Return(registeredPlayer(), nil)
		mockJWT.On("Create", "p1", mock.Anything).Return("signed", nil)

		body, _ := json.Marshal(domain.Credentials{Username: "alice", Password: "Secure123"})
		r, w := createTestRequest(http.MethodPost, "/api/auth/login", body)
		h.Login(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp domain.AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Login successful", resp.Message)
	})

	t.Run("Invalid Credentials", func(t *testing.T) {
		h, mockUsecase, _ := setupHandler()
		mockUsecase.On("Login", mock.Anything, "alice", "wrongpass").Return(nil, domain.ErrInvalidCredentials)

		body, _ := json.Marshal(domain.Credentials{Username: "alice", Password: "wrongpass"})
		r, w := createTestRequest(http.MethodPost, "/api/auth/login", body)
		h.Login(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Token Signing Failure", func(t *testing.T) {
		h, mockUsecase, mockJWT := setupHandler()
		mockUsecase.On("Login", mock.Anything, "alice", "Secure123").Return(registeredPlayer(), nil)
		mockJWT.On("Create", "p1", mock.Anything).Return("", errors.New("sign failed"))

		body, _ := json.Marshal(domain.Credentials{Username: "alice", Password: "Secure123"})
		r, w := createTestRequest(http.MethodPost, "/api/auth/login", body)
		h.Login(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestProfile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, mockUsecase, mockJWT := setupHandler()
		claims := &middleware.JwtClaims{PlayerID: "p1", StandardClaims: jwt.StandardClaims{ExpiresAt: 86400}}
		mockJWT.On("Validate", "valid_token").Return(claims, nil)
		mockUsecase.On("Profile", mock.Anything, "p1").Return(registeredPlayer(), nil)

		r, w := createTestRequest(http.MethodGet, "/api/auth/profile", nil)
		r.Header.Set("Authorization", "Bearer valid_token")
		h.Profile(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp domain.ProfileResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "p1", resp.Player.ID)
	})

	t.Run("Failure - Missing Token", func(t *testing.T) {
		h, _, _ := setupHandler()

		r, w := createTestRequest(http.MethodGet, "/api/auth/profile", nil)
		h.Profile(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Failure - Invalid Token", func(t *testing.T) {
		h, _, mockJWT := setupHandler()
		mockJWT.On("Validate", "expired").Return(nil, errors.New("token has expired"))

		r, w := createTestRequest(http.MethodGet, "/api/auth/profile", nil)
		r.Header.Set("Authorization", "Bearer expired")
		h.Profile(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Player Gone", func(t *testing.T) {
		h, mockUsecase, mockJWT := setupHandler()
		claims := &middleware.JwtClaims{PlayerID: "p9"}
		mockJWT.On("Validate", "valid_token").Return(claims, nil)
		mockUsecase.On("Profile", mock.Anything, "p9").Return(nil, domain.ErrPlayerNotFound)

		r, w := createTestRequest(http.MethodGet, "/api/auth/profile", nil)
		r.Header.Set("Authorization", "Bearer valid_token")
		h.Profile(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
