package mocks

import (
	"github.com/Fin1704/3KingAuto-server/internal/service/middleware"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/mock"
)

type MockJwtTokenService struct {
	mock.Mock
}

func (m *MockJwtTokenService) Create(playerID string, tokenExpTime int64) (string, error) {
	args := m.Called(playerID, tokenExpTime)
	return args.String(0), args.Error(1)
}

func (m *MockJwtTokenService) Validate(tokenString string) (*middleware.JwtClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) != nil {
		return args.Get(0).(*middleware.JwtClaims), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJwtTokenService) ParseSecretGetter(token *jwt.Token) (interface{}, error) {
	args := m.Called(token)
	return args.Get(0), args.Error(1)
}
