package mocks

import (
	"context"
	"time"

	"github.com/Fin1704/3KingAuto-server/domain"
	"github.com/stretchr/testify/mock"
)

type MockAuthRepository struct {
	mock.Mock
}

func (m *MockAuthRepository) CreatePlayer(ctx context.Context, player *domain.Player, starter domain.Hero) error {
	args := m.Called(ctx, player, starter)
	return args.Error(0)
}

func (m *MockAuthRepository) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	args := m.Called(ctx, username)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Player), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthRepository) GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Player), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthRepository) UpdateLastLogin(ctx context.Context, playerID string, at time.Time) error {
	args := m.Called(ctx, playerID, at)
	return args.Error(0)
}

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Register(ctx context.Context, username string, password string) (*domain.Player, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Player), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, username string, password string) (*domain.Player, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Player), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthUsecase) Profile(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Player), args.Error(1)
	}
	return nil, args.Error(1)
}
