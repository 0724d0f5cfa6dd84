package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"maniflow/internal/domain"
)

// MockManifestRepo is a mock implementation of port.ManifestRepository.
type MockManifestRepo struct {
	mock.Mock
}

func (m *MockManifestRepo) Create(ctx context.Context, manifest *domain.Manifest) error {
	args := m.Called(ctx, manifest)
	return args.Error(0)
}

func (m *MockManifestRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Manifest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Manifest), args.Error(1)
}

func (m *MockManifestRepo) List(ctx context.Context, offset, limit int) ([]domain.Manifest, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Manifest), args.Int(1), args.Error(2)
}

func (m *MockManifestRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
