package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"maniflow/internal/domain"
	"maniflow/internal/edifact"
	"maniflow/internal/service"
)

// MockManifestService is a mock implementation of service.ManifestService.
type MockManifestService struct {
	mock.Mock
}

func (m *MockManifestService) DecodeUpload(ctx context.Context, input service.ManifestUploadInput) (*domain.Manifest, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Manifest), args.Error(1)
}

func (m *MockManifestService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Manifest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Manifest), args.Error(1)
}

func (m *MockManifestService) List(ctx context.Context, offset, limit int) ([]domain.Manifest, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Manifest), args.Int(1), args.Error(2)
}

func (m *MockManifestService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockManifestService) GetRawDownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockManifestService) Interchange(manifest *domain.Manifest) (*edifact.Interchange, error) {
	args := m.Called(manifest)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*edifact.Interchange), args.Error(1)
}

func (m *MockManifestService) Sample() *domain.Manifest {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Manifest)
}
