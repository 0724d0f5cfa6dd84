package port

import (
	"context"

	"github.com/google/uuid"

	"maniflow/internal/domain"
)

// FileMetaRepository defines the contract for file metadata persistence.
type FileMetaRepository interface {
	Create(ctx context.Context, meta *domain.FileMeta) error
	GetByID(ctx context.Context, fileID uuid.UUID) (*domain.FileMeta, error)
	UpdateStatus(ctx context.Context, fileID uuid.UUID, status domain.FileStatus) error
	Delete(ctx context.Context, fileID uuid.UUID) error
}

// ManifestRepository defines the contract for decoded manifest persistence.
type ManifestRepository interface {
	Create(ctx context.Context, m *domain.Manifest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Manifest, error)
	List(ctx context.Context, offset, limit int) ([]domain.Manifest, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
