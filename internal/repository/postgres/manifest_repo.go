package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"maniflow/internal/domain"
	"maniflow/internal/port"
)

type manifestRepo struct {
	db *sqlx.DB
}

// NewManifestRepo creates a new PostgreSQL-backed ManifestRepository.
func NewManifestRepo(db *sqlx.DB) port.ManifestRepository {
	return &manifestRepo{db: db}
}

func (r *manifestRepo) Create(ctx context.Context, m *domain.Manifest) error {
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	query := `INSERT INTO manifests
		(id, file_id, source_name, manifest_number, message_type, sender, receiver,
		 currency, warehouse, shipment_count, item_count, structured_data, status,
		 decoded_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.FileID, m.SourceName, m.ManifestNumber, m.MessageType, m.Sender,
		m.Receiver, m.Currency, m.Warehouse, m.ShipmentCount, m.ItemCount,
		m.StructuredData, m.Status, m.DecodedAt, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("manifestRepo.Create: %w", err)
	}
	return nil
}

func (r *manifestRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Manifest, error) {
	var m domain.Manifest
	err := r.db.GetContext(ctx, &m, "SELECT * FROM manifests WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("manifestRepo.GetByID: %w", err)
	}
	return &m, nil
}

func (r *manifestRepo) List(ctx context.Context, offset, limit int) ([]domain.Manifest, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM manifests")
	if err != nil {
		return nil, 0, fmt.Errorf("manifestRepo.List count: %w", err)
	}

	var manifests []domain.Manifest
	err = r.db.SelectContext(ctx, &manifests,
		`SELECT * FROM manifests
		 ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("manifestRepo.List: %w", err)
	}
	return manifests, total, nil
}

func (r *manifestRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM manifests WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("manifestRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
