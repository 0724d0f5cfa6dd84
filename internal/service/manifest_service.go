package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"maniflow/internal/config"
	"maniflow/internal/domain"
	"maniflow/internal/edifact"
	"maniflow/internal/port"
	"maniflow/internal/sample"
)

// ManifestUploadInput is the DTO for interchange upload requests.
type ManifestUploadInput struct {
	File   multipart.File
	Header *multipart.FileHeader
}

// ManifestService defines the manifest decoding and management contract.
type ManifestService interface {
	DecodeUpload(ctx context.Context, input ManifestUploadInput) (*domain.Manifest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Manifest, error)
	List(ctx context.Context, offset, limit int) ([]domain.Manifest, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetRawDownloadURL(ctx context.Context, id uuid.UUID) (string, error)
	Interchange(m *domain.Manifest) (*edifact.Interchange, error)
	Sample() *domain.Manifest
}

type manifestService struct {
	manifestRepo port.ManifestRepository
	fileRepo     port.FileMetaRepository
	storage      port.ObjectStorage
	cfg          *config.S3Config
}

// NewManifestService creates a new ManifestService implementation.
func NewManifestService(
	manifestRepo port.ManifestRepository,
	fileRepo port.FileMetaRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) ManifestService {
	return &manifestService{
		manifestRepo: manifestRepo,
		fileRepo:     fileRepo,
		storage:      storage,
		cfg:          cfg,
	}
}

func (s *manifestService) DecodeUpload(ctx context.Context, input ManifestUploadInput) (*domain.Manifest, error) {
	// Validate file extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	// Validate file size
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	data, err := io.ReadAll(input.File)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	// Magic-byte check: interchanges are plain text regardless of extension
	detected := http.DetectContentType(head(data))
	if !strings.HasPrefix(detected, "text/plain") {
		return nil, domain.ErrNotPlainText
	}

	fileID := uuid.New()
	s3Key := fmt.Sprintf("interchanges/%s/%s", fileID, input.Header.Filename)

	meta := &domain.FileMeta{
		ID:           fileID,
		FileName:     fileID.String() + "." + ext,
		OriginalName: input.Header.Filename,
		FileType:     fileType,
		FileSize:     input.Header.Size,
		S3Bucket:     s.cfg.Bucket,
		S3Key:        s3Key,
		ContentType:  domain.InterchangeContentType,
		Status:       domain.FileStatusPending,
	}

	log.Printf("manifestService.DecodeUpload: uploading %s (%d bytes)",
		input.Header.Filename, input.Header.Size)

	if err := s.fileRepo.Create(ctx, meta); err != nil {
		log.Printf("manifestService.DecodeUpload: failed to create file metadata: %v", err)
		return nil, fmt.Errorf("creating file metadata: %w", err)
	}

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         s3Key,
		Body:        bytes.NewReader(data),
		ContentType: domain.InterchangeContentType,
		Size:        int64(len(data)),
	})
	if err != nil {
		log.Printf("manifestService.DecodeUpload: S3 upload failed for file %s: %v", meta.ID, err)
		_ = s.fileRepo.UpdateStatus(ctx, meta.ID, domain.FileStatusFailed)
		return nil, domain.ErrUploadFailed
	}

	if err := s.fileRepo.UpdateStatus(ctx, meta.ID, domain.FileStatusUploaded); err != nil {
		return nil, fmt.Errorf("updating file status: %w", err)
	}

	manifest, err := s.buildManifest(meta.ID, input.Header.Filename, string(data))
	if err != nil {
		return nil, err
	}
	if err := s.manifestRepo.Create(ctx, manifest); err != nil {
		log.Printf("manifestService.DecodeUpload: failed to persist manifest: %v", err)
		return nil, fmt.Errorf("creating manifest: %w", err)
	}

	log.Printf("manifestService.DecodeUpload: decoded %s as manifest %s (%d shipments, %d items)",
		input.Header.Filename, manifest.ID, manifest.ShipmentCount, manifest.ItemCount)
	return manifest, nil
}

// buildManifest decodes text and assembles the persistent record. Decoding
// never fails; a non-conforming file yields a sparse manifest flagged empty.
func (s *manifestService) buildManifest(fileID uuid.UUID, sourceName, text string) (*domain.Manifest, error) {
	ic := edifact.Decode(text)

	structured, err := json.Marshal(ic)
	if err != nil {
		return nil, fmt.Errorf("marshaling decoded interchange: %w", err)
	}

	items := 0
	for _, sh := range ic.Shipments {
		items += len(sh.Items)
	}

	status := domain.DecodeStatusDecoded
	if len(ic.Shipments) == 0 {
		status = domain.DecodeStatusEmpty
	}

	now := time.Now().UTC()
	return &domain.Manifest{
		ID:             uuid.New(),
		FileID:         fileID,
		SourceName:     sourceName,
		ManifestNumber: ic.Header.ManifestNumber,
		MessageType:    ic.Header.MessageType,
		Sender:         ic.Header.Sender,
		Receiver:       ic.Header.Receiver,
		Currency:       ic.Header.Currency,
		Warehouse:      ic.Header.Warehouse,
		ShipmentCount:  len(ic.Shipments),
		ItemCount:      items,
		StructuredData: structured,
		Status:         status,
		DecodedAt:      &now,
	}, nil
}

func (s *manifestService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Manifest, error) {
	return s.manifestRepo.GetByID(ctx, id)
}

func (s *manifestService) List(ctx context.Context, offset, limit int) ([]domain.Manifest, int, error) {
	return s.manifestRepo.List(ctx, offset, limit)
}

func (s *manifestService) Delete(ctx context.Context, id uuid.UUID) error {
	log.Printf("manifestService.Delete: deleting manifest %s", id)

	m, err := s.manifestRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	meta, err := s.fileRepo.GetByID(ctx, m.FileID)
	if err == nil {
		if err := s.storage.Delete(ctx, meta.S3Bucket, meta.S3Key); err != nil {
			log.Printf("manifestService.Delete: failed to delete from S3: %v", err)
			return fmt.Errorf("deleting from storage: %w", err)
		}
		if err := s.fileRepo.Delete(ctx, m.FileID); err != nil {
			return err
		}
	}

	return s.manifestRepo.Delete(ctx, id)
}

func (s *manifestService) GetRawDownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	m, err := s.manifestRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	meta, err := s.fileRepo.GetByID(ctx, m.FileID)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, meta.S3Bucket, meta.S3Key, s.cfg.PresignExpiry)
}

// Interchange rehydrates the decoded record stored with the manifest.
func (s *manifestService) Interchange(m *domain.Manifest) (*edifact.Interchange, error) {
	var ic edifact.Interchange
	if err := json.Unmarshal(m.StructuredData, &ic); err != nil {
		return nil, fmt.Errorf("unmarshaling manifest %s: %w", m.ID, err)
	}
	return &ic, nil
}

// Sample decodes the embedded reference interchange without persisting it.
func (s *manifestService) Sample() *domain.Manifest {
	m, err := s.buildManifest(uuid.Nil, sample.ReferenceName, sample.Reference())
	if err != nil {
		// The embedded interchange always marshals.
		log.Printf("manifestService.Sample: %v", err)
		return &domain.Manifest{SourceName: sample.ReferenceName}
	}
	m.ID = uuid.Nil
	return m
}

func head(data []byte) []byte {
	if len(data) > 512 {
		return data[:512]
	}
	return data
}
