package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// FileMeta represents one uploaded raw interchange file.
type FileMeta struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	FileName     string     `db:"file_name" json:"file_name"`
	OriginalName string     `db:"original_name" json:"original_name"`
	FileType     FileType   `db:"file_type" json:"file_type"`
	FileSize     int64      `db:"file_size" json:"file_size"`
	S3Bucket     string     `db:"s3_bucket" json:"s3_bucket"`
	S3Key        string     `db:"s3_key" json:"s3_key"`
	ContentType  string     `db:"content_type" json:"content_type"`
	Status       FileStatus `db:"status" json:"status"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// Manifest represents one decoded IFTMIN interchange. The full decoded
// record (header, counts, parties, shipments, items) lives in
// StructuredData; the flat columns are denormalized for listing and search.
// Decoding is best-effort, so a manifest always exists once its file is
// accepted; a non-conforming file simply yields a sparse record.
type Manifest struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	FileID         uuid.UUID       `db:"file_id" json:"file_id"`
	SourceName     string          `db:"source_name" json:"source_name"`
	ManifestNumber string          `db:"manifest_number" json:"manifest_number"`
	MessageType    string          `db:"message_type" json:"message_type"`
	Sender         string          `db:"sender" json:"sender"`
	Receiver       string          `db:"receiver" json:"receiver"`
	Currency       string          `db:"currency" json:"currency"`
	Warehouse      string          `db:"warehouse" json:"warehouse"`
	ShipmentCount  int             `db:"shipment_count" json:"shipment_count"`
	ItemCount      int             `db:"item_count" json:"item_count"`
	StructuredData json.RawMessage `db:"structured_data" json:"structured_data"`
	Status         DecodeStatus    `db:"status" json:"status"`
	DecodedAt      *time.Time      `db:"decoded_at" json:"decoded_at"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}
