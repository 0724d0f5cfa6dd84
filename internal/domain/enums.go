package domain

// FileType represents the allowed file types for upload.
type FileType string

const (
	FileTypeEDI FileType = "edi"
	FileTypeTXT FileType = "txt"
)

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"edi": FileTypeEDI,
	"txt": FileTypeTXT,
}

// Interchange files are plain text on the wire regardless of extension.
const InterchangeContentType = "text/plain; charset=utf-8"

// FileStatus represents the lifecycle of an uploaded file.
type FileStatus string

const (
	FileStatusPending  FileStatus = "pending"
	FileStatusUploaded FileStatus = "uploaded"
	FileStatusFailed   FileStatus = "failed"
	FileStatusDeleted  FileStatus = "deleted"
)

// DecodeStatus classifies a decode outcome. Decoding never fails outright;
// an interchange without a single shipment group is flagged empty so
// operators can spot non-conforming feeds in listings.
type DecodeStatus string

const (
	DecodeStatusDecoded DecodeStatus = "decoded"
	DecodeStatusEmpty   DecodeStatus = "empty"
)
