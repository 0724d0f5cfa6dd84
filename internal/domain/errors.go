package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrNotPlainText        = errors.New("file content is not plain text")
	ErrUploadFailed        = errors.New("file upload to storage failed")
)
