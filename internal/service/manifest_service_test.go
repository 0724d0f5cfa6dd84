package service_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"maniflow/internal/config"
	"maniflow/internal/domain"
	"maniflow/internal/port"
	"maniflow/internal/service"
	"maniflow/mocks"
)

const interchangeText = "UNB+UNOC:3+5450534000000:14+8719333000008:14+251013:0023+6617'" +
	"UNH+1+IFTMIN:D:99B:UN'" +
	"BGM+87+2025101301+9'" +
	"CUX+2:EUR'" +
	"GID+1+1:PK'" +
	"PCI+24+1.0:EA:528.0'" +
	"RFF+VP:SKU-1'"

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func uploadInput(name string, data []byte) service.ManifestUploadInput {
	return service.ManifestUploadInput{
		File:   memFile{bytes.NewReader(data)},
		Header: &multipart.FileHeader{Filename: name, Size: int64(len(data))},
	}
}

func s3Config() *config.S3Config {
	return &config.S3Config{
		Bucket:        "maniflow-interchanges",
		MaxFileSizeMB: 10,
		PresignExpiry: 3600,
	}
}

func newService(t *testing.T) (service.ManifestService, *mocks.MockManifestRepo, *mocks.MockFileMetaRepo, *mocks.MockObjectStorage) {
	t.Helper()
	manifestRepo := new(mocks.MockManifestRepo)
	fileRepo := new(mocks.MockFileMetaRepo)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewManifestService(manifestRepo, fileRepo, storage, s3Config())
	return svc, manifestRepo, fileRepo, storage
}

func TestDecodeUpload(t *testing.T) {
	svc, manifestRepo, fileRepo, storage := newService(t)

	fileRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.FileMeta")).Return(nil)
	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(&port.UploadOutput{Location: "s3://x"}, nil)
	fileRepo.On("UpdateStatus", mock.Anything, mock.Anything, domain.FileStatusUploaded).Return(nil)
	manifestRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Manifest")).Return(nil)

	m, err := svc.DecodeUpload(context.Background(), uploadInput("manifest.edi", []byte(interchangeText)))
	require.NoError(t, err)

	assert.Equal(t, "manifest.edi", m.SourceName)
	assert.Equal(t, "2025101301", m.ManifestNumber)
	assert.Equal(t, "IFTMIN:D:99B:UN", m.MessageType)
	assert.Equal(t, "5450534000000", m.Sender)
	assert.Equal(t, "EUR", m.Currency)
	assert.Equal(t, 1, m.ShipmentCount)
	assert.Equal(t, 1, m.ItemCount)
	assert.Equal(t, domain.DecodeStatusDecoded, m.Status)
	require.NotNil(t, m.DecodedAt)
	assert.NotEmpty(t, m.StructuredData)

	manifestRepo.AssertExpectations(t)
	fileRepo.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestDecodeUploadNonConformingStillPersists(t *testing.T) {
	svc, manifestRepo, fileRepo, storage := newService(t)

	fileRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	storage.On("Upload", mock.Anything, mock.Anything).Return(&port.UploadOutput{}, nil)
	fileRepo.On("UpdateStatus", mock.Anything, mock.Anything, domain.FileStatusUploaded).Return(nil)
	manifestRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	m, err := svc.DecodeUpload(context.Background(), uploadInput("junk.txt", []byte("just some plain text")))
	require.NoError(t, err)

	assert.Equal(t, 0, m.ShipmentCount)
	assert.Equal(t, domain.DecodeStatusEmpty, m.Status)
}

func TestDecodeUploadUnsupportedExtension(t *testing.T) {
	svc, _, _, _ := newService(t)

	_, err := svc.DecodeUpload(context.Background(), uploadInput("manifest.pdf", []byte(interchangeText)))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestDecodeUploadTooLarge(t *testing.T) {
	svc, _, _, _ := newService(t)

	input := uploadInput("manifest.edi", []byte(interchangeText))
	input.Header.Size = 11 * 1024 * 1024
	_, err := svc.DecodeUpload(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestDecodeUploadBinaryRejected(t *testing.T) {
	svc, _, _, _ := newService(t)

	png := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	_, err := svc.DecodeUpload(context.Background(), uploadInput("manifest.edi", png))
	assert.ErrorIs(t, err, domain.ErrNotPlainText)
}

func TestDecodeUploadStorageFailure(t *testing.T) {
	svc, _, fileRepo, storage := newService(t)

	fileRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	storage.On("Upload", mock.Anything, mock.Anything).Return(nil, assert.AnError)
	fileRepo.On("UpdateStatus", mock.Anything, mock.Anything, domain.FileStatusFailed).Return(nil)

	_, err := svc.DecodeUpload(context.Background(), uploadInput("manifest.edi", []byte(interchangeText)))
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	fileRepo.AssertExpectations(t)
}

func TestDelete(t *testing.T) {
	svc, manifestRepo, fileRepo, storage := newService(t)

	id := uuid.New()
	fileID := uuid.New()
	manifestRepo.On("GetByID", mock.Anything, id).
		Return(&domain.Manifest{ID: id, FileID: fileID}, nil)
	fileRepo.On("GetByID", mock.Anything, fileID).
		Return(&domain.FileMeta{ID: fileID, S3Bucket: "b", S3Key: "k"}, nil)
	storage.On("Delete", mock.Anything, "b", "k").Return(nil)
	fileRepo.On("Delete", mock.Anything, fileID).Return(nil)
	manifestRepo.On("Delete", mock.Anything, id).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), id))
	manifestRepo.AssertExpectations(t)
	fileRepo.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestDeleteWithoutFileMeta(t *testing.T) {
	svc, manifestRepo, fileRepo, storage := newService(t)

	id := uuid.New()
	manifestRepo.On("GetByID", mock.Anything, id).
		Return(&domain.Manifest{ID: id, FileID: uuid.New()}, nil)
	fileRepo.On("GetByID", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
	manifestRepo.On("Delete", mock.Anything, id).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), id))
	storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteNotFound(t *testing.T) {
	svc, manifestRepo, _, _ := newService(t)

	id := uuid.New()
	manifestRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), id), domain.ErrNotFound)
}

func TestGetRawDownloadURL(t *testing.T) {
	svc, manifestRepo, fileRepo, storage := newService(t)

	id := uuid.New()
	fileID := uuid.New()
	manifestRepo.On("GetByID", mock.Anything, id).
		Return(&domain.Manifest{ID: id, FileID: fileID}, nil)
	fileRepo.On("GetByID", mock.Anything, fileID).
		Return(&domain.FileMeta{ID: fileID, S3Bucket: "b", S3Key: "k"}, nil)
	storage.On("GetPresignedURL", mock.Anything, "b", "k", int64(3600)).
		Return("https://signed.example/k", nil)

	url, err := svc.GetRawDownloadURL(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "https://signed.example/k", url)
}

func TestSampleAndInterchangeRoundTrip(t *testing.T) {
	svc, _, _, _ := newService(t)

	m := svc.Sample()
	require.NotNil(t, m)
	assert.Equal(t, "reference.edi", m.SourceName)
	assert.Equal(t, 2, m.ShipmentCount)
	assert.Equal(t, 6, m.ItemCount)
	assert.Equal(t, domain.DecodeStatusDecoded, m.Status)

	ic, err := svc.Interchange(m)
	require.NoError(t, err)
	require.Len(t, ic.Shipments, 2)
	assert.Equal(t, "IFTMIN:D:01A:UN:EAN008", ic.Header.MessageType)
}
