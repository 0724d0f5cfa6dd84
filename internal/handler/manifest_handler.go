package handler

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"maniflow/internal/csvexport"
	"maniflow/internal/domain"
	"maniflow/internal/edifact"
	"maniflow/internal/service"
	"maniflow/internal/xlsxexport"
)

// ManifestHandler handles interchange upload, decoding, and export endpoints.
type ManifestHandler struct {
	manifestService service.ManifestService
}

// NewManifestHandler creates a new ManifestHandler.
func NewManifestHandler(manifestService service.ManifestService) *ManifestHandler {
	return &ManifestHandler{manifestService: manifestService}
}

// Decode handles POST /api/v1/manifests/decode
// @Summary Decode an interchange file
// @Description Upload an EDIFACT IFTMIN file (.edi or .txt, max 10MB), store the raw file, and persist the decoded manifest
// @Tags manifests
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Interchange file (.edi or .txt)"
// @Success 201 {object} APIResponse{data=domain.Manifest} "Decoded manifest"
// @Failure 400 {object} APIResponse "Missing file, unsupported type, or not plain text"
// @Failure 413 {object} APIResponse "File too large"
// @Failure 500 {object} APIResponse "Upload failed"
// @Router /manifests/decode [post]
func (h *ManifestHandler) Decode(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	m, err := h.manifestService.DecodeUpload(c.Request.Context(), service.ManifestUploadInput{
		File:   file,
		Header: header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, m)
}

// List handles GET /api/v1/manifests
// @Summary List manifests
// @Description List decoded manifests with pagination, newest first
// @Tags manifests
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} APIResponse{data=[]domain.Manifest,meta=PagMeta} "List of manifests"
// @Router /manifests [get]
func (h *ManifestHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	manifests, total, err := h.manifestService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, manifests, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/manifests/:id
// @Summary Get manifest by ID
// @Description Get a manifest with its full decoded interchange
// @Tags manifests
// @Produce json
// @Param id path string true "Manifest ID (UUID)"
// @Success 200 {object} APIResponse "Manifest with decoded interchange"
// @Failure 400 {object} APIResponse "Invalid ID"
// @Failure 404 {object} APIResponse "Manifest not found"
// @Router /manifests/{id} [get]
func (h *ManifestHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid manifest ID")
		return
	}

	m, err := h.manifestService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	ic, err := h.manifestService.Interchange(m)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"manifest":    m,
		"interchange": ic,
	})
}

// Delete handles DELETE /api/v1/manifests/:id
// @Summary Delete a manifest
// @Description Delete a manifest, its file metadata, and the stored raw file
// @Tags manifests
// @Produce json
// @Param id path string true "Manifest ID (UUID)"
// @Success 200 {object} APIResponse "Manifest deleted"
// @Failure 400 {object} APIResponse "Invalid ID"
// @Failure 404 {object} APIResponse "Manifest not found"
// @Router /manifests/{id} [delete]
func (h *ManifestHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid manifest ID")
		return
	}

	if err := h.manifestService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "manifest deleted"})
}

// RawDownloadURL handles GET /api/v1/manifests/:id/raw
// @Summary Get raw file download URL
// @Description Get a presigned URL for the stored raw interchange file
// @Tags manifests
// @Produce json
// @Param id path string true "Manifest ID (UUID)"
// @Success 200 {object} APIResponse "Presigned download URL"
// @Failure 400 {object} APIResponse "Invalid ID"
// @Failure 404 {object} APIResponse "Manifest not found"
// @Router /manifests/{id}/raw [get]
func (h *ManifestHandler) RawDownloadURL(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid manifest ID")
		return
	}

	url, err := h.manifestService.GetRawDownloadURL(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"download_url": url})
}

// ExportCSV handles GET /api/v1/manifests/:id/export/csv
// @Summary Export manifest as CSV
// @Description Download the flattened shipment/item rows as a BOM-prefixed CSV file
// @Tags manifests
// @Produce text/csv
// @Param id path string true "Manifest ID (UUID)"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} APIResponse "Invalid ID"
// @Failure 404 {object} APIResponse "Manifest not found"
// @Router /manifests/{id}/export/csv [get]
func (h *ManifestHandler) ExportCSV(c *gin.Context) {
	m, ic, ok := h.loadInterchange(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	buf.Write(csvexport.BOM)
	w := csvexport.NewShipmentWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		HandleError(c, err)
		return
	}
	if err := w.WriteInterchange(m.SourceName, ic); err != nil {
		HandleError(c, err)
		return
	}
	w.Flush()
	if err := w.Error(); err != nil {
		HandleError(c, err)
		return
	}

	filename := exportFilename(m, "csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportXLSX handles GET /api/v1/manifests/:id/export/xlsx
// @Summary Export manifest as Excel workbook
// @Description Download the manifest as an xlsx workbook with Summary and Shipments sheets
// @Tags manifests
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Manifest ID (UUID)"
// @Success 200 {string} string "Excel workbook"
// @Failure 400 {object} APIResponse "Invalid ID"
// @Failure 404 {object} APIResponse "Manifest not found"
// @Router /manifests/{id}/export/xlsx [get]
func (h *ManifestHandler) ExportXLSX(c *gin.Context) {
	m, ic, ok := h.loadInterchange(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	err := xlsxexport.Write(&buf, []xlsxexport.DecodedFile{
		{Name: m.SourceName, Interchange: ic},
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := exportFilename(m, "xlsx")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// Sample handles GET /api/v1/manifests/sample
// @Summary Decode the built-in sample interchange
// @Description Decode the embedded reference interchange without persisting anything
// @Tags manifests
// @Produce json
// @Success 200 {object} APIResponse "Sample manifest with decoded interchange"
// @Router /manifests/sample [get]
func (h *ManifestHandler) Sample(c *gin.Context) {
	m := h.manifestService.Sample()
	ic, err := h.manifestService.Interchange(m)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"manifest":    m,
		"interchange": ic,
	})
}

func (h *ManifestHandler) loadInterchange(c *gin.Context) (*domain.Manifest, *edifact.Interchange, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid manifest ID")
		return nil, nil, false
	}

	m, err := h.manifestService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return nil, nil, false
	}

	ic, err := h.manifestService.Interchange(m)
	if err != nil {
		HandleError(c, err)
		return nil, nil, false
	}
	return m, ic, true
}

func exportFilename(m *domain.Manifest, ext string) string {
	base := m.ManifestNumber
	if base == "" {
		base = strings.TrimSuffix(m.SourceName, ".edi")
		base = strings.TrimSuffix(base, ".txt")
	}
	if base == "" {
		base = "manifest"
	}
	base = strings.ReplaceAll(base, " ", "_")
	return base + "_" + time.Now().Format("20060102_150405") + "." + ext
}
