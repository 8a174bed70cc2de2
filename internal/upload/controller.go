package upload

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"artistic-unity/internal/config"
	"artistic-unity/internal/dto"
	apperrors "artistic-unity/internal/errors"
)

type ImageIngestor interface {
	Ingest(ctx context.Context, files []IncomingFile) (Result, error)
}

type Controller struct {
	ingestor ImageIngestor
	cfg      config.UploadConfig
	logger   *zap.Logger
}

func NewController(ingestor ImageIngestor, cfg config.UploadConfig, logger *zap.Logger) *Controller {
	return &Controller{
		ingestor: ingestor,
		cfg:      cfg,
		logger:   logger,
	}
}

// HandleUpload accepts a multipart form with one or more "images" parts,
// runs them through the ingestor and returns the compressed results.
func (c *Controller) HandleUpload(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	r.Body = http.MaxBytesReader(w, r.Body, c.cfg.MaxRequestSize)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		logger.Warn("invalid multipart request", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid multipart request", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be multipart/form-data with image parts",
		})
		return
	}
	defer r.MultipartForm.RemoveAll()

	fileHeaders := r.MultipartForm.File["images"]
	files := make([]IncomingFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			logger.Warn("failed to open uploaded file", zap.String("name", fh.Filename), zap.Error(err))
			continue
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			logger.Warn("failed to read uploaded file", zap.String("name", fh.Filename), zap.Error(err))
			continue
		}
		files = append(files, IncomingFile{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	result, err := c.ingestor.Ingest(r.Context(), files)
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			c.writeValidationError(w, traceID, ve.Message, ve.Details...)
			return
		}
		logger.Error("image ingestion failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	uploaded := make([]dto.UploadedFileDTO, 0, len(result.Processed))
	for _, p := range result.Processed {
		uploaded = append(uploaded, dto.UploadedFileDTO{
			Name:         p.Name,
			Size:         p.Size,
			Type:         p.Type,
			Data:         p.Data,
			Preview:      p.Data,
			OriginalSize: p.OriginalSize,
		})
	}
	rejected := make([]dto.RejectedFileDTO, 0, len(result.Rejected))
	for _, rej := range result.Rejected {
		rejected = append(rejected, dto.RejectedFileDTO{
			Name:   rej.Name,
			Reason: rej.Reason,
		})
	}

	response := dto.UploadResponse{
		TraceID: traceID,
		Message: fmt.Sprintf("%d image(s) uploaded and compressed (%s%% size reduction)",
			len(uploaded), result.CompressionPercent),
		Uploaded:           uploaded,
		Rejected:           rejected,
		CompressionPercent: result.CompressionPercent,
	}

	c.writeJSON(w, http.StatusOK, response)
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, traceID string, message string, details ...apperrors.ValidationDetail) {
	response := validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	}

	c.writeJSON(w, http.StatusBadRequest, response)
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
