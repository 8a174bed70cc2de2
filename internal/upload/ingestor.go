package upload

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"strings"
	"sync"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"

	"artistic-unity/internal/config"
	apperrors "artistic-unity/internal/errors"
)

var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// IncomingFile is one file pulled out of the multipart request.
type IncomingFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ProcessedFile is a compressed image ready to be attached to an order.
// Data carries the JPEG payload as a base64 data URL.
type ProcessedFile struct {
	Name         string
	Size         int64
	Type         string
	Data         string
	OriginalSize int64
}

type RejectedFile struct {
	Name   string
	Reason string
}

type Result struct {
	Processed          []ProcessedFile
	Rejected           []RejectedFile
	CompressionPercent string
}

// Ingestor validates and compresses customer images. Every accepted image
// is re-encoded as JPEG regardless of its source format, resized so its
// longest edge does not exceed the configured maximum.
type Ingestor struct {
	cfg    config.UploadConfig
	logger *zap.Logger
}

func NewIngestor(cfg config.UploadConfig, logger *zap.Logger) *Ingestor {
	return &Ingestor{
		cfg:    cfg,
		logger: logger,
	}
}

// Ingest processes a batch of files. A batch larger than the configured
// file cap is rejected outright; within an accepted batch each file is
// validated and compressed independently, so one bad file only produces a
// rejection entry rather than failing the request.
func (ing *Ingestor) Ingest(ctx context.Context, files []IncomingFile) (Result, error) {
	if len(files) == 0 {
		return Result{}, apperrors.NewValidationError("no files provided", apperrors.ValidationDetail{
			Field:   "images",
			Message: "at least one image is required",
		})
	}
	if len(files) > ing.cfg.MaxFiles {
		return Result{}, apperrors.NewValidationError(
			fmt.Sprintf("you can upload maximum %d images", ing.cfg.MaxFiles),
			apperrors.ValidationDetail{
				Field:   "images",
				Message: fmt.Sprintf("received %d files, maximum is %d", len(files), ing.cfg.MaxFiles),
			},
		)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	type slot struct {
		processed *ProcessedFile
		rejected  *RejectedFile
	}
	slots := make([]slot, len(files))

	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(i int, f IncomingFile) {
			defer wg.Done()
			if reason := ing.validate(f); reason != "" {
				slots[i].rejected = &RejectedFile{Name: f.Name, Reason: reason}
				return
			}
			processed, err := ing.compress(f)
			if err != nil {
				ing.logger.Warn("image compression failed",
					zap.String("name", f.Name),
					zap.Error(err))
				slots[i].rejected = &RejectedFile{Name: f.Name, Reason: "file could not be processed as an image"}
				return
			}
			slots[i].processed = &processed
		}(i, f)
	}
	wg.Wait()

	var result Result
	var originalTotal, compressedTotal int64
	for _, s := range slots {
		if s.processed != nil {
			result.Processed = append(result.Processed, *s.processed)
			originalTotal += s.processed.OriginalSize
			compressedTotal += s.processed.Size
		}
		if s.rejected != nil {
			result.Rejected = append(result.Rejected, *s.rejected)
		}
	}

	result.CompressionPercent = compressionPercent(originalTotal, compressedTotal)

	ing.logger.Info("image batch ingested",
		zap.Int("accepted", len(result.Processed)),
		zap.Int("rejected", len(result.Rejected)),
		zap.String("compression", result.CompressionPercent))

	return result, nil
}

func (ing *Ingestor) validate(f IncomingFile) string {
	contentType := strings.ToLower(strings.TrimSpace(f.ContentType))
	if _, ok := allowedTypes[contentType]; !ok {
		return "unsupported file type, allowed: JPEG, PNG, GIF, WebP"
	}
	if int64(len(f.Data)) > ing.cfg.MaxFileBytes {
		return fmt.Sprintf("file exceeds the %dMB size limit", ing.cfg.MaxFileBytes/(1024*1024))
	}
	if len(f.Data) == 0 {
		return "file is empty"
	}
	return ""
}

func (ing *Ingestor) compress(f IncomingFile) (ProcessedFile, error) {
	img, _, err := image.Decode(bytes.NewReader(f.Data))
	if err != nil {
		return ProcessedFile{}, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	maxDim := ing.cfg.MaxDimension

	resized := img
	if width > maxDim || height > maxDim {
		if width > height {
			resized = imaging.Resize(img, maxDim, 0, imaging.Lanczos)
		} else {
			resized = imaging.Resize(img, 0, maxDim, imaging.Lanczos)
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: ing.cfg.JPEGQuality}); err != nil {
		return ProcessedFile{}, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	encoded := buf.Bytes()
	return ProcessedFile{
		Name:         jpegName(f.Name),
		Size:         int64(len(encoded)),
		Type:         "image/jpeg",
		Data:         "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(encoded),
		OriginalSize: int64(len(f.Data)),
	}, nil
}

// jpegName swaps the original extension for .jpg, since every processed
// file is re-encoded as JPEG.
func jpegName(name string) string {
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name + ".jpg"
}

func compressionPercent(originalTotal, compressedTotal int64) string {
	if originalTotal <= 0 {
		return "0.0"
	}
	ratio := float64(originalTotal-compressedTotal) / float64(originalTotal) * 100
	if ratio < 0 {
		ratio = 0
	}
	return fmt.Sprintf("%.1f", ratio)
}
