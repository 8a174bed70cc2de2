package upload

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"go.uber.org/zap"

	"artistic-unity/internal/config"
	apperrors "artistic-unity/internal/errors"
)

func testUploadConfig() config.UploadConfig {
	return config.UploadConfig{
		MaxFiles:     10,
		MaxFileBytes: 5 * 1024 * 1024,
		MaxDimension: 1200,
		JPEGQuality:  80,
	}
}

func newTestIngestor(t *testing.T) *Ingestor {
	t.Helper()
	return NewIngestor(testUploadConfig(), zap.NewNop())
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test png: %v", err)
	}
	return buf.Bytes()
}

func jpegBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("failed to encode test jpeg: %v", err)
	}
	return buf.Bytes()
}

func TestIngestConvertsToJPEG(t *testing.T) {
	ing := newTestIngestor(t)

	result, err := ing.Ingest(context.Background(), []IncomingFile{
		{Name: "photo.png", ContentType: "image/png", Data: pngBytes(t, 100, 80)},
	})
	if err != nil {
		t.Fatalf("Ingest returned error: %v", err)
	}
	if len(result.Processed) != 1 {
		t.Fatalf("expected 1 processed file, got %d", len(result.Processed))
	}

	p := result.Processed[0]
	if p.Type != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %q", p.Type)
	}
	if p.Name != "photo.jpg" {
		t.Errorf("expected photo.jpg, got %q", p.Name)
	}
	if !strings.HasPrefix(p.Data, "data:image/jpeg;base64,") {
		t.Errorf("data is not a jpeg data URL: %q", p.Data[:40])
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(p.Data, "data:image/jpeg;base64,"))
	if err != nil {
		t.Fatalf("data URL payload is not valid base64: %v", err)
	}
	if _, err := jpeg.Decode(bytes.NewReader(raw)); err != nil {
		t.Errorf("payload is not a decodable JPEG: %v", err)
	}
	if p.Size != int64(len(raw)) {
		t.Errorf("reported size %d does not match payload length %d", p.Size, len(raw))
	}
}

func TestIngestResizesLargeImages(t *testing.T) {
	ing := newTestIngestor(t)

	result, err := ing.Ingest(context.Background(), []IncomingFile{
		{Name: "wide.jpg", ContentType: "image/jpeg", Data: jpegBytes(t, 2400, 1200)},
	})
	if err != nil {
		t.Fatalf("Ingest returned error: %v", err)
	}
	if len(result.Processed) != 1 {
		t.Fatalf("expected 1 processed file, got %d", len(result.Processed))
	}

	raw, _ := base64.StdEncoding.DecodeString(strings.TrimPrefix(result.Processed[0].Data, "data:image/jpeg;base64,"))
	img, err := jpeg.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("failed to decode processed image: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 1200 {
		t.Errorf("expected width 1200, got %d", bounds.Dx())
	}
	if bounds.Dy() != 600 {
		t.Errorf("expected height 600, got %d", bounds.Dy())
	}
}

func TestIngestKeepsSmallImageDimensions(t *testing.T) {
	ing := newTestIngestor(t)

	result, err := ing.Ingest(context.Background(), []IncomingFile{
		{Name: "small.jpg", ContentType: "image/jpeg", Data: jpegBytes(t, 300, 200)},
	})
	if err != nil {
		t.Fatalf("Ingest returned error: %v", err)
	}

	raw, _ := base64.StdEncoding.DecodeString(strings.TrimPrefix(result.Processed[0].Data, "data:image/jpeg;base64,"))
	img, err := jpeg.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("failed to decode processed image: %v", err)
	}
	if img.Bounds().Dx() != 300 || img.Bounds().Dy() != 200 {
		t.Errorf("small image should keep its dimensions, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestIngestRejectsDisallowedType(t *testing.T) {
	ing := newTestIngestor(t)

	result, err := ing.Ingest(context.Background(), []IncomingFile{
		{Name: "notes.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4")},
		{Name: "photo.png", ContentType: "image/png", Data: pngBytes(t, 50, 50)},
	})
	if err != nil {
		t.Fatalf("Ingest returned error: %v", err)
	}
	if len(result.Processed) != 1 {
		t.Errorf("expected 1 processed file, got %d", len(result.Processed))
	}
	if len(result.Rejected) != 1 {
		t.Fatalf("expected 1 rejected file, got %d", len(result.Rejected))
	}
	if result.Rejected[0].Name != "notes.pdf" {
		t.Errorf("unexpected rejected file: %q", result.Rejected[0].Name)
	}
}

func TestIngestRejectsOversizedFile(t *testing.T) {
	cfg := testUploadConfig()
	cfg.MaxFileBytes = 1024
	ing := NewIngestor(cfg, zap.NewNop())

	result, err := ing.Ingest(context.Background(), []IncomingFile{
		{Name: "big.png", ContentType: "image/png", Data: pngBytes(t, 200, 200)},
	})
	if err != nil {
		t.Fatalf("Ingest returned error: %v", err)
	}
	if len(result.Rejected) != 1 {
		t.Fatalf("expected 1 rejected file, got %d", len(result.Rejected))
	}
	if !strings.Contains(result.Rejected[0].Reason, "size limit") {
		t.Errorf("unexpected rejection reason: %q", result.Rejected[0].Reason)
	}
}

func TestIngestRejectsCorruptImage(t *testing.T) {
	ing := newTestIngestor(t)

	result, err := ing.Ingest(context.Background(), []IncomingFile{
		{Name: "broken.jpg", ContentType: "image/jpeg", Data: []byte("definitely not a jpeg")},
	})
	if err != nil {
		t.Fatalf("Ingest returned error: %v", err)
	}
	if len(result.Processed) != 0 {
		t.Errorf("expected no processed files, got %d", len(result.Processed))
	}
	if len(result.Rejected) != 1 {
		t.Fatalf("expected 1 rejected file, got %d", len(result.Rejected))
	}
}

func TestIngestRejectsBatchOverCap(t *testing.T) {
	ing := newTestIngestor(t)

	data := pngBytes(t, 10, 10)
	files := make([]IncomingFile, 11)
	for i := range files {
		files[i] = IncomingFile{Name: "img.png", ContentType: "image/png", Data: data}
	}

	_, err := ing.Ingest(context.Background(), files)
	if _, ok := apperrors.IsValidationError(err); !ok {
		t.Fatalf("expected validation error for oversized batch, got %v", err)
	}
}

func TestIngestRejectsEmptyBatch(t *testing.T) {
	ing := newTestIngestor(t)

	_, err := ing.Ingest(context.Background(), nil)
	if _, ok := apperrors.IsValidationError(err); !ok {
		t.Fatalf("expected validation error for empty batch, got %v", err)
	}
}

func TestCompressionPercent(t *testing.T) {
	if got := compressionPercent(1000, 250); got != "75.0" {
		t.Errorf("expected 75.0, got %q", got)
	}
	if got := compressionPercent(0, 0); got != "0.0" {
		t.Errorf("expected 0.0 for empty batch, got %q", got)
	}
	if got := compressionPercent(100, 150); got != "0.0" {
		t.Errorf("growth should clamp to 0.0, got %q", got)
	}
}
