package frames

import (
	"context"

	"artistic-unity/internal/domain"
)

type ReadUseCase interface {
	ListFrames(ctx context.Context) (*ListFramesResponse, error)
	GetFrame(ctx context.Context, frameID string) (*FrameDTO, error)
	ListSizes(ctx context.Context, frameID string) (*FrameSizesResponse, error)
	ResolveCustomizations(ctx context.Context, frameID, size, orientation string) (*CustomizationsResponse, error)
	ResolveCollages(ctx context.Context, size, category string) (*CollagesResponse, error)
}

// Catalog is the read surface the frames module needs from the loaded
// catalog.
type Catalog interface {
	Frames() []domain.Frame
	FrameByID(id string) (domain.Frame, error)
	AvailableSizes(frame domain.Frame) []domain.SizePrice
	CollageCategories() []string
	CollageSizes() []domain.SizePrice
	CollageImagesFor(size, category string) []string
	CustomizationImagesFor(frame domain.Frame, collageSize string, orientation domain.Orientation) map[string][]string
}
