package frames

import (
	"context"

	"artistic-unity/internal/catalog"
	"artistic-unity/internal/domain"
)

type readUseCase struct {
	catalog Catalog
}

func NewReadUseCase(cat Catalog) ReadUseCase {
	return &readUseCase{catalog: cat}
}

func frameDTO(f domain.Frame) FrameDTO {
	return FrameDTO{
		ID:             f.ID,
		Name:           f.Name,
		Category:       string(f.Category),
		Subtype:        string(f.Subtype),
		Description:    f.Description,
		Images:         f.Images,
		HasSpecialSize: f.HasSpecialSize(),
	}
}

func sizePriceDTOs(sizes []domain.SizePrice) []SizePriceDTO {
	out := make([]SizePriceDTO, 0, len(sizes))
	for _, sp := range sizes {
		out = append(out, SizePriceDTO{Size: sp.Size, Price: sp.Price})
	}
	return out
}

func (uc *readUseCase) ListFrames(ctx context.Context) (*ListFramesResponse, error) {
	all := uc.catalog.Frames()
	dtos := make([]FrameDTO, 0, len(all))
	for _, f := range all {
		dtos = append(dtos, frameDTO(f))
	}
	return &ListFramesResponse{Frames: dtos}, nil
}

func (uc *readUseCase) GetFrame(ctx context.Context, frameID string) (*FrameDTO, error) {
	f, err := uc.catalog.FrameByID(frameID)
	if err != nil {
		return nil, err
	}
	dto := frameDTO(f)
	return &dto, nil
}

func (uc *readUseCase) ListSizes(ctx context.Context, frameID string) (*FrameSizesResponse, error) {
	f, err := uc.catalog.FrameByID(frameID)
	if err != nil {
		return nil, err
	}

	resp := &FrameSizesResponse{
		FrameID:        f.ID,
		Sizes:          sizePriceDTOs(uc.catalog.AvailableSizes(f)),
		HasSpecialSize: f.HasSpecialSize(),
	}
	if resp.HasSpecialSize {
		// Lookup cannot fail here, the flag guarantees the entry exists.
		resp.SpecialPrice, _ = catalog.PriceFor(f, domain.SpecialSize)
	}
	return resp, nil
}

func (uc *readUseCase) ResolveCustomizations(ctx context.Context, frameID, size, orientation string) (*CustomizationsResponse, error) {
	f, err := uc.catalog.FrameByID(frameID)
	if err != nil {
		return nil, err
	}

	orient, ok := domain.ParseOrientation(orientation)
	if !ok && size != "" {
		orient = domain.OrientationOf(size)
	}

	images := uc.catalog.CustomizationImagesFor(f, size, orient)
	if images == nil {
		images = map[string][]string{}
	}

	return &CustomizationsResponse{
		FrameID:     f.ID,
		Size:        size,
		Orientation: string(orient),
		Images:      images,
	}, nil
}

func (uc *readUseCase) ResolveCollages(ctx context.Context, size, category string) (*CollagesResponse, error) {
	images := uc.catalog.CollageImagesFor(size, category)
	if images == nil {
		images = []string{}
	}
	return &CollagesResponse{
		Size:       size,
		Category:   category,
		Images:     images,
		Categories: uc.catalog.CollageCategories(),
		Sizes:      sizePriceDTOs(uc.catalog.CollageSizes()),
	}, nil
}
