package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "artistic-unity/internal/errors"
)

func testFrame() Frame {
	return Frame{
		ID:          "103",
		Name:        "Mount Frame",
		Category:    CategoryGeneral,
		Subtype:     SubtypeMount,
		Description: "A sleek general-style frame.",
		Prices: map[string]int{
			"10x12": 3000,
			"12x10": 3000,
		},
	}
}

func TestNewOrderDraft_StartsAtMinQuantity(t *testing.T) {
	draft := NewOrderDraft(testFrame())
	assert.Equal(t, MinQuantity, draft.Quantity)
}

func TestOrderDraft_QuantityNeverBelowOne(t *testing.T) {
	draft := NewOrderDraft(testFrame())

	for i := 0; i < 5; i++ {
		draft.DecrementQuantity()
	}
	assert.Equal(t, 1, draft.Quantity)

	draft.SetQuantity(-3)
	assert.Equal(t, 1, draft.Quantity)

	draft.SetQuantity(0)
	assert.Equal(t, 1, draft.Quantity)
}

func TestOrderDraft_IncrementThenDecrement(t *testing.T) {
	draft := NewOrderDraft(testFrame())

	draft.IncrementQuantity()
	draft.IncrementQuantity()
	assert.Equal(t, 3, draft.Quantity)

	draft.DecrementQuantity()
	assert.Equal(t, 2, draft.Quantity)
}

func makeImages(n int) []UploadedImage {
	images := make([]UploadedImage, n)
	for i := range images {
		images[i] = UploadedImage{Name: "photo.jpg", Type: "image/jpeg"}
	}
	return images
}

func TestOrderDraft_AttachImages_WithinCap(t *testing.T) {
	draft := NewOrderDraft(testFrame())

	err := draft.AttachImages(makeImages(8))
	assert.NoError(t, err)
	assert.Len(t, draft.Images, 8)
}

func TestOrderDraft_AttachImages_BatchRejectedWhole(t *testing.T) {
	draft := NewOrderDraft(testFrame())

	err := draft.AttachImages(makeImages(8))
	assert.NoError(t, err)

	// 8 + 5 exceeds the cap of 10: none of the second batch is accepted.
	err = draft.AttachImages(makeImages(5))
	assert.Error(t, err)
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
	assert.Len(t, draft.Images, 8)
}

func TestOrderDraft_AttachImages_ExactCap(t *testing.T) {
	draft := NewOrderDraft(testFrame())

	err := draft.AttachImages(makeImages(10))
	assert.NoError(t, err)
	assert.Len(t, draft.Images, 10)

	err = draft.AttachImages(makeImages(1))
	assert.Error(t, err)
	assert.Len(t, draft.Images, 10)
}

func TestOrderDraft_Assemble_NormalizesOptionalSelections(t *testing.T) {
	draft := NewOrderDraft(testFrame())
	draft.Size = "10x12"
	draft.SetQuantity(2)

	now := time.Date(2025, 6, 21, 15, 0, 0, 0, time.UTC)
	order := draft.Assemble(CustomerInfo{Name: "Ashen"}, 3000, OrderMetadata{OrderSource: "Website Purchase Form"}, now)

	assert.Equal(t, NotSelected, order.Collage.SelectedImage)
	assert.Equal(t, NotSelected, order.Collage.Category)
	assert.Equal(t, NotSelected, order.Customization.SelectedImage)
	assert.Equal(t, "Mount Frame", order.Customization.FrameType)
	assert.False(t, order.Summary.HasCollageSelected)
	assert.False(t, order.Summary.HasFrameDesignSelected)
	assert.Equal(t, now, order.Summary.OrderDate)
}

func TestOrderDraft_Assemble_TotalPrice(t *testing.T) {
	draft := NewOrderDraft(testFrame())
	draft.Size = "10x12"
	draft.SetQuantity(2)

	order := draft.Assemble(CustomerInfo{}, 3000, OrderMetadata{}, time.Now())

	assert.Equal(t, 3000, order.UnitPrice)
	assert.Equal(t, 6000, order.TotalPrice)
	assert.False(t, order.IsSpecialSize)
}

func TestOrderDraft_Assemble_SpecialSize(t *testing.T) {
	frame := testFrame()
	frame.Prices[SpecialSize] = 2500

	draft := NewOrderDraft(frame)
	draft.Size = SpecialSize

	order := draft.Assemble(CustomerInfo{}, 2500, OrderMetadata{}, time.Now())

	assert.True(t, order.IsSpecialSize)
	assert.Equal(t, 2500, order.UnitPrice)
	assert.Equal(t, 2500, order.TotalPrice)
}

func TestOrderDraft_Assemble_KeepsSelections(t *testing.T) {
	draft := NewOrderDraft(testFrame())
	draft.Size = "10x12"
	draft.Collage = CollageSelection{
		Size:          "10x12",
		Orientation:   OrientationPortrait,
		Category:      "Artistic collages",
		SelectedImage: "/images/Collage_Gallery/10 x 12/Artistic Collages/10x12.jpg",
	}
	draft.Customization = FrameCustomizationSelection{
		SelectedImage: "/images/frame_customization/Mount Frames/mount thin frames/10x12/portrait/1.png",
		FrameType:     "Mount Frame",
	}
	err := draft.AttachImages(makeImages(3))
	assert.NoError(t, err)

	order := draft.Assemble(CustomerInfo{}, 3000, OrderMetadata{}, time.Now())

	assert.True(t, order.Summary.HasCollageSelected)
	assert.True(t, order.Summary.HasFrameDesignSelected)
	assert.True(t, order.Summary.HasUserImages)
	assert.Equal(t, 3, order.Summary.UserImagesCount)
	assert.Equal(t, "Artistic collages", order.Collage.Category)
}
