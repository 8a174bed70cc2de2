package domain

import (
	"fmt"
	"time"

	apperrors "artistic-unity/internal/errors"
)

const (
	MinQuantity       = 1
	MaxUploadedImages = 10
)

// OrderDraft is the mutable configuration state a submission is assembled
// from. Its mutators uphold two invariants: quantity can never be observed
// below MinQuantity, and an image batch that would push the total past
// MaxUploadedImages is rejected whole.
type OrderDraft struct {
	Frame         Frame
	Size          string
	Quantity      int
	Collage       CollageSelection
	Customization FrameCustomizationSelection
	Images        []UploadedImage
}

func NewOrderDraft(frame Frame) *OrderDraft {
	return &OrderDraft{
		Frame:    frame,
		Quantity: MinQuantity,
	}
}

func (d *OrderDraft) SetQuantity(quantity int) {
	if quantity < MinQuantity {
		quantity = MinQuantity
	}
	d.Quantity = quantity
}

func (d *OrderDraft) IncrementQuantity() {
	d.SetQuantity(d.Quantity + 1)
}

func (d *OrderDraft) DecrementQuantity() {
	d.SetQuantity(d.Quantity - 1)
}

// AttachImages accepts a batch in full or not at all.
func (d *OrderDraft) AttachImages(batch []UploadedImage) error {
	if len(d.Images)+len(batch) > MaxUploadedImages {
		return apperrors.NewValidationError(
			fmt.Sprintf("you can upload maximum %d images", MaxUploadedImages),
			apperrors.ValidationDetail{
				Field:   "userImages",
				Message: fmt.Sprintf("attaching %d images would exceed the maximum of %d", len(batch), MaxUploadedImages),
			},
		)
	}
	d.Images = append(d.Images, batch...)
	return nil
}

// Assemble freezes the draft into an Order. Optional selections collapse to
// the NotSelected marker and the total is unitPrice times quantity.
func (d *OrderDraft) Assemble(customer CustomerInfo, unitPrice int, meta OrderMetadata, now time.Time) Order {
	collage := d.Collage
	if collage.Category == "" {
		collage.Category = NotSelected
	}
	if collage.SelectedImage == "" {
		collage.SelectedImage = NotSelected
	}

	customization := d.Customization
	if customization.SelectedImage == "" {
		customization.SelectedImage = NotSelected
	}
	if customization.FrameType == "" {
		customization.FrameType = d.Frame.Name
	}

	return Order{
		Customer: customer,
		Frame: FrameRef{
			ID:          d.Frame.ID,
			Name:        d.Frame.Name,
			Category:    d.Frame.Category,
			Description: d.Frame.Description,
		},
		Size:          d.Size,
		IsSpecialSize: d.Size == SpecialSize,
		UnitPrice:     unitPrice,
		Quantity:      d.Quantity,
		TotalPrice:    unitPrice * d.Quantity,
		Collage:       collage,
		Customization: customization,
		Images:        d.Images,
		Summary: OrderSummary{
			FrameType:              d.Frame.Name,
			FrameCategory:          d.Frame.Category,
			CollageSize:            collage.Size,
			CollageOrientation:     collage.Orientation,
			CollageCategory:        collage.Category,
			HasCollageSelected:     collage.SelectedImage != NotSelected,
			HasFrameDesignSelected: customization.SelectedImage != NotSelected,
			HasUserImages:          len(d.Images) > 0,
			UserImagesCount:        len(d.Images),
			OrderDate:              now,
		},
		Metadata: meta,
	}
}
