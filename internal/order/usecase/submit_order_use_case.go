package usecase

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"artistic-unity/internal/catalog"
	"artistic-unity/internal/domain"
	"artistic-unity/internal/dto"
)

// Catalog resolves frames for order submission. Pricing itself is a pure
// lookup on the frame's price table and does not need the full catalog.
type Catalog interface {
	FrameByID(id string) (domain.Frame, error)
}

// OrderNotifier dispatches the owner and customer emails for an order.
type OrderNotifier interface {
	NotifyOrder(ctx context.Context, order domain.Order, orderNumber string) error
}

type SubmitOrderUseCase struct {
	catalog  Catalog
	notifier OrderNotifier
	logger   *zap.Logger
	now      func() time.Time
}

func NewSubmitOrderUseCase(cat Catalog, notifier OrderNotifier, logger *zap.Logger) *SubmitOrderUseCase {
	return &SubmitOrderUseCase{
		catalog:  cat,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Execute validates the submission against the catalog, assembles the order
// and hands it to the notifier. The quoted prices from the client are
// discarded: unit and total price are always recomputed server side.
func (uc *SubmitOrderUseCase) Execute(ctx context.Context, req dto.SubmitOrderRequest) (dto.SubmitOrderResponse, error) {
	frame, err := uc.catalog.FrameByID(req.Frame.ID)
	if err != nil {
		return dto.SubmitOrderResponse{}, err
	}

	unitPrice, err := catalog.PriceFor(frame, req.Size)
	if err != nil {
		return dto.SubmitOrderResponse{}, err
	}

	draft := domain.NewOrderDraft(frame)
	draft.Size = req.Size
	draft.SetQuantity(req.Quantity)

	orientation, ok := domain.ParseOrientation(req.CollageDetails.Orientation)
	if !ok && req.CollageDetails.Size != "" {
		orientation = domain.OrientationOf(req.CollageDetails.Size)
	}
	draft.Collage = domain.CollageSelection{
		Size:          req.CollageDetails.Size,
		Orientation:   orientation,
		Category:      req.CollageDetails.Category,
		SelectedImage: req.CollageDetails.SelectedImage,
	}
	draft.Customization = domain.FrameCustomizationSelection{
		SelectedImage: req.FrameCustomization.SelectedFrameImage,
		FrameType:     req.FrameCustomization.FrameType,
	}

	images := make([]domain.UploadedImage, 0, len(req.UserImages))
	for _, img := range req.UserImages {
		images = append(images, domain.UploadedImage{
			Name:         img.Name,
			Size:         img.Size,
			Type:         img.Type,
			Data:         img.Data,
			Preview:      img.Preview,
			OriginalSize: img.OriginalSize,
		})
	}
	if err := draft.AttachImages(images); err != nil {
		return dto.SubmitOrderResponse{}, err
	}

	customer := domain.CustomerInfo{
		Name:     req.CustomerName,
		Email:    req.CustomerEmail,
		Phone:    req.CustomerPhone,
		Address:  req.CustomerAddress,
		Whatsapp: req.CustomerWhatsapp,
		Requests: req.CustomerRequests,
	}
	meta := domain.OrderMetadata{
		OrderTimestamp: req.Metadata.OrderTimestamp,
		BrowserInfo:    req.Metadata.BrowserInfo,
		OrderSource:    req.Metadata.OrderSource,
	}

	now := uc.now()
	order := draft.Assemble(customer, unitPrice, meta, now)
	orderNumber := strconv.FormatInt(now.UnixMilli(), 10)

	if err := uc.notifier.NotifyOrder(ctx, order, orderNumber); err != nil {
		return dto.SubmitOrderResponse{}, err
	}

	uc.logger.Info("order submitted",
		zap.String("orderNumber", orderNumber),
		zap.String("frameId", order.Frame.ID),
		zap.String("size", order.Size),
		zap.Int("quantity", order.Quantity),
		zap.Int("totalPrice", order.TotalPrice))

	return dto.SubmitOrderResponse{
		OrderNumber: orderNumber,
		Message:     "Order submitted successfully! Check your email for confirmation.",
		UnitPrice:   order.UnitPrice,
		TotalPrice:  order.TotalPrice,
		Timestamp:   now.UTC(),
	}, nil
}
