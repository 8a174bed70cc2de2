package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"artistic-unity/internal/domain"
	apperrors "artistic-unity/internal/errors"
	"artistic-unity/internal/infrastructure/mail"
)

// NotificationService renders and dispatches the two order emails: the
// owner notification and the customer confirmation. An order only counts
// as notified when both sends succeed.
type NotificationService struct {
	sender     mail.Sender
	ownerEmail string
	logger     *zap.Logger
	now        func() time.Time
}

func NewNotificationService(sender mail.Sender, ownerEmail string, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		sender:     sender,
		ownerEmail: ownerEmail,
		logger:     logger,
		now:        time.Now,
	}
}

func attachmentCID(index int) string {
	return fmt.Sprintf("user-image-%d", index)
}

// attachmentsFor decodes the base64 payload of each uploaded image into an
// inline attachment referenced by cid from the email bodies. Images whose
// payloads cannot be decoded are skipped rather than failing the order.
func (s *NotificationService) attachmentsFor(order domain.Order) []mail.Attachment {
	attachments := make([]mail.Attachment, 0, len(order.Images))
	for i, img := range order.Images {
		data := img.Data
		if idx := strings.Index(data, ","); idx >= 0 {
			data = data[idx+1:]
		}
		raw, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			s.logger.Warn("skipping undecodable image attachment",
				zap.Int("index", i),
				zap.String("name", img.Name),
				zap.Error(err))
			continue
		}
		contentType := img.Type
		if contentType == "" {
			contentType = "image/jpeg"
		}
		attachments = append(attachments, mail.Attachment{
			Filename:    img.Name,
			ContentType: contentType,
			ContentID:   attachmentCID(i),
			Data:        raw,
		})
	}
	return attachments
}

// NotifyOrder sends the owner and customer emails for an assembled order.
// Both sends run concurrently and both must succeed; any failure is
// reported as a single aggregate notification error.
func (s *NotificationService) NotifyOrder(ctx context.Context, order domain.Order, orderNumber string) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewNotificationError("order notification cancelled", err)
	}

	data := newEmailData(order, orderNumber, s.now())
	attachments := s.attachmentsFor(order)

	ownerBody, err := renderEmail(ownerTmpl, data)
	if err != nil {
		return apperrors.NewNotificationError("failed to render owner email", err)
	}
	customerBody, err := renderEmail(customerTmpl, data)
	if err != nil {
		return apperrors.NewNotificationError("failed to render customer email", err)
	}

	messages := []mail.Message{
		{
			To:          s.ownerEmail,
			Subject:     fmt.Sprintf("New Frame Order #%s - The Artistic Unity", orderNumber),
			HTMLBody:    ownerBody,
			Attachments: attachments,
		},
		{
			To:          order.Customer.Email,
			Subject:     fmt.Sprintf("Order Confirmation #%s - The Artistic Unity", orderNumber),
			HTMLBody:    customerBody,
			Attachments: attachments,
		},
	}

	errs := make([]error, len(messages))
	var wg sync.WaitGroup
	for i, msg := range messages {
		wg.Add(1)
		go func(i int, msg mail.Message) {
			defer wg.Done()
			errs[i] = s.sender.Send(msg)
		}(i, msg)
	}
	wg.Wait()

	var failed []string
	for i, sendErr := range errs {
		if sendErr != nil {
			failed = append(failed, messages[i].To)
			s.logger.Error("order email send failed",
				zap.String("orderNumber", orderNumber),
				zap.String("to", messages[i].To),
				zap.Error(sendErr))
		}
	}
	if len(failed) > 0 {
		var cause error
		for _, sendErr := range errs {
			if sendErr != nil {
				cause = sendErr
				break
			}
		}
		return apperrors.NewNotificationError(
			fmt.Sprintf("failed to deliver order emails to %s", strings.Join(failed, ", ")), cause)
	}

	s.logger.Info("order emails delivered",
		zap.String("orderNumber", orderNumber),
		zap.Int("attachments", len(attachments)))
	return nil
}
