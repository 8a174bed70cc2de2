package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"artistic-unity/internal/domain"
	"artistic-unity/internal/dto"
	apperrors "artistic-unity/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SubmitOrderUseCase interface {
	Execute(ctx context.Context, req dto.SubmitOrderRequest) (dto.SubmitOrderResponse, error)
}

type SubmitOrderController struct {
	useCase SubmitOrderUseCase
	logger  *zap.Logger
}

func NewSubmitOrderController(useCase SubmitOrderUseCase, logger *zap.Logger) *SubmitOrderController {
	return &SubmitOrderController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *SubmitOrderController) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.SubmitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if validationErr := c.validateSubmitOrderRequest(req); validationErr != nil {
		ve, _ := apperrors.IsValidationError(validationErr)
		c.writeValidationError(w, traceID, ve.Message, ve.Details...)
		return
	}

	resp, err := c.useCase.Execute(r.Context(), req)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	resp.TraceID = traceID
	c.writeJSON(w, http.StatusOK, resp)
}

func (c *SubmitOrderController) validateSubmitOrderRequest(req dto.SubmitOrderRequest) error {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(req.CustomerName) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customerName",
			Message: "customerName is required",
		})
	}

	if strings.TrimSpace(req.CustomerEmail) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customerEmail",
			Message: "customerEmail is required",
		})
	} else if !strings.Contains(req.CustomerEmail, "@") {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customerEmail",
			Message: "customerEmail must be a valid email address",
		})
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customerPhone",
			Message: "customerPhone is required",
		})
	}

	if strings.TrimSpace(req.CustomerAddress) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customerAddress",
			Message: "customerAddress is required",
		})
	}

	if strings.TrimSpace(req.Frame.ID) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "frame.id",
			Message: "frame.id is required",
		})
	}

	if strings.TrimSpace(req.Size) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "size",
			Message: "size is required",
		})
	}

	if len(req.UserImages) > domain.MaxUploadedImages {
		details = append(details, apperrors.ValidationDetail{
			Field:   "userImages",
			Message: "a maximum of 10 images can be attached to an order",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func (c *SubmitOrderController) handleUseCaseError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	if _, ok := apperrors.IsUnpricedError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusUnprocessableEntity, "UNPRICED", err.Error())
		return
	}

	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, traceID, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsNotificationError(err); ok {
		logger.Error("order notification failed", zap.Error(err))
		c.writeErrorResponse(w, traceID, http.StatusBadGateway, "NOTIFICATION_FAILED",
			"order could not be delivered, please try again")
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeErrorResponse(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

func (c *SubmitOrderController) writeErrorResponse(w http.ResponseWriter, traceID string, statusCode int, code string, message string) {
	response := dto.SubmitOrderErrorResponse{
		TraceID:   traceID,
		Status:    statusCode,
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}

	c.writeJSON(w, statusCode, response)
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *SubmitOrderController) writeValidationError(w http.ResponseWriter, traceID string, message string, details ...apperrors.ValidationDetail) {
	response := validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	}

	c.writeJSON(w, http.StatusBadRequest, response)
}

func (c *SubmitOrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
