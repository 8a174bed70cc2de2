package errors

import "fmt"

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if nf, ok := err.(*NotFoundError); ok {
		return nf, true
	}
	return nil, false
}

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

// UnpricedError signals that a frame does not offer the requested size.
// An absent price must never be treated as zero.
type UnpricedError struct {
	FrameID string
	Size    string
}

func (e *UnpricedError) Error() string {
	return fmt.Sprintf("size %q is not available for frame %q", e.Size, e.FrameID)
}

func NewUnpricedError(frameID, size string) *UnpricedError {
	return &UnpricedError{FrameID: frameID, Size: size}
}

func IsUnpricedError(err error) (*UnpricedError, bool) {
	if ue, ok := err.(*UnpricedError); ok {
		return ue, true
	}
	return nil, false
}

// NotificationError covers a failed order notification. Both outbound
// messages must succeed; callers only ever see this single aggregate
// failure, never which leg failed.
type NotificationError struct {
	Message string
	Cause   error
}

func (e *NotificationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *NotificationError) Unwrap() error {
	return e.Cause
}

func NewNotificationError(message string, cause error) *NotificationError {
	return &NotificationError{Message: message, Cause: cause}
}

func IsNotificationError(err error) (*NotificationError, bool) {
	if ne, ok := err.(*NotificationError); ok {
		return ne, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{Message: message, Cause: cause}
}
