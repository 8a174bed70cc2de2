package domain

import "time"

// NotSelected is the literal marker used instead of empty values for
// optional selections, so downstream consumers can render uniformly.
const NotSelected = "Not selected"

type CustomerInfo struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Whatsapp string
	Requests string
}

type FrameRef struct {
	ID          string
	Name        string
	Category    FrameCategory
	Description string
}

type CollageSelection struct {
	Size          string
	Orientation   Orientation
	Category      string
	SelectedImage string
}

type FrameCustomizationSelection struct {
	SelectedImage string
	FrameType     string
}

// UploadedImage is a user photo that already passed the ingestion gate:
// sizes are post-compression bytes and Type is the normalized encoding.
type UploadedImage struct {
	Name         string
	Size         int64
	Type         string
	Data         string
	Preview      string
	OriginalSize int64
}

type OrderSummary struct {
	FrameType             string
	FrameCategory         FrameCategory
	CollageSize           string
	CollageOrientation    Orientation
	CollageCategory       string
	HasCollageSelected    bool
	HasFrameDesignSelected bool
	HasUserImages         bool
	UserImagesCount       int
	OrderDate             time.Time
}

type OrderMetadata struct {
	OrderTimestamp string
	BrowserInfo    string
	OrderSource    string
}

// Order is the immutable aggregate handed to the notification collaborator.
// It is never persisted: it lives long enough to be rendered into the two
// outbound emails and is then discarded.
type Order struct {
	Customer      CustomerInfo
	Frame         FrameRef
	Size          string
	IsSpecialSize bool
	UnitPrice     int
	Quantity      int
	TotalPrice    int
	Collage       CollageSelection
	Customization FrameCustomizationSelection
	Images        []UploadedImage
	Summary       OrderSummary
	Metadata      OrderMetadata
}
