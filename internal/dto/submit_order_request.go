package dto

type SubmitOrderRequest struct {
	CustomerName     string `json:"customerName"`
	CustomerEmail    string `json:"customerEmail"`
	CustomerPhone    string `json:"customerPhone"`
	CustomerAddress  string `json:"customerAddress"`
	CustomerWhatsapp string `json:"customerWhatsapp"`
	CustomerRequests string `json:"customerRequests"`

	Frame FrameInfo `json:"frame"`

	Size          string `json:"size"`
	IsSpecialSize bool   `json:"isSpecialSize"`
	UnitPrice     int    `json:"unitPrice"`
	Quantity      int    `json:"quantity"`
	TotalPrice    int    `json:"totalPrice"`

	CollageDetails     CollageDetails     `json:"collageDetails"`
	FrameCustomization FrameCustomization `json:"frameCustomization"`
	UserImages         []UserImage        `json:"userImages"`
	OrderSummary       OrderSummaryInfo   `json:"orderSummary"`
	Metadata           OrderMetadataInfo  `json:"metadata"`
}

type FrameInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type CollageDetails struct {
	Size          string `json:"size"`
	Orientation   string `json:"orientation"`
	Category      string `json:"category"`
	SelectedImage string `json:"selectedImage"`
}

type FrameCustomization struct {
	SelectedFrameImage string `json:"selectedFrameImage"`
	FrameType          string `json:"frameType"`
}

type UserImage struct {
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	Type         string `json:"type"`
	Data         string `json:"data"`
	Preview      string `json:"preview"`
	OriginalSize int64  `json:"originalSize"`
}

type OrderSummaryInfo struct {
	FrameType              string `json:"frameType"`
	FrameCategory          string `json:"frameCategory"`
	CollageSize            string `json:"collageSize"`
	CollageOrientation     string `json:"collageOrientation"`
	CollageCategory        string `json:"collageCategory"`
	HasCollageSelected     bool   `json:"hasCollageSelected"`
	HasFrameDesignSelected bool   `json:"hasFrameDesignSelected"`
	HasUserImages          bool   `json:"hasUserImages"`
	UserImagesCount        int    `json:"userImagesCount"`
	OrderDate              string `json:"orderDate"`
}

type OrderMetadataInfo struct {
	OrderTimestamp string `json:"orderTimestamp"`
	BrowserInfo    string `json:"browserInfo"`
	OrderSource    string `json:"orderSource"`
}
