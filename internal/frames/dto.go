package frames

type FrameDTO struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Subtype        string   `json:"subtype"`
	Description    string   `json:"description"`
	Images         []string `json:"images"`
	HasSpecialSize bool     `json:"hasSpecialSize"`
}

type ListFramesResponse struct {
	Frames []FrameDTO `json:"frames"`
}

type SizePriceDTO struct {
	Size  string `json:"size"`
	Price int    `json:"price"`
}

type FrameSizesResponse struct {
	FrameID        string         `json:"frameId"`
	Sizes          []SizePriceDTO `json:"sizes"`
	HasSpecialSize bool           `json:"hasSpecialSize"`
	SpecialPrice   int            `json:"specialPrice,omitempty"`
}

type CustomizationsResponse struct {
	FrameID     string              `json:"frameId"`
	Size        string              `json:"size"`
	Orientation string              `json:"orientation"`
	Images      map[string][]string `json:"images"`
}

type CollagesResponse struct {
	Size       string         `json:"size"`
	Category   string         `json:"category"`
	Images     []string       `json:"images"`
	Categories []string       `json:"categories"`
	Sizes      []SizePriceDTO `json:"sizes"`
}
