package dto

type UploadedFileDTO struct {
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	Type         string `json:"type"`
	Data         string `json:"data"`
	Preview      string `json:"preview"`
	OriginalSize int64  `json:"originalSize"`
}

type RejectedFileDTO struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type UploadResponse struct {
	TraceID            string            `json:"traceId"`
	Message            string            `json:"message"`
	Uploaded           []UploadedFileDTO `json:"uploaded"`
	Rejected           []RejectedFileDTO `json:"rejected"`
	CompressionPercent string            `json:"compressionPercent"`
}
