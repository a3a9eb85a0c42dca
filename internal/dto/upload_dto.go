package dto

// Responses of the upload surface. Field names are part of the client
// contract; the mobile app parses them verbatim.

type ModeResponse struct {
	Message     string `json:"message"`
	Mode        int    `json:"mode"`
	ModeChanged bool   `json:"mode_changed"`
}

type ImageProductResponse struct {
	Message       string   `json:"message"`
	Filename      string   `json:"filename"`
	CroppedImages []string `json:"cropped_images"`
	SessionID     string   `json:"session_id"`
}

type ImageCurrencyResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
}

type ImageWarningResponse struct {
	Warning string `json:"warning"`
}

type AudioMatchResponse struct {
	Message    string  `json:"message"`
	Product    string  `json:"product"`
	Confidence float64 `json:"confidence"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
