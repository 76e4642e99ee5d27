package model

// GenerateRequest represents a password generation request.
// A zero length means the configured default.
type GenerateRequest struct {
	Length  int  `json:"length"`
	Numbers bool `json:"numbers"`
	Symbols bool `json:"symbols"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password     string `json:"password"`
	Length       int    `json:"length"`
	AlphabetSize int    `json:"alphabet_size"`
}
