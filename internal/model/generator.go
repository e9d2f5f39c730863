package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
// Length is left untyped so that a missing or non-integer value can fall back to the default.
type GenerateRequest struct {
	Length    any   `json:"length"`
	Numbers   *bool `json:"numbers"`
	Special   *bool `json:"special"`
	Alphabets *bool `json:"alphabets"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}
