package model

// GenerationRequest represents a password generation request as parsed from
// the command line. Length is validated by the generator, not here.
type GenerationRequest struct {
	Length    int  `json:"length"`
	Uppercase bool `json:"uppercase"`
	Special   bool `json:"special"`
	Numbers   bool `json:"numbers"`
	Count     int  `json:"count,omitempty"`
	Hash      bool `json:"hash,omitempty"`
}

// GeneratedPassword is a single generated password with its optional hash.
type GeneratedPassword struct {
	Password string `json:"password"`
	Hash     string `json:"hash,omitempty"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Passwords []GeneratedPassword `json:"passwords"`
	Length    int                 `json:"length"`
	// Adjusted is set when the requested length was replaced by the default.
	Adjusted bool `json:"adjusted,omitempty"`
}
