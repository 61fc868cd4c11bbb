package model

// CategoryCoverage records which character categories a password uses.
type CategoryCoverage struct {
	Lowercase bool `json:"lowercase"`
	Uppercase bool `json:"uppercase"`
	Digits    bool `json:"digits"`
	Special   bool `json:"special"`
	Count     int  `json:"count"`
	Other     int  `json:"other,omitempty"`
}

// CrackTime is the estimated average time for an offline bcrypt attack.
type CrackTime struct {
	BcryptCost       int     `json:"bcrypt_cost"`
	GuessesPerSecond float64 `json:"guesses_per_second"`
	Calibrated       bool    `json:"calibrated"`
	Seconds          string  `json:"seconds"`
	Human            string  `json:"human"`
}

// StrengthResponse represents a password strength analysis.
// Keyspace is a decimal string since it routinely exceeds 64 bits.
type StrengthResponse struct {
	Length      int              `json:"length"`
	Categories  CategoryCoverage `json:"categories"`
	PoolSize    int              `json:"pool_size"`
	Keyspace    string           `json:"keyspace"`
	EntropyBits float64          `json:"entropy_bits"`
	Strength    string           `json:"strength"`
	CrackTime   CrackTime        `json:"crack_time"`
}
