package domain

import "time"

// Supported interface languages.
const (
	LanguageFrench  = "fr"
	LanguageEnglish = "en"
	LanguageBambara = "bm"
)

// Session is the process-wide identification state of a mobile client:
// the phone number it registered with and its language preference.
// Sessions are persisted in Redis and written through on every change.
type Session struct {
	Phone     string    `json:"phone"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}
