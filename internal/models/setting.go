package models

import "time"

// Setting keys. These mirror the logical persisted-state layout: one
// global record each for language and free-text notes.
const (
	SettingLanguage   = "language"
	SettingExtraNotes = "extra-notes"
)

// Supported languages.
const (
	LanguageEnglish    = "en"
	LanguageIndonesian = "id"
)

// Setting is a single global key/value record. Writes are last-write-wins
// with no cross-session reconciliation.
type Setting struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
