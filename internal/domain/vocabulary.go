package domain

import "errors"

// WordType identifies the writing system a vocabulary entry belongs to.
type WordType string

// Possible word type values.
const (
	WordTypeHiragana WordType = "hiragana"
	WordTypeKatakana WordType = "katakana"
	WordTypeKanji    WordType = "kanji"
)

// Common validation errors for VocabularyWord.
var (
	ErrEmptyCharacter  = errors.New("character cannot be empty")
	ErrEmptyRomanji    = errors.New("romanji cannot be empty")
	ErrEmptyMeaning    = errors.New("meaning cannot be empty")
	ErrInvalidWordType = errors.New("invalid word type")
	ErrInvalidLevel    = errors.New("level must be between 1 and 5")
)

// VocabularyWord is a single catalog entry: a glyph, its latin
// transliteration, and an English gloss. Catalog entries are immutable after
// the loader seeds them at startup.
type VocabularyWord struct {
	ID        int64    `json:"id"`
	Character string   `json:"character"`
	Romanji   string   `json:"romanji"`
	Meaning   string   `json:"meaning"`
	Type      WordType `json:"type"`
	Level     int      `json:"level"`
	AudioURL  string   `json:"audio_url,omitempty"`
}

// Validate checks if the VocabularyWord has valid data.
func (w *VocabularyWord) Validate() error {
	if w.Character == "" {
		return ErrEmptyCharacter
	}

	if w.Romanji == "" {
		return ErrEmptyRomanji
	}

	if w.Meaning == "" {
		return ErrEmptyMeaning
	}

	if !w.Type.Valid() {
		return ErrInvalidWordType
	}

	if w.Level < 1 || w.Level > 5 {
		return ErrInvalidLevel
	}

	return nil
}

// Valid reports whether the word type is one of the known writing systems.
func (t WordType) Valid() bool {
	switch t {
	case WordTypeHiragana, WordTypeKatakana, WordTypeKanji:
		return true
	default:
		return false
	}
}
