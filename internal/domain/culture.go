package domain

import "errors"

// CultureCategory classifies cultural catalog entries.
type CultureCategory string

// Possible culture category values.
const (
	CultureCategoryTraditionalArt CultureCategory = "traditional_art"
	CultureCategoryFoodCulture    CultureCategory = "food_culture"
	CultureCategoryLandmarks      CultureCategory = "landmarks"
	CultureCategoryGeneral        CultureCategory = "general"
)

// Common validation errors for CulturalContent.
var (
	ErrEmptyCultureTitle          = errors.New("cultural content title cannot be empty")
	ErrInvalidCultureCategory     = errors.New("invalid culture category")
	ErrEmptyCultureDescription    = errors.New("cultural content description cannot be empty")
)

// CulturalContent is a read-only cultural catalog entry seeded at startup.
// Content holds the optional long-form text shown on detail views.
type CulturalContent struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Category    CultureCategory `json:"category"`
	Tags        []string        `json:"tags"`
	Content     string          `json:"content,omitempty"`
}

// Validate checks if the CulturalContent has valid data.
func (c *CulturalContent) Validate() error {
	if c.Title == "" {
		return ErrEmptyCultureTitle
	}

	if c.Description == "" {
		return ErrEmptyCultureDescription
	}

	if !c.Category.Valid() {
		return ErrInvalidCultureCategory
	}

	return nil
}

// Valid reports whether the category is one of the known classifications.
func (c CultureCategory) Valid() bool {
	switch c {
	case CultureCategoryTraditionalArt, CultureCategoryFoodCulture,
		CultureCategoryLandmarks, CultureCategoryGeneral:
		return true
	default:
		return false
	}
}
