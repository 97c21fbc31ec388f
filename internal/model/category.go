package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxCategoryNameLength = 50

// Category is a short label applied to tasks. Equality is identity-based:
// two instances sharing an id refer to the same category regardless of
// name or color.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCategory builds a category with a fresh id. The name is expected to be
// trimmed and capitalized by the caller; the invariants are checked here.
func NewCategory(name, color string) (Category, error) {
	if err := ValidateCategoryName(name); err != nil {
		return Category{}, err
	}
	if !IsValidHexColor(color) {
		return Category{}, NewValidationError("invalid hex color (e.g. #FF5733)")
	}
	return Category{
		ID:        uuid.NewString(),
		Name:      name,
		Color:     color,
		CreatedAt: time.Now(),
	}, nil
}

func ValidateCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewValidationError("category name must not be empty")
	}
	if len([]rune(name)) > MaxCategoryNameLength {
		return NewValidationError("category name must be at most %d characters", MaxCategoryNameLength)
	}
	return nil
}

// IsValidHexColor accepts exactly the #RRGGBB form. Shorthand like #FFF is
// rejected.
func IsValidHexColor(color string) bool {
	if len(color) != 7 || color[0] != '#' {
		return false
	}
	for _, c := range color[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
