package pronounce

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/jelou/internal/domain"
)

// DefaultMaxInputLength is the boundary cap on input length, in runes.
const DefaultMaxInputLength = 100

// ValidateInput checks a word or notation before it reaches the engine:
// it must be non-empty after trimming and at most maxLen runes long.
// A non-positive maxLen means DefaultMaxInputLength.
func ValidateInput(field, s string, maxLen int) error {
	if maxLen <= 0 {
		maxLen = DefaultMaxInputLength
	}

	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return domain.NewValidationError(field, "required")
	}
	if utf8.RuneCountInString(trimmed) > maxLen {
		return domain.NewValidationError(field, fmt.Sprintf("too long (max %d)", maxLen))
	}
	return nil
}

// ValidateInput checks s against the service's configured length cap.
func (s *Service) ValidateInput(field, input string) error {
	return ValidateInput(field, input, s.cfg.MaxInputLength)
}
