package core

import (
	"fmt"
	"strings"

	"github.com/drapaimern/tasklist/pkg/models"
)

// ParsePriority maps a one-letter code (case-insensitive) to its canonical
// priority. Anything other than C, H, N, or L is rejected.
func ParsePriority(raw string) (models.Priority, error) {
	code := models.Priority(strings.ToUpper(strings.TrimSpace(raw)))
	if !code.Valid() {
		return "", fmt.Errorf("%w: %q: want one of C, H, N, L", ErrInvalidPriority, raw)
	}
	return code, nil
}
