package campdoc

import (
	"fmt"
	"time"

	"github.com/campstation/campdoc/internal/dateutil"
)

// ResolveDate handles "auto" and "auto:FORMAT" syntax for date values.
//   - "auto" → current date in YYYY-MM-DD format
//   - "auto:FORMAT" → current date in a custom format (e.g. "auto:YYYY.MM.DD")
//   - "auto:preset" → a named preset (iso, korean, dotted, long)
//   - any other value → returned unchanged
//
// The time parameter allows injecting a fixed time for testing.
func ResolveDate(value string, t time.Time) (string, error) {
	resolved, err := dateutil.Resolve(value, t)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return resolved, nil
}
