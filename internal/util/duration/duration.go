package duration_utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidDuration is returned for any expression outside the supported
// grammar. A parse failure must surface to the caller: silently treating a
// typo as "never expires" would create an unintentionally permanent link.
var ErrInvalidDuration = errors.New("invalid duration format, use values like 30m, 1h or 2d")

// maxSeconds caps a duration at 100 years. Keeping the total well below
// math.MaxInt64 nanoseconds means callers can convert the result to a
// time.Duration without overflowing.
const maxSeconds int64 = 100 * 365 * 86400

var unitSeconds = map[byte]int64{
	's': 1,
	'm': 60,
	'h': 3600,
	'd': 86400,
}

// ParseSeconds converts a short human-entered duration such as "30m", "1h"
// or "2d" into a number of seconds. The grammar is a positive integer
// followed by exactly one unit suffix (s, m, h, d). Zero and negative
// durations are rejected, as is anything above the 100 year cap.
func ParseSeconds(expression string) (int64, error) {
	expression = strings.TrimSpace(expression)
	if len(expression) < 2 {
		return 0, ErrInvalidDuration
	}

	unit := expression[len(expression)-1]
	multiplier, ok := unitSeconds[unit]
	if !ok {
		return 0, fmt.Errorf("%w: unknown unit %q", ErrInvalidDuration, string(unit))
	}

	count, err := strconv.ParseInt(expression[:len(expression)-1], 10, 64)
	if err != nil {
		return 0, ErrInvalidDuration
	}

	if count <= 0 {
		return 0, fmt.Errorf("%w: duration must be positive", ErrInvalidDuration)
	}
	if count > maxSeconds/multiplier {
		return 0, fmt.Errorf("%w: duration too large", ErrInvalidDuration)
	}

	return count * multiplier, nil
}
