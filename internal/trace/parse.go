package trace

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Iron-Ham/stepthrough/internal/errors"
)

// MaxMagnitude is the largest absolute value an input number may have.
// Every integer up to it is exactly representable as a float64, so the
// simulators' arithmetic on parsed numbers cannot overflow an int64.
const MaxMagnitude = 1 << 53

// ParseInput splits text on runs of whitespace and converts each token to
// an integer. Tokens that are not integers, or exceed MaxMagnitude, are
// dropped silently, so a
// half-edited input still yields the numbers it does contain. Blank input
// yields an empty slice.
func ParseInput(text string) []int64 {
	fields := strings.Fields(text)
	nums := make([]int64, 0, len(fields))
	for _, tok := range fields {
		if n, ok := parseToken(tok); ok {
			nums = append(nums, n)
		}
	}
	return nums
}

// ParseInputStrict is ParseInput that rejects the first token that is not
// an integer with a *errors.ValidationError instead of dropping it.
func ParseInputStrict(text string) ([]int64, error) {
	fields := strings.Fields(text)
	nums := make([]int64, 0, len(fields))
	for i, tok := range fields {
		n, ok := parseToken(tok)
		if !ok {
			return nil, errors.NewValidationError(fmt.Sprintf("token %d is not an integer of magnitude at most %d", i+1, int64(MaxMagnitude))).
				WithField("input").
				WithValue(tok)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// parseToken accepts decimal integers and whole-valued decimal or exponent
// forms such as "3.0" or "1e2", within MaxMagnitude.
func parseToken(tok string) (int64, bool) {
	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return n, n >= -MaxMagnitude && n <= MaxMagnitude
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if math.Abs(f) > MaxMagnitude {
		return 0, false
	}
	return int64(f), true
}
