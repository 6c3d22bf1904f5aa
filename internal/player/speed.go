package player

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Speed selects one of the fixed auto-advance periods.
type Speed int

const (
	SpeedSlow Speed = iota
	SpeedNormal
	SpeedFast
)

var speedNames = [...]string{"slow", "normal", "fast"}

func (s Speed) String() string {
	if s < SpeedSlow || s > SpeedFast {
		return fmt.Sprintf("Speed(%d)", int(s))
	}
	return speedNames[s]
}

// Next cycles slow, normal, fast, slow.
func (s Speed) Next() Speed {
	return (s + 1) % Speed(len(speedNames))
}

// ParseSpeed accepts "slow", "normal" or "fast", case-insensitively.
func ParseSpeed(name string) (Speed, error) {
	for i, n := range speedNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return Speed(i), nil
		}
	}
	return SpeedNormal, fmt.Errorf("unknown speed %q (valid: %s)", name, strings.Join(SpeedNames(), ", "))
}

// SpeedNames returns the recognized speed names, slowest first.
func SpeedNames() []string {
	return slices.Clone(speedNames[:])
}

// Intervals holds the tick period for each Speed.
type Intervals struct {
	Slow   time.Duration
	Normal time.Duration
	Fast   time.Duration
}

// DefaultIntervals returns 1s, 500ms and 100ms.
func DefaultIntervals() Intervals {
	return Intervals{
		Slow:   1000 * time.Millisecond,
		Normal: 500 * time.Millisecond,
		Fast:   100 * time.Millisecond,
	}
}

// For returns the period for s. Unknown speeds use the normal period.
func (iv Intervals) For(s Speed) time.Duration {
	switch s {
	case SpeedSlow:
		return iv.Slow
	case SpeedFast:
		return iv.Fast
	default:
		return iv.Normal
	}
}
