package lifecycle

import (
	"fmt"
	"time"
)

// Band classifies remaining session time for display.
type Band int

const (
	BandNormal Band = iota
	BandWarning
	BandOvertime
)

// String returns the display string for the band
func (b Band) String() string {
	switch b {
	case BandWarning:
		return "warning"
	case BandOvertime:
		return "overtime"
	default:
		return "normal"
	}
}

// DefaultWarningThreshold is the remaining time below which the timer enters
// the warning band.
const DefaultWarningThreshold = 5 * time.Minute

// BandFor classifies a remaining duration: negative is overtime, below the
// warning threshold is warning, anything else is normal. Once overtime, the
// band stays overtime until the session ends because remaining keeps falling.
func BandFor(remaining, warningThreshold time.Duration) Band {
	if remaining < 0 {
		return BandOvertime
	}
	if remaining < warningThreshold {
		return BandWarning
	}
	return BandNormal
}

// FormatClock renders a duration as mm:ss (or h:mm:ss past an hour). The
// sign is dropped; callers show overtime via the band, not a minus sign.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	d = d.Round(time.Second)

	h := int(d / time.Hour)
	m := int(d/time.Minute) % 60
	s := int(d/time.Second) % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
