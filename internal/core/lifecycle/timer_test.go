package lifecycle

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBandFor(t *testing.T) {
	tests := []struct {
		name      string
		remaining time.Duration
		want      Band
	}{
		{name: "well before end", remaining: 30 * time.Minute, want: BandNormal},
		{name: "exactly at threshold", remaining: 5 * time.Minute, want: BandNormal},
		{name: "just under threshold", remaining: 5*time.Minute - time.Second, want: BandWarning},
		{name: "four minutes left", remaining: 240 * time.Second, want: BandWarning},
		{name: "zero", remaining: 0, want: BandWarning},
		{name: "one second over", remaining: -time.Second, want: BandOvertime},
		{name: "deep overtime", remaining: -40 * time.Minute, want: BandOvertime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BandFor(tt.remaining, DefaultWarningThreshold))
		})
	}
}

// Scenario from the clinical workflow: 14:00 start, 50-minute appointment.
func TestBand_FiftyMinuteScenario(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := NewController(50*time.Minute, logger)

	start := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	require.NoError(t, c.BeginStart(testAppointment(), validForm()))
	require.NoError(t, c.ConfirmStart("ses-1", start))

	session, _ := c.Session()
	assert.Equal(t, time.Date(2026, 3, 2, 14, 50, 0, 0, time.UTC), session.ExpectedEndAt)

	at1446 := time.Date(2026, 3, 2, 14, 46, 0, 0, time.UTC)
	assert.Equal(t, 240*time.Second, c.Remaining(at1446))
	assert.Equal(t, BandWarning, BandFor(c.Remaining(at1446), DefaultWarningThreshold))

	at1451 := time.Date(2026, 3, 2, 14, 51, 0, 0, time.UTC)
	assert.Equal(t, -60*time.Second, c.Remaining(at1451))
	assert.Equal(t, BandOvertime, BandFor(c.Remaining(at1451), DefaultWarningThreshold))

	// Overtime is sticky until end: remaining only keeps falling
	at1530 := time.Date(2026, 3, 2, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, BandOvertime, BandFor(c.Remaining(at1530), DefaultWarningThreshold))
}

func TestBandString(t *testing.T) {
	assert.Equal(t, "normal", BandNormal.String())
	assert.Equal(t, "warning", BandWarning.String())
	assert.Equal(t, "overtime", BandOvertime.String())
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{42 * time.Second, "00:42"},
		{17*time.Minute + 3*time.Second, "17:03"},
		{-4 * time.Minute, "04:00"}, // overtime shown unsigned
		{61*time.Minute + 5*time.Second, "1:01:05"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatClock(tt.d))
	}
}
