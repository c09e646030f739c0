package domain

import "time"

// Phase represents the lifecycle phase of the live session state machine
type Phase int

const (
	PhaseNoSession Phase = iota
	PhaseStarting
	PhaseActive
	PhaseEnding
)

// String returns the display string for the phase
func (p Phase) String() string {
	switch p {
	case PhaseNoSession:
		return "NO SESSION"
	case PhaseStarting:
		return "STARTING"
	case PhaseActive:
		return "IN SESSION"
	case PhaseEnding:
		return "ENDING"
	default:
		return "UNKNOWN"
	}
}

// Techniques is the fixed vocabulary of intervention techniques a therapist
// can record against a session.
var Techniques = []string{
	"CBT",
	"DBT",
	"EMDR",
	"Mindfulness",
	"Exposure",
	"Psychoeducation",
	"Motivational Interviewing",
	"Solution-Focused",
}

// Session is the canonical record of a live therapy session. It is owned
// exclusively by the lifecycle controller while active; the timer and
// autosave read it only through controller accessors.
type Session struct {
	ID            string
	AppointmentID string
	ClientID      string
	TherapistID   string
	TherapyType   string
	Location      string

	StartedAt       time.Time
	ExpectedEndAt   time.Time

	// MoodStart is captured once at start and never rewritten.
	MoodStart int
	// MoodEnd is set only while ending.
	MoodEnd int

	Goals    string
	Concerns string
}

// StartForm is the therapist's input required to start a session.
type StartForm struct {
	ClientPresent bool
	Location      string
	InitialNotes  string
	MoodStart     int
	Goals         string
	Concerns      string
}

// Summary is the mandatory payload for ending a session. EndSession is
// rejected while Text is empty.
type Summary struct {
	Text            string
	MoodEnd         int
	Homework        string
	NextSessionPlan string
}

// Defaults the backend expects when the therapist leaves summary extras blank.
const (
	DefaultHomework        = "None"
	DefaultNextSessionPlan = "Continue current treatment plan"
)

// InvoiceResult is the outcome of the best-effort billing trigger. Both the
// consolidated and the immediate case are "success" from the UI's point of
// view, and AlreadyBilled is informational.
type InvoiceResult struct {
	Consolidated  bool   `json:"consolidated"`
	BillingMonth  string `json:"billingMonth,omitempty"`
	InvoiceID     string `json:"invoiceId,omitempty"`
	AlreadyBilled bool   `json:"-"`
}
