// Package domain contains core business types for the sessiondesk application.
package domain

import "time"

// AppointmentStatus is the workflow status of a scheduled appointment
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentStarted   AppointmentStatus = "started"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment is an immutable reference to a scheduled encounter, as served
// by the appointment feed. The session core never mutates it.
type Appointment struct {
	ID              string            `json:"id"`
	ClientID        string            `json:"clientId"`
	ClientName      string            `json:"clientName,omitempty"`
	TherapistID     string            `json:"therapistId"`
	Date            string            `json:"date"` // YYYY-MM-DD
	StartTime       string            `json:"startTime"`
	EndTime         string            `json:"endTime"`
	DurationMinutes int               `json:"durationMinutes"`
	TherapyType     string            `json:"therapyType"`
	Location        string            `json:"location"`
	Notes           string            `json:"notes,omitempty"`
	Status          AppointmentStatus `json:"status"`
}

// DefaultSessionMinutes is used when an appointment carries no duration.
const DefaultSessionMinutes = 50

// Duration returns the expected session length, falling back to the
// standard 50-minute hour when the appointment carries none.
func (a Appointment) Duration() time.Duration {
	minutes := a.DurationMinutes
	if minutes <= 0 {
		minutes = DefaultSessionMinutes
	}
	return time.Duration(minutes) * time.Minute
}

// AssignableKind identifies one of the three assignment side-channel flows.
type AssignableKind string

const (
	KindResource  AssignableKind = "resource"
	KindSurvey    AssignableKind = "survey"
	KindChallenge AssignableKind = "challenge"
)

// String returns the display string
func (k AssignableKind) String() string {
	return string(k)
}

// Assignable is an item a therapist can attach to a client during or after
// a session: a resource, survey, or challenge.
type Assignable struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Kind  AssignableKind `json:"-"`
}
