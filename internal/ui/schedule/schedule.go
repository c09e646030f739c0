// Package schedule renders today's startable appointments.
package schedule

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marisolhealth/sessiondesk/internal/domain"
	"github.com/marisolhealth/sessiondesk/internal/ui/styles"
)

// List renders the appointment feed with a cursor
type List struct {
	appointments []domain.Appointment
	cursor       int
	width        int
	styles       *styles.Styles
}

// New creates a schedule list
func New(appointments []domain.Appointment, cursor, width int, styles *styles.Styles) List {
	return List{
		appointments: appointments,
		cursor:       cursor,
		width:        width,
		styles:       styles,
	}
}

// Render renders the list as a string
func (l List) Render() string {
	var rows []string
	rows = append(rows, l.styles.ScheduleHeader.Render(fmt.Sprintf("Today's appointments (%d)", len(l.appointments))))

	if len(l.appointments) == 0 {
		rows = append(rows, l.styles.Row.Render("No startable appointments"))
	}

	for i, apt := range l.appointments {
		line := l.renderRow(apt)
		if i == l.cursor {
			rows = append(rows, l.styles.RowActive.Render("> "+line))
		} else {
			rows = append(rows, l.styles.Row.Render("  "+line))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return l.styles.Schedule.Width(l.width).Render(content)
}

func (l List) renderRow(apt domain.Appointment) string {
	var b strings.Builder

	b.WriteString(l.styles.RowTime.Render(fmt.Sprintf("%s-%s", apt.StartTime, apt.EndTime)))
	b.WriteString("  ")
	b.WriteString(l.styles.RowClient.Render(clientLabel(apt)))
	if apt.TherapyType != "" {
		b.WriteString("  ")
		b.WriteString(l.styles.RowType.Render(apt.TherapyType))
	}
	if apt.Location != "" {
		b.WriteString("  ")
		b.WriteString(l.styles.RowType.Render("@ " + apt.Location))
	}

	return b.String()
}

func clientLabel(apt domain.Appointment) string {
	if apt.ClientName != "" {
		return apt.ClientName
	}
	return apt.ClientID
}
