package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marisolhealth/sessiondesk/internal/domain"
)

func TestListStartable(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/appointments/startable", r.URL.Path)
		assert.Equal(t, "th-1", r.URL.Query().Get("therapistId"))
		json.NewEncoder(w).Encode([]domain.Appointment{
			{ID: "apt-1", ClientID: "cl-1", TherapistID: "th-1", DurationMinutes: 50},
			{ID: "apt-2", ClientID: "cl-2", TherapistID: "th-1"},
		})
	}))

	appointments, err := client.ListStartable(context.Background(), "th-1")
	require.NoError(t, err)
	require.Len(t, appointments, 2)
	assert.Equal(t, "apt-1", appointments[0].ID)
}

func TestListStartable_FallsBackToByDate(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/appointments/startable":
			w.WriteHeader(http.StatusInternalServerError)
		case "/appointments":
			assert.Equal(t, "th-1", r.URL.Query().Get("therapistId"))
			assert.Equal(t, time.Now().Format("2006-01-02"), r.URL.Query().Get("date"))
			assert.Equal(t, "scheduled", r.URL.Query().Get("status"))
			json.NewEncoder(w).Encode([]domain.Appointment{{ID: "apt-3"}})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	appointments, err := client.ListStartable(context.Background(), "th-1")
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, "apt-3", appointments[0].ID)
}

func TestListStartable_BothQueriesFail(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	appointments, err := client.ListStartable(context.Background(), "th-1")
	assert.Error(t, err)
	assert.Empty(t, appointments)
}

func TestCancelAppointment(t *testing.T) {
	var got struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/appointments/apt-1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"status":"ok"}`))
	}))

	err := client.CancelAppointment(context.Background(), "apt-1", "Client did not attend (no-show) - 2026-08-29 14:05")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", got.Status)
	assert.Contains(t, got.Notes, "no-show")
}

func TestAppointmentDuration_Default(t *testing.T) {
	apt := domain.Appointment{DurationMinutes: 0}
	assert.Equal(t, 50*time.Minute, apt.Duration())

	apt.DurationMinutes = 80
	assert.Equal(t, 80*time.Minute, apt.Duration())
}
