package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInvoice_Immediate(t *testing.T) {
	var got InvoiceRequest
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sessions/ses-1/generate-invoice", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"consolidated":false,"invoiceId":"inv-9"}`))
	}))

	result, err := client.GenerateInvoice(context.Background(), "ses-1", InvoiceRequest{
		AppointmentID:   "apt-1",
		ClientID:        "cl-1",
		DurationMinutes: 52,
		SessionType:     "individual",
		AutoSend:        true,
	})
	require.NoError(t, err)

	assert.False(t, result.Consolidated)
	assert.Equal(t, "inv-9", result.InvoiceID)
	assert.True(t, got.AutoSend)
	assert.Equal(t, 52, got.DurationMinutes)
}

func TestGenerateInvoice_Consolidated(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"consolidated":true,"billingMonth":"2026-08"}`))
	}))

	result, err := client.GenerateInvoice(context.Background(), "ses-1", InvoiceRequest{})
	require.NoError(t, err)

	assert.True(t, result.Consolidated)
	assert.Equal(t, "2026-08", result.BillingMonth)
}

func TestGenerateInvoice_ConflictIsNotAnError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"session already billed"}`))
	}))

	result, err := client.GenerateInvoice(context.Background(), "ses-1", InvoiceRequest{})
	require.NoError(t, err)
	assert.True(t, result.AlreadyBilled)
}

func TestGenerateInvoice_ServerError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.GenerateInvoice(context.Background(), "ses-1", InvoiceRequest{})
	assert.Error(t, err)
}
