package domain

import (
	"errors"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  APIError
		want string
	}{
		{
			name: "with session ID",
			err:  APIError{Op: "progress", SessionID: "ses-1", Message: "failed"},
			want: "api progress [ses-1]: failed",
		},
		{
			name: "with message only",
			err:  APIError{Op: "start", Message: "timeout"},
			want: "api start: timeout",
		},
		{
			name: "with underlying error",
			err:  APIError{Op: "end", Err: errors.New("connection refused")},
			want: "api end: connection refused",
		},
		{
			name: "with status code",
			err:  APIError{Op: "feed", StatusCode: 502},
			want: "api feed: status 502",
		},
		{
			name: "minimal",
			err:  APIError{Op: "invoice"},
			want: "api invoice: failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("APIError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAPIError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &APIError{Op: "test", Err: underlying}

	if unwrapped := err.Unwrap(); unwrapped != underlying {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, underlying)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "sessionGoals"}
	if got := err.Error(); got != "sessionGoals is required" {
		t.Errorf("ValidationError.Error() = %v", got)
	}

	err = &ValidationError{Field: "summary", Message: "cannot be empty"}
	if got := err.Error(); got != "summary: cannot be empty" {
		t.Errorf("ValidationError.Error() = %v", got)
	}
}

func TestAssignError(t *testing.T) {
	underlying := errors.New("boom")
	err := &AssignError{Kind: KindSurvey, ItemID: "sv-9", ClientID: "cl-1", Err: underlying}

	if got := err.Error(); got != "assign survey [sv-9]: boom" {
		t.Errorf("AssignError.Error() = %v", got)
	}
	if !errors.Is(err, underlying) {
		t.Error("AssignError should unwrap to underlying error")
	}
}
