package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StatusChecker monitors backend reachability
type StatusChecker struct {
	mu        sync.RWMutex
	isOnline  bool
	lastCheck time.Time
	healthURL string
	client    *http.Client
}

// StatusMsg is sent when the backend reachability changes
type StatusMsg struct {
	Online bool
}

// NewStatusChecker creates a checker against the backend's health endpoint
func NewStatusChecker(baseURL string) *StatusChecker {
	return &StatusChecker{
		isOnline:  true, // Optimistically assume online
		healthURL: baseURL + "/health",
		client: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				DisableKeepAlives: true,
			},
		},
	}
}

// Check performs a reachability check against the backend health endpoint.
// Returns true if online, false if offline
func (s *StatusChecker) Check(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, s.healthURL, nil)
	if err != nil {
		s.setOnline(false)
		return false
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.setOnline(false)
		return false
	}
	defer resp.Body.Close()

	// Any 2xx or 3xx response means we're online
	online := resp.StatusCode >= 200 && resp.StatusCode < 400

	s.setOnline(online)
	return online
}

// IsOnline returns the cached online status
func (s *StatusChecker) IsOnline() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isOnline
}

// LastCheck returns the time of the last reachability check
func (s *StatusChecker) LastCheck() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastCheck
}

func (s *StatusChecker) setOnline(online bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOnline = online
	s.lastCheck = time.Now()
}

// CheckCmd returns a tea.Cmd that performs a one-time reachability check
func (s *StatusChecker) CheckCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		online := s.Check(ctx)
		return StatusMsg{Online: online}
	}
}
