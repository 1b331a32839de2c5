package evcc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/diillson/evcc-charging-report/internal/domain/entity"
	"github.com/diillson/evcc-charging-report/internal/shared/types"
)

func testPeriod() entity.Period {
	return entity.Period{Year: 2023, Month: time.October}
}

func TestFetchSessionsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/sessions" {
			t.Errorf("path = %q, want /api/sessions", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("year") != "2023" || q.Get("month") != "10" {
			t.Errorf("query = %q, want year=2023&month=10", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"created":"2023-10-01T10:00:00Z","chargedEnergy":50.5}]`))
	}))
	defer server.Close()

	repo := NewSessionRepository(server.URL, "", zap.NewNop())
	sessions, err := repo.FetchSessions(context.Background(), testPeriod(), "en")
	if err != nil {
		t.Fatalf("FetchSessions returned error: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("len(sessions) = %d, want 1", len(sessions))
	}
	if sessions[0].ChargedEnergy == nil || *sessions[0].ChargedEnergy != 50.5 {
		t.Errorf("ChargedEnergy = %v, want 50.5", sessions[0].ChargedEnergy)
	}
	if sessions[0].Price != nil {
		t.Error("Price should stay nil when absent from the payload")
	}
}

func TestFetchSessionsEmptyPeriod(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	repo := NewSessionRepository(server.URL, "", zap.NewNop())
	sessions, err := repo.FetchSessions(context.Background(), testPeriod(), "en")
	if err != nil {
		t.Fatalf("zero sessions is not an error, got: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("len(sessions) = %d, want 0", len(sessions))
	}
}

func TestFetchSessionsHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	repo := NewSessionRepository(server.URL, "", zap.NewNop())
	_, err := repo.FetchSessions(context.Background(), testPeriod(), "en")

	var statusErr *types.HTTPStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v, want HTTPStatusError", err)
	}
	if statusErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", statusErr.StatusCode)
	}
}

func TestFetchSessionsConnectivityError(t *testing.T) {
	// point at a closed port
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	repo := NewSessionRepository(server.URL, "", zap.NewNop())
	_, err := repo.FetchSessions(context.Background(), testPeriod(), "en")

	var connErr *types.ConnectivityError
	if !errors.As(err, &connErr) {
		t.Fatalf("error = %v, want ConnectivityError", err)
	}
}

func TestFetchSessionsWithLogin(t *testing.T) {
	loginCalled := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			loginCalled = true
			if r.Method != http.MethodPost {
				t.Errorf("login method = %q, want POST", r.Method)
			}
			http.SetCookie(w, &http.Cookie{Name: "auth", Value: "token"})
		case "/api/sessions":
			if !loginCalled {
				t.Error("sessions fetched before login")
			}
			if c, err := r.Cookie("auth"); err != nil || c.Value != "token" {
				t.Error("session cookie from login not presented on data call")
			}
			w.Write([]byte(`[]`))
		}
	}))
	defer server.Close()

	repo := NewSessionRepository(server.URL, "secret", zap.NewNop())
	if _, err := repo.FetchSessions(context.Background(), testPeriod(), "en"); err != nil {
		t.Fatalf("FetchSessions returned error: %v", err)
	}
	if !loginCalled {
		t.Error("login endpoint was never called despite configured password")
	}
}

func TestFetchSessionsLoginRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/login" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		t.Error("data call must not happen after a rejected login")
	}))
	defer server.Close()

	repo := NewSessionRepository(server.URL, "wrong", zap.NewNop())
	_, err := repo.FetchSessions(context.Background(), testPeriod(), "en")
	if !errors.Is(err, types.ErrAuthenticationFailed) {
		t.Errorf("error = %v, want ErrAuthenticationFailed", err)
	}
}
