package api

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"ripple-cli/auth"
	"ripple-cli/fs"

	shared "ripple-shared"
)

func setupSession(t *testing.T, host string) {
	t.Helper()

	dir := t.TempDir()
	prevAuthPath, prevUserPath := fs.AuthPath, fs.UserCachePath
	fs.AuthPath = filepath.Join(dir, "auth.json")
	fs.UserCachePath = filepath.Join(dir, "user.json")

	prevCurrent := auth.Current
	auth.Current = &shared.ClientAuth{Token: "test-token", Host: host}

	t.Cleanup(func() {
		fs.AuthPath, fs.UserCachePath = prevAuthPath, prevUserPath
		auth.Current = prevCurrent
	})
}

func resetOutage(t *testing.T) {
	t.Helper()

	outageMu.Lock()
	notifiedServerOutage = false
	outageMu.Unlock()

	t.Cleanup(func() {
		SetServerOutageHandler(nil)
		SetSignedOutHandler(nil)
	})
}

func newErrResponse(status int, contentType, body string) *http.Response {
	header := http.Header{}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     header,
	}
}

func TestNormalizeErrorOrdering(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantMsg     string
		wantServer  bool
	}{
		{
			name:        "server json message wins",
			status:      400,
			contentType: "application/json",
			body:        `{"message": "Title is required"}`,
			wantMsg:     "Title is required",
			wantServer:  true,
		},
		{
			name:        "json message wins even on 5xx",
			status:      502,
			contentType: "application/json",
			body:        `{"message": "upstream down"}`,
			wantMsg:     "upstream down",
			wantServer:  true,
		},
		{
			name:    "5xx without message gets generic text",
			status:  500,
			body:    "<html>panic</html>",
			wantMsg: "Internal server error. Please try again later.",
		},
		{
			name:        "malformed json on 5xx gets generic text",
			status:      503,
			contentType: "application/json",
			body:        "not json",
			wantMsg:     "Internal server error. Please try again later.",
		},
		{
			name:    "raw body used for 4xx",
			status:  400,
			body:    "  bad input  ",
			wantMsg: "bad input",
		},
		{
			name:    "empty body falls back to status line",
			status:  404,
			wantMsg: "Request failed: Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newErrResponse(tt.status, tt.contentType, tt.body)
			apiErr := normalizeError(r, []byte(tt.body))

			if apiErr.Msg != tt.wantMsg {
				t.Errorf("msg: got %q, want %q", apiErr.Msg, tt.wantMsg)
			}
			if apiErr.FromServer != tt.wantServer {
				t.Errorf("fromServer: got %v, want %v", apiErr.FromServer, tt.wantServer)
			}
			if apiErr.Status != tt.status {
				t.Errorf("status: got %d, want %d", apiErr.Status, tt.status)
			}
		})
	}
}

func TestErrorTypeForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   shared.ApiErrorType
	}{
		{401, shared.ApiErrorTypeAuth},
		{403, shared.ApiErrorTypeForbidden},
		{404, shared.ApiErrorTypeNotFound},
		{500, shared.ApiErrorTypeServer},
		{503, shared.ApiErrorTypeServer},
		{400, shared.ApiErrorTypeOther},
		{409, shared.ApiErrorTypeOther},
	}

	for _, tt := range tests {
		if got := errorTypeForStatus(tt.status); got != tt.want {
			t.Errorf("errorTypeForStatus(%d): got %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestUnauthorizedClearsSession(t *testing.T) {
	resetOutage(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "", http.StatusUnauthorized)
	}))
	defer server.Close()

	setupSession(t, server.URL)

	signedOut := 0
	SetSignedOutHandler(func() { signedOut++ })

	_, apiErr := Client.GetMe()

	if apiErr == nil || apiErr.Type != shared.ApiErrorTypeAuth {
		t.Fatalf("expected auth error, got %+v", apiErr)
	}
	if auth.IsLoggedIn() {
		t.Error("401 must clear the stored session")
	}
	if signedOut != 1 {
		t.Errorf("signed-out handler calls: got %d, want 1", signedOut)
	}
}

func TestServerOutageNotifiedOnce(t *testing.T) {
	resetOutage(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "", http.StatusInternalServerError)
	}))
	defer server.Close()

	setupSession(t, server.URL)

	outages := 0
	SetServerOutageHandler(func() { outages++ })

	for i := 0; i < 3; i++ {
		_, apiErr := Client.GetFeed()
		if apiErr == nil || apiErr.Type != shared.ApiErrorTypeServer {
			t.Fatalf("expected server error, got %+v", apiErr)
		}
	}

	if outages != 1 {
		t.Errorf("outage handler calls: got %d, want 1", outages)
	}
}

func TestConnectivityError(t *testing.T) {
	resetOutage(t)

	// a closed port: the listener is shut down before the call
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	host := server.URL
	server.Close()

	setupSession(t, host)

	outages := 0
	SetServerOutageHandler(func() { outages++ })

	_, apiErr := Client.GetFeed()

	if apiErr == nil || apiErr.Type != shared.ApiErrorTypeConnectivity {
		t.Fatalf("expected connectivity error, got %+v", apiErr)
	}
	if !strings.Contains(apiErr.Msg, "Cannot reach server") {
		t.Errorf("connectivity message: got %q", apiErr.Msg)
	}
	if outages != 1 {
		t.Errorf("outage handler calls: got %d, want 1", outages)
	}
}
