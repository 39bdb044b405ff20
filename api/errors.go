package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"

	"ripple-cli/auth"

	shared "ripple-shared"
)

const connectivityErrorMsg = "Cannot reach server. Please check your connection and try again."
const serverErrorMsg = "Internal server error. Please try again later."

var signedOutHandler func()
var serverOutageHandler func()

var outageMu sync.Mutex
var notifiedServerOutage bool

// SetSignedOutHandler registers the handler invoked after a 401 clears the
// session. Set by main; tests inject their own.
func SetSignedOutHandler(fn func()) {
	signedOutHandler = fn
}

// SetServerOutageHandler registers the handler invoked on a connectivity
// failure or 5xx. It fires at most once per process so a broken backend
// doesn't repeat the notice for every call.
func SetServerOutageHandler(fn func()) {
	serverOutageHandler = fn
}

func notifyServerOutage() {
	outageMu.Lock()
	defer outageMu.Unlock()

	if notifiedServerOutage {
		return
	}
	notifiedServerOutage = true

	if serverOutageHandler != nil {
		serverOutageHandler()
	}
}

// handleApiError normalizes a failed response into an ApiError and applies
// the cross-cutting side effects: 401 always clears the session, 5xx
// triggers the outage notice.
func handleApiError(r *http.Response, errBody []byte) *shared.ApiError {
	apiErr := normalizeError(r, errBody)

	switch {
	case apiErr.Status == http.StatusUnauthorized:
		if err := auth.ClearSession(); err != nil {
			log.Printf("error clearing session after 401: %v", err)
		}
		if signedOutHandler != nil {
			signedOutHandler()
		}
	case apiErr.Status >= 500:
		notifyServerOutage()
	}

	return apiErr
}

// normalizeError produces the uniform message shape, ordered by
// specificity: server-supplied message, then 5xx generic text, then the raw
// string body, then the transport status line. Connectivity failures never
// reach here--they are normalized by connectivityError before a response
// exists.
func normalizeError(r *http.Response, errBody []byte) *shared.ApiError {
	apiErr := &shared.ApiError{
		Type:   errorTypeForStatus(r.StatusCode),
		Status: r.StatusCode,
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var body struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(errBody, &body); err == nil && strings.TrimSpace(body.Message) != "" {
			apiErr.Msg = strings.TrimSpace(body.Message)
			apiErr.FromServer = true
			return apiErr
		}
	}

	if r.StatusCode >= 500 {
		apiErr.Msg = serverErrorMsg
		return apiErr
	}

	if raw := strings.TrimSpace(string(errBody)); raw != "" {
		apiErr.Msg = raw
		return apiErr
	}

	apiErr.Msg = "Request failed: " + r.Status
	return apiErr
}

func connectivityError(err error) *shared.ApiError {
	log.Printf("connectivity error: %v", err)
	notifyServerOutage()

	return &shared.ApiError{
		Type:   shared.ApiErrorTypeConnectivity,
		Status: 0,
		Msg:    connectivityErrorMsg,
	}
}

func errorTypeForStatus(status int) shared.ApiErrorType {
	switch {
	case status == http.StatusUnauthorized:
		return shared.ApiErrorTypeAuth
	case status == http.StatusForbidden:
		return shared.ApiErrorTypeForbidden
	case status == http.StatusNotFound:
		return shared.ApiErrorTypeNotFound
	case status >= 500:
		return shared.ApiErrorTypeServer
	default:
		return shared.ApiErrorTypeOther
	}
}
