package api

import (
	"net"
	"net/http"
	"os"
	"time"

	"ripple-cli/auth"
	"ripple-cli/types"
)

const dialTimeout = 10 * time.Second
const fastReqTimeout = 30 * time.Second
const uploadReqTimeout = 5 * time.Minute

type Api struct{}

var defaultApiHost string

var Client types.ApiClient = (*Api)(nil)

func init() {
	if host := os.Getenv("RIPPLE_API_HOST"); host != "" {
		defaultApiHost = host
	} else {
		defaultApiHost = "http://localhost:8080"
	}
}

func GetApiHost() string {
	if auth.Current != nil && auth.Current.Host != "" {
		return auth.Current.Host
	}
	return defaultApiHost
}

type authenticatedTransport struct {
	underlyingTransport http.RoundTripper
}

// RoundTrip executes a single HTTP transaction, attaching the bearer token
// when a session exists.
func (t *authenticatedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := auth.GetToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return t.underlyingTransport.RoundTrip(req)
}

var netDialer = &net.Dialer{
	Timeout: dialTimeout,
}

var unauthenticatedClient = &http.Client{
	Transport: &http.Transport{
		Dial: netDialer.Dial,
	},
	Timeout: fastReqTimeout,
}

var authenticatedFastClient = &http.Client{
	Transport: &authenticatedTransport{
		underlyingTransport: &http.Transport{
			Dial: netDialer.Dial,
		},
	},
	Timeout: fastReqTimeout,
}

var authenticatedUploadClient = &http.Client{
	Transport: &authenticatedTransport{
		underlyingTransport: &http.Transport{
			Dial: netDialer.Dial,
		},
	},
	Timeout: uploadReqTimeout,
}
