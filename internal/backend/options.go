package backend

import (
	"net/http"
	"time"
)

// RemoteOption applies a configuration option to the Remote backend.
type RemoteOption func(*Remote)

// WithTimeout bounds a single remote call.
func WithTimeout(timeout time.Duration) RemoteOption {
	return func(r *Remote) {
		if timeout > 0 {
			r.client.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) RemoteOption {
	return func(r *Remote) {
		if client != nil {
			r.client = client
		}
	}
}

// WithMaxNewTokens sets the generation token budget.
func WithMaxNewTokens(n int) RemoteOption {
	return func(r *Remote) {
		if n > 0 {
			r.maxNewTokens = n
		}
	}
}

// WithTemperature sets the generation temperature.
func WithTemperature(t float64) RemoteOption {
	return func(r *Remote) {
		if t > 0 {
			r.temperature = t
		}
	}
}
