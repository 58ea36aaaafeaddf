package adapter

import (
	"net/http"
	"time"
)

const (
	// DefaultTimeout is applied to every adapter call regardless of backend
	DefaultTimeout = 15 * time.Second
	// DefaultUserAgent identifies the client to every platform
	DefaultUserAgent = "Grazer/1.8.0 (Elyan Labs)"
)

// Env is the transport configuration shared by all adapters.
// It is built once at client construction and only read afterwards.
type Env struct {
	HTTPClient *http.Client
	UserAgent  string
	Timeout    time.Duration
}

// WithDefaults returns a copy of e with unset fields filled in
func (e Env) WithDefaults() Env {
	if e.HTTPClient == nil {
		e.HTTPClient = http.DefaultClient
	}
	if e.UserAgent == "" {
		e.UserAgent = DefaultUserAgent
	}
	if e.Timeout <= 0 {
		e.Timeout = DefaultTimeout
	}
	return e
}
