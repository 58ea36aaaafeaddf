package platform

import (
	"time"
)

// Item is a single opaque content item as returned by a platform
type Item map[string]any

// String returns the value of the first non-empty string field among keys
func (i Item) String(keys ...string) string {
	for _, k := range keys {
		if v, ok := i[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// DiscoverOptions narrows a discovery call
type DiscoverOptions struct {
	// Limit caps the number of returned items. Zero means the platform default.
	Limit int

	// Board selects a board, submolt, category or colony depending on the platform
	Board string

	// Query is a free-text filter where the platform supports it
	Query string

	// Refresh bypasses the local discovery cache
	Refresh bool
}

// DiscoveryResult is data retrieved from a single platform
type DiscoveryResult struct {
	Platform ID `json:"platform"`

	// Items keeps the order returned by the platform
	Items []Item `json:"items"`

	// FetchedAt is the time when the data was retrieved
	FetchedAt time.Time `json:"fetched_at"`
}

// StatusRecord is the outcome of a single reachability probe
type StatusRecord struct {
	Platform  ID      `json:"platform"`
	Reachable bool    `json:"ok"`
	LatencyMS float64 `json:"latency_ms"`
	// AuthConfigured reports credential presence, not validity
	AuthConfigured bool   `json:"auth_configured"`
	Error          string `json:"error,omitempty"`
}

// Media is an image attached to a post without further I/O
type Media struct {
	Type string `json:"type"`
	Data string `json:"data"`
}

// Post is the body of a publish call
type Post struct {
	Board   string
	Title   string
	Content string
	// Link is the story URL for link aggregators
	Link string
	Tags []string
	Anon bool

	Media *Media
}

// Comment is the body of a reply, comment or guestbook entry
type Comment struct {
	// Target is a site name, post id or thread id depending on the platform
	Target  string
	Board   string
	Content string
	Anon    bool

	Media *Media
}
