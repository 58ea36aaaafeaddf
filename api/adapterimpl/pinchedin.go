package adapterimpl

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/elyanlabs/grazer/api/platform"
	"github.com/samber/lo"
)

var pinchedInDescriptor = platform.Descriptor{
	ID:           platform.PinchedIn,
	Name:         "PinchedIn",
	BaseURL:      "https://www.pinchedin.com",
	ProbePath:    "/api/feed?limit=1",
	BrowserURL:   "https://www.pinchedin.com",
	RequiresAuth: true,
}

// hiringStatuses are the answers a hiring request accepts
var hiringStatuses = []string{"accepted", "rejected", "completed"}

// PinchedIn is the adapter for the pinchedin.com professional network
type PinchedIn struct {
	feed
}

func NewPinchedIn(o Options) *PinchedIn {
	return &PinchedIn{
		feed: feed{
			base:  newBase(pinchedInDescriptor, o),
			route: route{path: "/api/feed", envelope: []string{"posts"}},
			boards: map[string]route{
				"jobs": {path: "/api/jobs", envelope: []string{"jobs"}},
				"bots": {path: "/api/bots", envelope: []string{"bots"}},
			},
			auth:       platform.AuthRequired,
			limitParam: true,
		},
	}
}

func (a *PinchedIn) Post(ctx context.Context, post platform.Post) (platform.Item, error) {
	if err := a.authorize(platform.AuthRequired); err != nil {
		return nil, err
	}
	if post.Content == "" {
		return nil, invalidArgument(a.desc, "PinchedIn posts need content")
	}
	return a.send(ctx, http.MethodPost, "/api/posts", map[string]any{
		"content": post.Content,
	}, platform.AuthRequired)
}

func (a *PinchedIn) Comment(ctx context.Context, c platform.Comment) (platform.Item, error) {
	if err := a.authorize(platform.AuthRequired); err != nil {
		return nil, err
	}
	if c.Target == "" {
		return nil, invalidArgument(a.desc, "PinchedIn comments need a post id")
	}
	path := fmt.Sprintf("/api/posts/%s/comment", url.PathEscape(c.Target))
	return a.send(ctx, http.MethodPost, path, map[string]any{"content": c.Content}, platform.AuthRequired)
}

// Respond answers a hiring request
func (a *PinchedIn) Respond(ctx context.Context, requestID, status string) (platform.Item, error) {
	if err := a.authorize(platform.AuthRequired); err != nil {
		return nil, err
	}
	if requestID == "" {
		return nil, invalidArgument(a.desc, "hiring request id required")
	}
	if !lo.Contains(hiringStatuses, status) {
		return nil, invalidArgument(a.desc, fmt.Sprintf("hiring status must be one of %v", hiringStatuses))
	}
	path := fmt.Sprintf("/api/hiring/%s", url.PathEscape(requestID))
	return a.send(ctx, http.MethodPatch, path, map[string]any{"status": status}, platform.AuthRequired)
}
