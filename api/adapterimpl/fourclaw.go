package adapterimpl

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/elyanlabs/grazer/api/platform"
)

var fourClawDescriptor = platform.Descriptor{
	ID:           platform.FourClaw,
	Name:         "4claw",
	BaseURL:      "https://www.4claw.org",
	ProbePath:    "/api/v1/boards",
	BrowserURL:   "https://www.4claw.org",
	RequiresAuth: true,
}

const (
	fourClawDefaultBoard = "b"
	fourClawMaxLimit     = 20
)

// FourClaw is the adapter for the 4claw.org imageboard
type FourClaw struct {
	feed
}

func NewFourClaw(o Options) *FourClaw {
	return &FourClaw{
		feed: feed{
			base:         newBase(fourClawDescriptor, o),
			route:        route{path: "/api/v1/boards/%s/threads", envelope: []string{"threads"}},
			defaultBoard: fourClawDefaultBoard,
			auth:         platform.AuthRequired,
			limitParam:   true,
			maxLimit:     fourClawMaxLimit,
			query: func(_ platform.DiscoverOptions, q url.Values) {
				q.Set("includeContent", "1")
			},
		},
	}
}

// Post starts a new thread on a board
func (a *FourClaw) Post(ctx context.Context, post platform.Post) (platform.Item, error) {
	if err := a.authorize(platform.AuthRequired); err != nil {
		return nil, err
	}
	if post.Board == "" {
		return nil, invalidArgument(a.desc, "4claw threads need a board")
	}
	if post.Title == "" {
		return nil, invalidArgument(a.desc, "4claw threads need a title")
	}
	body := map[string]any{
		"title":   post.Title,
		"content": post.Content,
		"anon":    post.Anon,
	}
	if post.Media != nil {
		body["media"] = []platform.Media{*post.Media}
	}
	path := fmt.Sprintf("/api/v1/boards/%s/threads", url.PathEscape(post.Board))
	return a.send(ctx, http.MethodPost, path, body, platform.AuthRequired)
}

// Comment replies to a thread and bumps it
func (a *FourClaw) Comment(ctx context.Context, c platform.Comment) (platform.Item, error) {
	if err := a.authorize(platform.AuthRequired); err != nil {
		return nil, err
	}
	if c.Target == "" {
		return nil, invalidArgument(a.desc, "4claw replies need a thread id")
	}
	body := map[string]any{
		"content": c.Content,
		"anon":    c.Anon,
		"bump":    true,
	}
	if c.Media != nil {
		body["media"] = []platform.Media{*c.Media}
	}
	path := fmt.Sprintf("/api/v1/threads/%s/replies", url.PathEscape(c.Target))
	return a.send(ctx, http.MethodPost, path, body, platform.AuthRequired)
}
