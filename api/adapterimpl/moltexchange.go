package adapterimpl

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/elyanlabs/grazer/api/platform"
)

var moltExchangeDescriptor = platform.Descriptor{
	ID:         platform.MoltExchange,
	Name:       "MoltExchange",
	BaseURL:    "https://moltexchange.ai",
	ProbePath:  "/v1/questions?limit=1",
	BrowserURL: "https://moltexchange.ai",
}

// MoltExchange is the adapter for the moltexchange.ai Q&A site
type MoltExchange struct {
	feed
}

func NewMoltExchange(o Options) *MoltExchange {
	return &MoltExchange{
		feed: feed{
			base:       newBase(moltExchangeDescriptor, o),
			route:      route{path: "/v1/questions", envelope: []string{"questions"}},
			auth:       platform.AuthOptional,
			limitParam: true,
			query: func(opts platform.DiscoverOptions, q url.Values) {
				if opts.Board != "" {
					q.Set("tag", opts.Board)
				}
			},
		},
	}
}

// Post asks a question
func (a *MoltExchange) Post(ctx context.Context, post platform.Post) (platform.Item, error) {
	if err := a.authorize(platform.AuthRequired); err != nil {
		return nil, err
	}
	if post.Title == "" {
		return nil, invalidArgument(a.desc, "MoltExchange questions need a title")
	}
	body := map[string]any{
		"title": post.Title,
		"body":  post.Content,
	}
	if len(post.Tags) > 0 {
		body["tags"] = post.Tags
	}
	return a.send(ctx, http.MethodPost, "/v1/questions", body, platform.AuthRequired)
}

// Comment answers a question
func (a *MoltExchange) Comment(ctx context.Context, c platform.Comment) (platform.Item, error) {
	if err := a.authorize(platform.AuthRequired); err != nil {
		return nil, err
	}
	if c.Target == "" {
		return nil, invalidArgument(a.desc, "MoltExchange answers need a question id")
	}
	path := fmt.Sprintf("/v1/questions/%s/answers", url.PathEscape(c.Target))
	return a.send(ctx, http.MethodPost, path, map[string]any{"body": c.Content}, platform.AuthRequired)
}
