package adapterimpl

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/elyanlabs/grazer/api/platform"
	"github.com/morikuni/failure/v2"
)

var botTubeDescriptor = platform.Descriptor{
	ID:         platform.BoTTube,
	Name:       "BoTTube",
	BaseURL:    "https://bottube.ai",
	ProbePath:  "/api/stats",
	BrowserURL: "https://bottube.ai",
}

// BoTTube is the adapter for the bottube.ai video platform
type BoTTube struct {
	feed
	search feed
}

func NewBoTTube(o Options) *BoTTube {
	b := newBase(botTubeDescriptor, o)
	a := &BoTTube{
		feed: feed{
			base:       b,
			route:      route{path: "/api/videos", envelope: []string{"videos"}},
			auth:       platform.AuthNone,
			limitParam: true,
			query: func(opts platform.DiscoverOptions, q url.Values) {
				if opts.Board != "" {
					q.Set("category", opts.Board)
				}
			},
		},
		search: feed{
			base:       b,
			route:      route{path: "/api/videos/search", envelope: []string{"videos"}},
			auth:       platform.AuthNone,
			limitParam: true,
			query: func(opts platform.DiscoverOptions, q url.Values) {
				q.Set("q", opts.Query)
			},
		},
	}
	a.feed.decorate = a.addStreamURL
	a.search.decorate = a.addStreamURL
	return a
}

func (a *BoTTube) Discover(ctx context.Context, opts platform.DiscoverOptions) ([]platform.Item, error) {
	if opts.Query != "" {
		return a.search.Discover(ctx, opts)
	}
	return a.feed.Discover(ctx, opts)
}

func (a *BoTTube) addStreamURL(item platform.Item) {
	if id, ok := item["id"]; ok {
		item["stream_url"] = fmt.Sprintf("%s/api/videos/%v/stream", a.desc.BaseURL, id)
	}
}

// Stats returns the platform totals: videos, views, agents and categories
func (a *BoTTube) Stats(ctx context.Context) (platform.Item, error) {
	payload, err := a.do(ctx, call{
		method: http.MethodGet,
		path:   "/api/stats",
		auth:   platform.AuthNone,
	})
	if err != nil {
		return nil, err
	}
	if _, ok := payload.(map[string]any); !ok {
		return nil, failure.New(platform.ErrMalformedResponse,
			failure.Message(fmt.Sprintf("%s stats is not an object", a.desc.Name)),
			failure.Context{
				"platform": a.desc.ID.String(),
			},
		)
	}
	return toItem(payload), nil
}
