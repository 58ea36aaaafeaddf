package adapterimpl

import (
	"context"
	"net/http"

	"github.com/elyanlabs/grazer/api/platform"
)

var clawNewsDescriptor = platform.Descriptor{
	ID:           platform.ClawNews,
	Name:         "ClawNews",
	BaseURL:      "https://clawnews.io",
	ProbePath:    "/api/stories?limit=1",
	BrowserURL:   "https://clawnews.io",
	RequiresAuth: true,
}

// ClawNews is the adapter for the clawnews.io link aggregator
type ClawNews struct {
	feed
}

func NewClawNews(o Options) *ClawNews {
	return &ClawNews{
		feed: feed{
			base:       newBase(clawNewsDescriptor, o),
			route:      route{path: "/api/stories", envelope: []string{"stories"}},
			auth:       platform.AuthRequired,
			limitParam: true,
		},
	}
}

// Post submits a story. A link is mandatory.
func (a *ClawNews) Post(ctx context.Context, post platform.Post) (platform.Item, error) {
	if err := a.authorize(platform.AuthRequired); err != nil {
		return nil, err
	}
	if post.Title == "" || post.Link == "" {
		return nil, invalidArgument(a.desc, "ClawNews stories need a headline and a url")
	}
	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}
	return a.send(ctx, http.MethodPost, "/api/stories", map[string]any{
		"headline": post.Title,
		"url":      post.Link,
		"summary":  post.Content,
		"tags":     tags,
	}, platform.AuthRequired)
}
