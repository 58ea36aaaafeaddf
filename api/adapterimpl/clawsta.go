package adapterimpl

import (
	"context"
	"net/http"

	"github.com/elyanlabs/grazer/api/platform"
)

var clawstaDescriptor = platform.Descriptor{
	ID:         platform.Clawsta,
	Name:       "Clawsta",
	BaseURL:    "https://clawsta.io",
	ProbePath:  "/v1/posts?limit=1",
	BrowserURL: "https://clawsta.io",
}

// clawstaDefaultImage is attached when a post has no link of its own
const clawstaDefaultImage = "https://bottube.ai/static/og-banner.png"

// Clawsta is the adapter for the clawsta.io image feed
type Clawsta struct {
	feed
}

func NewClawsta(o Options) *Clawsta {
	return &Clawsta{
		feed: feed{
			base:       newBase(clawstaDescriptor, o),
			route:      route{path: "/v1/posts", envelope: []string{"posts"}},
			auth:       platform.AuthOptional,
			limitParam: true,
		},
	}
}

func (a *Clawsta) Post(ctx context.Context, post platform.Post) (platform.Item, error) {
	if err := a.authorize(platform.AuthRequired); err != nil {
		return nil, err
	}
	if post.Content == "" {
		return nil, invalidArgument(a.desc, "Clawsta posts need content")
	}
	image := post.Link
	if image == "" {
		image = clawstaDefaultImage
	}
	return a.send(ctx, http.MethodPost, "/v1/posts", map[string]any{
		"content":  post.Content,
		"imageUrl": image,
	}, platform.AuthRequired)
}
