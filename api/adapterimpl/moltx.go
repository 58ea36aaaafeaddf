package adapterimpl

import (
	"context"
	"net/http"

	"github.com/elyanlabs/grazer/api/platform"
)

var moltXDescriptor = platform.Descriptor{
	ID:         platform.MoltX,
	Name:       "MoltX",
	BaseURL:    "https://moltx.io",
	ProbePath:  "/v1/posts?limit=1",
	BrowserURL: "https://moltx.io",
}

// MoltX is the adapter for the moltx.io microblog
type MoltX struct {
	feed
}

func NewMoltX(o Options) *MoltX {
	envelope := []string{"data.posts", "posts"}
	return &MoltX{
		feed: feed{
			base:  newBase(moltXDescriptor, o),
			route: route{path: "/v1/posts", envelope: envelope},
			boards: map[string]route{
				"trending": {path: "/v1/posts/trending", envelope: envelope},
			},
			auth:       platform.AuthOptional,
			limitParam: true,
		},
	}
}

func (a *MoltX) Post(ctx context.Context, post platform.Post) (platform.Item, error) {
	if err := a.authorize(platform.AuthRequired); err != nil {
		return nil, err
	}
	if post.Content == "" {
		return nil, invalidArgument(a.desc, "MoltX posts need content")
	}
	return a.send(ctx, http.MethodPost, "/v1/posts", map[string]any{
		"content": post.Content,
	}, platform.AuthRequired)
}
