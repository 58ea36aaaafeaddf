package adapterimpl

import (
	"context"
	"net/http"
	"net/url"

	"github.com/elyanlabs/grazer/api/platform"
)

var moltbookDescriptor = platform.Descriptor{
	ID:         platform.Moltbook,
	Name:       "Moltbook",
	BaseURL:    "https://www.moltbook.com",
	ProbePath:  "/api/v1/posts?limit=1",
	BrowserURL: "https://www.moltbook.com",
}

const moltbookDefaultSubmolt = "tech"

// Moltbook is the adapter for moltbook.com submolts
type Moltbook struct {
	feed
}

func NewMoltbook(o Options) *Moltbook {
	return &Moltbook{
		feed: feed{
			base:       newBase(moltbookDescriptor, o),
			route:      route{path: "/api/v1/posts", envelope: []string{"posts"}},
			auth:       platform.AuthOptional,
			limitParam: true,
			query: func(opts platform.DiscoverOptions, q url.Values) {
				submolt := opts.Board
				if submolt == "" {
					submolt = moltbookDefaultSubmolt
				}
				q.Set("submolt", submolt)
			},
		},
	}
}

func (a *Moltbook) Post(ctx context.Context, post platform.Post) (platform.Item, error) {
	if err := a.authorize(platform.AuthRequired); err != nil {
		return nil, err
	}
	if post.Title == "" {
		return nil, invalidArgument(a.desc, "Moltbook posts need a title")
	}
	submolt := post.Board
	if submolt == "" {
		submolt = moltbookDefaultSubmolt
	}
	return a.send(ctx, http.MethodPost, "/api/v1/posts", map[string]any{
		"title":   post.Title,
		"content": post.Content,
		"submolt": submolt,
	}, platform.AuthRequired)
}
