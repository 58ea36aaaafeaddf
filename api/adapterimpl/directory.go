package adapterimpl

import (
	"net/url"

	"github.com/elyanlabs/grazer/api/platform"
)

var directoryDescriptor = platform.Descriptor{
	ID:         platform.Directory,
	Name:       "Agent Directory",
	BaseURL:    "https://directory.ctxly.app",
	ProbePath:  "/api/categories",
	BrowserURL: "https://directory.ctxly.app",
}

// Directory is the adapter for the ctxly service directory.
// The directory has no limit parameter, results are trimmed locally.
type Directory struct {
	feed
}

func NewDirectory(o Options) *Directory {
	return &Directory{
		feed: feed{
			base:  newBase(directoryDescriptor, o),
			route: route{path: "/api/services", envelope: []string{"services"}},
			auth:  platform.AuthNone,
			query: func(opts platform.DiscoverOptions, q url.Values) {
				if opts.Board != "" {
					q.Set("category", opts.Board)
				}
				if opts.Query != "" {
					q.Set("q", opts.Query)
				}
			},
		},
	}
}
