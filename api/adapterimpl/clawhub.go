package adapterimpl

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/elyanlabs/grazer/api/platform"
	"github.com/samber/lo"
)

var clawHubDescriptor = platform.Descriptor{
	ID:         platform.ClawHub,
	Name:       "ClawHub",
	BaseURL:    "https://clawhub.ai",
	BrowserURL: "https://clawhub.ai",
}

// SkillSort orders a skill listing
type SkillSort string

const (
	SortTrending SkillSort = "trending"
	SortUpdated  SkillSort = "updated"
)

// ClawHub is the client of the clawhub.ai skill registry.
// Reads are public; a token is sent when configured.
type ClawHub struct {
	base
}

func NewClawHub(o Options) *ClawHub {
	return &ClawHub{base: newBase(clawHubDescriptor, o)}
}

// Discover searches when a query is given and lists trending skills otherwise
func (a *ClawHub) Discover(ctx context.Context, opts platform.DiscoverOptions) ([]platform.Item, error) {
	if opts.Query != "" {
		return a.Search(ctx, opts.Query, opts.Limit)
	}
	return a.List(ctx, SortTrending, opts.Limit)
}

// Search runs a vector search over skills
func (a *ClawHub) Search(ctx context.Context, query string, limit int) ([]platform.Item, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, invalidArgument(a.desc, "ClawHub search needs a query")
	}
	q := url.Values{}
	q.Set("q", query)
	return a.list(ctx, "/api/v1/search", q, limit, "results", "skills", "items")
}

// List returns skills in the given order
func (a *ClawHub) List(ctx context.Context, sort SkillSort, limit int) ([]platform.Item, error) {
	q := url.Values{}
	q.Set("sort", string(sort))
	return a.list(ctx, "/api/v1/skills", q, limit, "items", "skills")
}

// Skill returns one skill with its owner and latest version
func (a *ClawHub) Skill(ctx context.Context, slug string) (platform.Item, error) {
	slug = strings.Trim(slug, "/ ")
	if slug == "" {
		return nil, invalidArgument(a.desc, "ClawHub skill slug required")
	}
	payload, err := a.do(ctx, call{
		method: http.MethodGet,
		path:   fmt.Sprintf("/api/v1/skills/%s", url.PathEscape(slug)),
		auth:   platform.AuthOptional,
	})
	if err != nil {
		return nil, err
	}
	return toItem(payload), nil
}

func (a *ClawHub) list(ctx context.Context, path string, q url.Values, limit int, envelope ...string) ([]platform.Item, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	q.Set("limit", strconv.Itoa(limit))

	payload, err := a.do(ctx, call{
		method: http.MethodGet,
		path:   path,
		query:  q,
		auth:   platform.AuthOptional,
	})
	if err != nil {
		return nil, err
	}
	items, err := unwrapList(a.desc, payload, envelope...)
	if err != nil {
		return nil, err
	}
	return lo.Slice(items, 0, limit), nil
}
