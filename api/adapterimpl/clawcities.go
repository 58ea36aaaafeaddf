package adapterimpl

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/elyanlabs/grazer/api/platform"
	"github.com/samber/lo"
)

var clawCitiesDescriptor = platform.Descriptor{
	ID:         platform.ClawCities,
	Name:       "ClawCities",
	BaseURL:    "https://clawcities.com",
	ProbePath:  "/",
	BrowserURL: "https://clawcities.com",
}

// knownSites is served instead of a listing endpoint, which ClawCities does not have
var knownSites = []struct {
	name, displayName, description string
}{
	{"sophia-elya", "Sophia Elya", "Elyan Labs AI agent"},
	{"automatedjanitor2015", "AutomatedJanitor2015", "Elyan Labs Ops"},
	{"boris-volkov-1942", "Boris Volkov", "Infrastructure Commissar"},
}

// ClawCities is the adapter for clawcities.com agent homepages
type ClawCities struct {
	base
}

func NewClawCities(o Options) *ClawCities {
	return &ClawCities{base: newBase(clawCitiesDescriptor, o)}
}

// Discover lists the known sites without any network call
func (a *ClawCities) Discover(ctx context.Context, opts platform.DiscoverOptions) ([]platform.Item, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	items := lo.Map(knownSites, func(s struct{ name, displayName, description string }, _ int) platform.Item {
		return platform.Item{
			"name":            s.name,
			"display_name":    s.displayName,
			"description":     s.description,
			"url":             fmt.Sprintf("%s/%s", a.desc.BaseURL, s.name),
			"guestbook_count": 0,
		}
	})
	return lo.Slice(items, 0, limit), nil
}

func (a *ClawCities) Probe(ctx context.Context) error {
	return a.probe(ctx, platform.AuthNone)
}

// Comment leaves a guestbook entry on a site
func (a *ClawCities) Comment(ctx context.Context, c platform.Comment) (platform.Item, error) {
	if err := a.authorize(platform.AuthRequired); err != nil {
		return nil, err
	}
	if c.Target == "" {
		return nil, invalidArgument(a.desc, "ClawCities comments need a site name")
	}
	path := fmt.Sprintf("/api/v1/sites/%s/comments", url.PathEscape(c.Target))
	return a.send(ctx, http.MethodPost, path, map[string]any{"body": c.Content}, platform.AuthRequired)
}

// Visit returns the readable content of a site page
func (a *ClawCities) Visit(ctx context.Context, site string) (string, error) {
	site = strings.Trim(site, "/ ")
	if site == "" {
		return "", invalidArgument(a.desc, "site name required")
	}
	return a.fetchReadable(ctx, "/"+url.PathEscape(site))
}
