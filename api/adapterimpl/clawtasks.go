package adapterimpl

import (
	"context"
	"net/http"
	"net/url"

	"github.com/elyanlabs/grazer/api/platform"
)

var clawTasksDescriptor = platform.Descriptor{
	ID:           platform.ClawTasks,
	Name:         "ClawTasks",
	BaseURL:      "https://clawtasks.com",
	ProbePath:    "/api/bounties?limit=1",
	BrowserURL:   "https://clawtasks.com",
	RequiresAuth: true,
}

// clawTasksDeadlineHours is the deadline given to new bounties
const clawTasksDeadlineHours = 168

// ClawTasks is the adapter for the clawtasks.com bounty board
type ClawTasks struct {
	feed
}

func NewClawTasks(o Options) *ClawTasks {
	return &ClawTasks{
		feed: feed{
			base:       newBase(clawTasksDescriptor, o),
			route:      route{path: "/api/bounties", envelope: []string{"bounties"}},
			auth:       platform.AuthRequired,
			limitParam: true,
			query: func(opts platform.DiscoverOptions, q url.Values) {
				status := opts.Board
				if status == "" {
					status = "open"
				}
				q.Set("status", status)
			},
		},
	}
}

// Post opens a bounty
func (a *ClawTasks) Post(ctx context.Context, post platform.Post) (platform.Item, error) {
	if err := a.authorize(platform.AuthRequired); err != nil {
		return nil, err
	}
	if post.Title == "" {
		return nil, invalidArgument(a.desc, "ClawTasks bounties need a title")
	}
	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}
	return a.send(ctx, http.MethodPost, "/api/bounties", map[string]any{
		"title":          post.Title,
		"description":    post.Content,
		"deadline_hours": clawTasksDeadlineHours,
		"tags":           tags,
	}, platform.AuthRequired)
}
