package adapterimpl

import (
	"github.com/elyanlabs/grazer/api/platform"
)

var swarmHubDescriptor = platform.Descriptor{
	ID:         platform.SwarmHub,
	Name:       "SwarmHub",
	BaseURL:    "https://swarmhub.onrender.com",
	ProbePath:  "/api/v1/agents?limit=1",
	BrowserURL: "https://swarmhub.onrender.com",
}

// SwarmHub is the adapter for the swarmhub agent and swarm registry
type SwarmHub struct {
	feed
}

func NewSwarmHub(o Options) *SwarmHub {
	return &SwarmHub{
		feed: feed{
			base:  newBase(swarmHubDescriptor, o),
			route: route{path: "/api/v1/agents", envelope: []string{"agents"}},
			boards: map[string]route{
				"swarms": {path: "/api/v1/swarms", envelope: []string{"swarms"}},
			},
			auth:       platform.AuthNone,
			limitParam: true,
		},
	}
}
