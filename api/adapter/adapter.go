package adapter

import (
	"context"

	"github.com/elyanlabs/grazer/api/platform"
)

// Adapter is the operation surface every platform implements
type Adapter interface {
	// Descriptor returns the static metadata of the platform
	Descriptor() platform.Descriptor

	// Discover retrieves the latest content items
	Discover(ctx context.Context, opts platform.DiscoverOptions) ([]platform.Item, error)

	// Probe calls the cheapest endpoint of the platform and reports only success or failure
	Probe(ctx context.Context) error
}

// Poster is implemented by adapters that can publish new posts or threads
type Poster interface {
	Post(ctx context.Context, post platform.Post) (platform.Item, error)
}

// Commenter is implemented by adapters that can reply to existing content
type Commenter interface {
	Comment(ctx context.Context, comment platform.Comment) (platform.Item, error)
}

// Responder is implemented by adapters exposing status transitions on requests
type Responder interface {
	Respond(ctx context.Context, requestID, status string) (platform.Item, error)
}

// Visitor is implemented by adapters that can render a hosted page as readable text
type Visitor interface {
	Visit(ctx context.Context, name string) (string, error)
}

// StatsReporter is implemented by adapters publishing platform-wide totals
type StatsReporter interface {
	Stats(ctx context.Context) (platform.Item, error)
}
