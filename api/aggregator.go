package api

import (
	"context"
	"fmt"
	"time"

	"github.com/elyanlabs/grazer/api/adapter"
	"github.com/elyanlabs/grazer/api/platform"
	"github.com/elyanlabs/grazer/log"
	"github.com/elyanlabs/grazer/metrics"
	"github.com/elyanlabs/grazer/telemetry"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

// Discover fetches the latest items of the selected platforms, or of all of them when ids is empty
func (c *Client) Discover(ctx context.Context, ids ...platform.ID) (*Report, error) {
	return c.DiscoverWith(ctx, platform.DiscoverOptions{}, ids...)
}

// DiscoverWith is Discover with explicit options applied to every platform.
// Platform failures never fail the call; they are recorded in the report.
// Only an unknown id is returned as an error, before any platform is contacted.
func (c *Client) DiscoverWith(ctx context.Context, opts platform.DiscoverOptions, ids ...platform.ID) (*Report, error) {
	adapters, err := c.registry.Select(ids...)
	if err != nil {
		return nil, err
	}
	if opts.Limit <= 0 {
		opts.Limit = c.limit
	}

	type outcome struct {
		result platform.DiscoveryResult
		err    error
	}
	outcomes := make([]outcome, len(adapters))

	// Units never return an error so one failure cannot cancel the others
	var g errgroup.Group
	g.SetLimit(c.concurrency)
	for i, a := range adapters {
		g.Go(func() error {
			items, err := c.discoverUnit(ctx, a, opts)
			outcomes[i] = outcome{
				result: platform.DiscoveryResult{
					Platform:  a.Descriptor().ID,
					Items:     items,
					FetchedAt: time.Now(),
				},
				err: err,
			}
			return nil
		})
	}
	g.Wait()

	report := &Report{
		Order:   make([]platform.ID, 0, len(adapters)),
		Results: make(map[platform.ID]platform.DiscoveryResult, len(adapters)),
		Errors:  make(map[platform.ID]ErrorRecord),
	}
	for _, o := range outcomes {
		id := o.result.Platform
		report.Order = append(report.Order, id)
		if o.err != nil {
			o.result.Items = []platform.Item{}
			report.Errors[id] = newErrorRecord(o.err, c.errorWidth)
		}
		report.Results[id] = o.result
	}
	return report, nil
}

func (c *Client) discoverUnit(ctx context.Context, a adapter.Adapter, opts platform.DiscoverOptions) ([]platform.Item, error) {
	id := a.Descriptor().ID
	ctx, span := telemetry.Start(ctx, "discover", id.String())
	defer span.End()

	start := time.Now()
	items, err := a.Discover(ctx, opts)
	if err != nil {
		code := platform.CodeOf(err)
		span.SetStatus(codes.Error, string(code))
		metrics.ObserveDiscoveryError(id.String(), string(code))
		log.Debug("Discovery failed",
			"platform", id,
			"code", code,
			"elapsed", time.Since(start),
			"error", err,
		)
		return nil, err
	}
	if items == nil {
		items = []platform.Item{}
	}
	if opts.Limit > 0 {
		items = lo.Slice(items, 0, opts.Limit)
	}

	metrics.ObserveDiscovery(id.String(), len(items))
	log.Debug("Discovery finished",
		"platform", id,
		"items", len(items),
		"elapsed", time.Since(start),
	)
	return items, nil
}

// DiscoverOne fetches a single platform and returns its error directly
func (c *Client) DiscoverOne(ctx context.Context, id platform.ID, opts platform.DiscoverOptions) (platform.DiscoveryResult, error) {
	a, err := c.registry.Adapter(id)
	if err != nil {
		return platform.DiscoveryResult{}, err
	}
	if opts.Limit <= 0 {
		opts.Limit = c.limit
	}

	fetch := func() ([]platform.Item, error) {
		return c.discoverUnit(ctx, a, opts)
	}

	var items []platform.Item
	if c.cache != nil {
		key := cacheKey(id, opts)
		items, err = c.cache.GetOrSet(key, fetch, opts.Refresh)
		if err != nil && items != nil {
			// Saving to the cache failed but the items are fresh
			log.Warn("Failed to cache discovery result", "platform", id, "error", err)
			err = nil
		}
	} else {
		items, err = fetch()
	}
	if err != nil {
		return platform.DiscoveryResult{}, err
	}

	return platform.DiscoveryResult{
		Platform:  id,
		Items:     items,
		FetchedAt: time.Now(),
	}, nil
}

func cacheKey(id platform.ID, opts platform.DiscoverOptions) string {
	return fmt.Sprintf("%s/%s_%s_%d", id, opts.Board, opts.Query, opts.Limit)
}
