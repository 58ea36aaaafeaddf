package api

import (
	"context"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/elyanlabs/grazer/api/adapter"
	"github.com/elyanlabs/grazer/api/platform"
	"github.com/elyanlabs/grazer/log"
	"github.com/elyanlabs/grazer/metrics"
	"github.com/elyanlabs/grazer/telemetry"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

// Probe checks the reachability of the selected platforms, or of all of them when ids is empty.
// Records are sorted by platform id. Platform failures become unreachable records;
// only an unknown id is returned as an error.
func (c *Client) Probe(ctx context.Context, ids ...platform.ID) ([]platform.StatusRecord, error) {
	adapters, err := c.registry.Select(ids...)
	if err != nil {
		return nil, err
	}

	records := make([]platform.StatusRecord, len(adapters))

	var g errgroup.Group
	g.SetLimit(c.concurrency)
	for i, a := range adapters {
		g.Go(func() error {
			records[i] = c.probeUnit(ctx, a)
			return nil
		})
	}
	g.Wait()

	slices.SortFunc(records, func(a, b platform.StatusRecord) int {
		return strings.Compare(a.Platform.String(), b.Platform.String())
	})
	return records, nil
}

func (c *Client) probeUnit(ctx context.Context, a adapter.Adapter) platform.StatusRecord {
	desc := a.Descriptor()
	ctx, span := telemetry.Start(ctx, "probe", desc.ID.String())
	defer span.End()

	start := time.Now()
	err := a.Probe(ctx)
	elapsed := time.Since(start)

	rec := platform.StatusRecord{
		Platform:       desc.ID,
		Reachable:      err == nil,
		LatencyMS:      latencyMS(elapsed),
		AuthConfigured: desc.CredentialConfigured,
	}
	if err != nil {
		rec.Error = truncate(platform.MessageOf(err), c.errorWidth)
		span.SetStatus(codes.Error, string(platform.CodeOf(err)))
	}

	metrics.ObserveProbe(desc.ID.String(), rec.Reachable, rec.LatencyMS, rec.AuthConfigured)
	log.Debug("Probe finished",
		"platform", desc.ID,
		"ok", rec.Reachable,
		"latency_ms", rec.LatencyMS,
		"code", platform.CodeOf(err),
	)
	return rec
}

// latencyMS rounds to a tenth of a millisecond
func latencyMS(d time.Duration) float64 {
	ms := math.Round(float64(d)/float64(time.Millisecond)*10) / 10
	return math.Max(ms, 0)
}
