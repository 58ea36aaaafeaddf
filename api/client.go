package api

import (
	"net/http"

	"github.com/elyanlabs/grazer/api/adapter"
	"github.com/elyanlabs/grazer/api/adapterimpl"
	"github.com/elyanlabs/grazer/api/cache"
	"github.com/elyanlabs/grazer/api/imagegen"
	"github.com/elyanlabs/grazer/api/platform"
	"github.com/elyanlabs/grazer/api/registry"
	"github.com/elyanlabs/grazer/log"
	"github.com/elyanlabs/grazer/telemetry"
)

const (
	// DefaultLimit caps the items kept per platform in a discovery report
	DefaultLimit = 10
	// DefaultErrorWidth truncates error messages recorded in reports
	DefaultErrorWidth = 60
)

// Options configures a Client
type Options struct {
	Env adapter.Env

	// Credentials maps a platform to its API key
	Credentials map[platform.ID]string
	// BaseURLs overrides platform base URLs
	BaseURLs map[platform.ID]string

	// ClawHubToken authenticates skill registry calls; reads work without it
	ClawHubToken string

	LLM imagegen.LLMConfig

	Limit       int
	Concurrency int // zero contacts every platform at once
	ErrorWidth  int

	// Cache enables the disk cache for single platform discovery
	Cache bool

	// Adapters replaces the built-in platform catalog
	Adapters []adapter.Adapter
}

// Client is the entry point for every platform operation.
// Its registry and credentials are fixed at construction.
type Client struct {
	registry *registry.Registry
	synth    *imagegen.Synthesizer
	skills   *adapterimpl.ClawHub
	cache    *cache.Cache[[]platform.Item]

	limit       int
	concurrency int
	errorWidth  int
}

// New builds a client and its registry
func New(o Options) *Client {
	if o.Env.HTTPClient == nil {
		o.Env.HTTPClient = &http.Client{
			Transport: telemetry.Transport(log.Transport(http.DefaultTransport)),
		}
	}
	if o.Env.UserAgent == "" {
		o.Env.UserAgent = UserAgent()
	}
	o.Env = o.Env.WithDefaults()

	if o.LLM.HTTPClient == nil {
		o.LLM.HTTPClient = o.Env.HTTPClient
	}

	adapters := o.Adapters
	if adapters == nil {
		adapters = adapterimpl.All(adapterimpl.Settings{
			Env:         o.Env,
			Credentials: o.Credentials,
			BaseURLs:    o.BaseURLs,
		})
	}

	skills := adapterimpl.NewClawHub(adapterimpl.Options{
		Env:        o.Env,
		Credential: o.ClawHubToken,
		BaseURL:    o.BaseURLs[platform.ClawHub],
	})

	c := &Client{
		registry:    registry.New(adapters...),
		synth:       imagegen.New(o.LLM),
		skills:      skills,
		limit:       orDefault(o.Limit, DefaultLimit),
		concurrency: orDefault(o.Concurrency, max(len(adapters), 1)),
		errorWidth:  orDefault(o.ErrorWidth, DefaultErrorWidth),
	}
	if o.Cache {
		c.cache = cache.New[[]platform.Item]("discover")
	}
	return c
}

// Registry returns the read-only platform registry
func (c *Client) Registry() *registry.Registry {
	return c.registry
}

// Platforms returns every platform descriptor in registry order
func (c *Client) Platforms() []platform.Descriptor {
	return c.registry.All()
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
