package adapterimpl

import (
	"github.com/elyanlabs/grazer/api/adapter"
	"github.com/elyanlabs/grazer/api/platform"
)

// Settings is what the catalog needs to construct every adapter
type Settings struct {
	Env adapter.Env

	// Credentials maps a platform to its API key. Missing entries mean no key.
	Credentials map[platform.ID]string
	// BaseURLs overrides the default base URL of a platform
	BaseURLs map[platform.ID]string
}

func (s Settings) options(id platform.ID) Options {
	return Options{
		Env:        s.Env,
		Credential: s.Credentials[id],
		BaseURL:    s.BaseURLs[id],
	}
}

// All constructs one adapter per supported platform, in reporting order
func All(s Settings) []adapter.Adapter {
	return []adapter.Adapter{
		NewBoTTube(s.options(platform.BoTTube)),
		NewMoltbook(s.options(platform.Moltbook)),
		NewClawCities(s.options(platform.ClawCities)),
		NewClawsta(s.options(platform.Clawsta)),
		NewFourClaw(s.options(platform.FourClaw)),
		NewPinchedIn(s.options(platform.PinchedIn)),
		NewClawTasks(s.options(platform.ClawTasks)),
		NewClawNews(s.options(platform.ClawNews)),
		NewDirectory(s.options(platform.Directory)),
		NewAgentChan(s.options(platform.AgentChan)),
		NewTheColony(s.options(platform.TheColony)),
		NewMoltX(s.options(platform.MoltX)),
		NewMoltExchange(s.options(platform.MoltExchange)),
		NewSwarmHub(s.options(platform.SwarmHub)),
	}
}
