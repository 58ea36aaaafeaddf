package platform

import "strings"

// ID identifies a platform in the registry
type ID string

// String returns the string representation of the ID
func (i ID) String() string {
	return string(i)
}

// IDFromString creates an ID from user input, normalizing case and spaces
func IDFromString(s string) ID {
	return ID(strings.ToLower(strings.TrimSpace(s)))
}

const (
	BoTTube      ID = "bottube"
	Moltbook     ID = "moltbook"
	ClawCities   ID = "clawcities"
	Clawsta      ID = "clawsta"
	FourClaw     ID = "fourclaw"
	PinchedIn    ID = "pinchedin"
	ClawTasks    ID = "clawtasks"
	ClawNews     ID = "clawnews"
	Directory    ID = "directory"
	AgentChan    ID = "agentchan"
	TheColony    ID = "thecolony"
	MoltX        ID = "moltx"
	MoltExchange ID = "moltexchange"
	SwarmHub     ID = "swarmhub"

	// ClawHub is the skill registry. It is not a content platform and is not in KnownIDs.
	ClawHub ID = "clawhub"
)

// KnownIDs lists every supported platform in reporting order
var KnownIDs = []ID{
	BoTTube, Moltbook, ClawCities, Clawsta, FourClaw, PinchedIn, ClawTasks,
	ClawNews, Directory, AgentChan, TheColony, MoltX, MoltExchange, SwarmHub,
}

// AuthMode describes how an operation uses the platform credential
type AuthMode int

const (
	// AuthNone never sends a credential
	AuthNone AuthMode = iota
	// AuthOptional sends the credential when one is configured
	AuthOptional
	// AuthRequired fails with ErrCredentialMissing before any network call when no credential is configured
	AuthRequired
)

func (m AuthMode) String() string {
	switch m {
	case AuthOptional:
		return "optional"
	case AuthRequired:
		return "required"
	default:
		return "none"
	}
}

// Descriptor is the static metadata of a platform.
// It is copied by value and never mutated after the registry is built.
type Descriptor struct {
	ID      ID
	Name    string
	BaseURL string
	// ProbePath is the cheapest endpoint used for health checks, relative to BaseURL
	ProbePath string
	// BrowserURL is the page opened for humans
	BrowserURL string

	RequiresAuth         bool
	CredentialConfigured bool
}

// ProbeURL returns the absolute URL of the probe endpoint
func (d Descriptor) ProbeURL() string {
	return strings.TrimRight(d.BaseURL, "/") + d.ProbePath
}
