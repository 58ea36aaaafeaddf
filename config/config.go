// Package config loads ~/.grazer/config.json and applies environment overrides.
// The file is JSON; it is parsed as YAML so hand-written YAML works too.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/elyanlabs/grazer/api/platform"
	"github.com/elyanlabs/grazer/log"
	"github.com/go-playground/validator/v10"
	"github.com/morikuni/failure/v2"
	"gopkg.in/yaml.v3"
)

// ErrorCode classifies configuration failures
type ErrorCode string

const (
	// ErrRead means the config file exists but could not be read
	ErrRead ErrorCode = "ConfigRead"
	// ErrInvalid means the config file could not be parsed or has invalid values
	ErrInvalid ErrorCode = "ConfigInvalid"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

const (
	// PathEnv overrides the config file location
	PathEnv = "GRAZER_CONFIG"

	LLMURLEnv    = "GRAZER_LLM_URL"
	LLMModelEnv  = "GRAZER_LLM_MODEL"
	LLMAPIKeyEnv = "GRAZER_LLM_API_KEY"

	// ClawHubTokenEnv overrides clawhub.token
	ClawHubTokenEnv = "GRAZER_CLAWHUB_TOKEN"

	DefaultTimeout    = 15 * time.Second
	DefaultLLMTimeout = 30 * time.Second
	DefaultLLMModel   = "gpt-oss-120b"
	DefaultLimit      = 10
	DefaultErrorWidth = 60
)

var validate = validator.New()

// Platform holds the settings of one platform section
type Platform struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url" validate:"omitempty,url"`
}

// ClawHub holds the skill registry settings
type ClawHub struct {
	Token   string `yaml:"token"`
	BaseURL string `yaml:"base_url" validate:"omitempty,url"`
}

// ImageGen configures the LLM used for image generation
type ImageGen struct {
	LLMURL            string  `yaml:"llm_url" validate:"omitempty,url"`
	LLMModel          string  `yaml:"llm_model"`
	LLMAPIKey         string  `yaml:"llm_api_key"`
	LLMTimeoutSeconds float64 `yaml:"llm_timeout_seconds" validate:"gte=0"`
}

// Settings tunes the client
type Settings struct {
	TimeoutSeconds float64 `yaml:"timeout_seconds" validate:"gte=0"`
	Limit          int     `yaml:"limit" validate:"min=1,max=100"`
	Concurrency    int     `yaml:"concurrency" validate:"omitempty,min=1,max=64"`
	ErrorWidth     int     `yaml:"error_width" validate:"min=10,max=500"`
	Cache          bool    `yaml:"cache"`
}

// Config is the parsed configuration
type Config struct {
	// Path is the file the config was read from, empty when none existed
	Path string

	Platforms map[platform.ID]Platform `validate:"dive"`
	ClawHub   ClawHub
	ImageGen  ImageGen
	Settings  Settings
}

// reserved top-level keys that are not platforms
const (
	sectionClawHub  = "clawhub"
	sectionImageGen = "imagegen"
	sectionSettings = "settings"
)

// DefaultPath returns ~/.grazer/config.json
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".grazer", "config.json")
	}
	return filepath.Join(home, ".grazer", "config.json")
}

// Load reads the config at path, or at GRAZER_CONFIG, or at DefaultPath.
// A missing file is not an error: public APIs still work without keys.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(PathEnv)
	}
	if path == "" {
		path = DefaultPath()
	}

	cfg := &Config{Platforms: map[platform.ID]Platform{}}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warn("No config found, using public APIs only", "path", path)
	case err != nil:
		return nil, failure.Wrap(err, failure.WithCode(ErrRead),
			failure.Message(fmt.Sprintf("cannot read config %s", path)),
		)
	default:
		if err := cfg.parse(data); err != nil {
			return nil, failure.Wrap(err, failure.WithCode(ErrInvalid),
				failure.Message(fmt.Sprintf("invalid config %s: %v", path, err)),
			)
		}
		cfg.Path = path
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := validate.Struct(cfg); err != nil {
		return nil, failure.Wrap(err, failure.WithCode(ErrInvalid),
			failure.Message(fmt.Sprintf("invalid config: %v", err)),
		)
	}
	return cfg, nil
}

func (c *Config) parse(data []byte) error {
	var sections map[string]yaml.Node
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return err
	}

	for name, node := range sections {
		var err error
		switch name {
		case sectionClawHub:
			err = node.Decode(&c.ClawHub)
		case sectionImageGen:
			err = node.Decode(&c.ImageGen)
		case sectionSettings:
			err = node.Decode(&c.Settings)
		default:
			var p Platform
			err = node.Decode(&p)
			c.Platforms[platform.IDFromString(name)] = p
		}
		if err != nil {
			return fmt.Errorf("section %q: %w", name, err)
		}
	}
	return nil
}

// KeyEnv returns the environment variable holding the key of a platform
func KeyEnv(id platform.ID) string {
	return "GRAZER_" + strings.ToUpper(id.String()) + "_KEY"
}

func (c *Config) applyEnv() {
	for _, id := range platform.KnownIDs {
		if v := os.Getenv(KeyEnv(id)); v != "" {
			p := c.Platforms[id]
			p.APIKey = v
			c.Platforms[id] = p
		}
	}
	if v := os.Getenv(ClawHubTokenEnv); v != "" {
		c.ClawHub.Token = v
	}
	if v := os.Getenv(LLMURLEnv); v != "" {
		c.ImageGen.LLMURL = v
	}
	if v := os.Getenv(LLMModelEnv); v != "" {
		c.ImageGen.LLMModel = v
	}
	if v := os.Getenv(LLMAPIKeyEnv); v != "" {
		c.ImageGen.LLMAPIKey = v
	}
}

func (c *Config) applyDefaults() {
	if c.ImageGen.LLMModel == "" {
		c.ImageGen.LLMModel = DefaultLLMModel
	}
	if c.Settings.Limit == 0 {
		c.Settings.Limit = DefaultLimit
	}
	if c.Settings.ErrorWidth == 0 {
		c.Settings.ErrorWidth = DefaultErrorWidth
	}
}

// Timeout returns the per-call platform timeout
func (c *Config) Timeout() time.Duration {
	return seconds(c.Settings.TimeoutSeconds, DefaultTimeout)
}

// LLMTimeout returns the timeout of one image generation request
func (c *Config) LLMTimeout() time.Duration {
	return seconds(c.ImageGen.LLMTimeoutSeconds, DefaultLLMTimeout)
}

// Credentials returns the configured API keys by platform
func (c *Config) Credentials() map[platform.ID]string {
	out := make(map[platform.ID]string, len(c.Platforms))
	for id, p := range c.Platforms {
		if p.APIKey != "" {
			out[id] = p.APIKey
		}
	}
	return out
}

// BaseURLs returns the base URL overrides by platform, ClawHub included
func (c *Config) BaseURLs() map[platform.ID]string {
	out := map[platform.ID]string{}
	for id, p := range c.Platforms {
		if p.BaseURL != "" {
			out[id] = p.BaseURL
		}
	}
	if c.ClawHub.BaseURL != "" {
		out[platform.ClawHub] = c.ClawHub.BaseURL
	}
	return out
}

func seconds(s float64, def time.Duration) time.Duration {
	if s <= 0 {
		return def
	}
	return time.Duration(s * float64(time.Second))
}
