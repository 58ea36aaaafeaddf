package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/elyanlabs/grazer/api"
	"github.com/elyanlabs/grazer/api/adapter"
	"github.com/elyanlabs/grazer/api/imagegen"
	"github.com/elyanlabs/grazer/config"
	"github.com/elyanlabs/grazer/log"
	"github.com/elyanlabs/grazer/mcp"
	"github.com/elyanlabs/grazer/telemetry"
	"github.com/mattn/go-isatty"
	"github.com/morikuni/failure/v2"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var (
	// Command line flags
	configFlag string
	jsonFlag   bool

	// Root command
	rootCmd = &cobra.Command{
		Use:           "grazer",
		Short:         "Discover and publish content across AI agent platforms",
		SilenceErrors: true,
		SilenceUsage:  true,
		Long: `grazer reads trending content from AI agent social platforms, checks
their health and posts to them, optionally with a generated SVG image.

API keys are read from ~/.grazer/config.json or GRAZER_<PLATFORM>_KEY.
Platforms with public APIs work without any key.`,
	}

	// Version command
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "grazer version %s\n", api.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", api.VersionCommit)
		},
	}

	platformsCmd = &cobra.Command{
		Use:   "platforms",
		Short: "List supported platforms and their capabilities",
		Args:  cobra.NoArgs,
		RunE:  runPlatforms,
	}

	openCmd = &cobra.Command{
		Use:   "open <platform>",
		Short: "Open a platform in the browser",
		Args:  cobra.ExactArgs(1),
		RunE:  runOpen,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default ~/.grazer/config.json)")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Print JSON instead of text")
	rootCmd.AddCommand(
		versionCmd,
		platformsCmd,
		openCmd,
		discoverCmd,
		statusCmd,
		imagegenCmd,
		postCmd,
		commentCmd,
		respondCmd,
		visitCmd,
		statsCmd,
		clawhubCmd,
		mcp.Command(newClient),
	)
}

// Run executes the main CLI functionality
func Run() error {
	ctx := context.Background()
	shutdown, err := telemetry.Init(ctx, "grazer", api.Version)
	if err != nil {
		log.Warn("Tracing disabled", "error", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Warn("Flushing traces failed", "error", err)
			}
		}()
	}
	return rootCmd.ExecuteContext(ctx)
}

// newClient builds a client from the config file and environment
func newClient() (*api.Client, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, err
	}
	return api.New(clientOptions(cfg)), nil
}

func clientOptions(cfg *config.Config) api.Options {
	return api.Options{
		Env: adapter.Env{
			Timeout: cfg.Timeout(),
		},
		Credentials:  cfg.Credentials(),
		BaseURLs:     cfg.BaseURLs(),
		ClawHubToken: cfg.ClawHub.Token,
		LLM: imagegen.LLMConfig{
			URL:     cfg.ImageGen.LLMURL,
			Model:   cfg.ImageGen.LLMModel,
			APIKey:  cfg.ImageGen.LLMAPIKey,
			Timeout: cfg.LLMTimeout(),
		},
		Limit:       cfg.Settings.Limit,
		Concurrency: cfg.Settings.Concurrency,
		ErrorWidth:  cfg.Settings.ErrorWidth,
		Cache:       cfg.Settings.Cache,
	}
}

func runPlatforms(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	type platformInfo struct {
		ID             string   `json:"id"`
		Name           string   `json:"name"`
		URL            string   `json:"url"`
		AuthConfigured bool     `json:"auth_configured"`
		Capabilities   []string `json:"capabilities"`
	}
	var infos []platformInfo
	for _, desc := range client.Platforms() {
		caps, err := client.Capabilities(desc.ID)
		if err != nil {
			return err
		}
		infos = append(infos, platformInfo{
			ID:             desc.ID.String(),
			Name:           desc.Name,
			URL:            desc.BrowserURL,
			AuthConfigured: desc.CredentialConfigured,
			Capabilities:   caps,
		})
	}

	out := cmd.OutOrStdout()
	if jsonFlag {
		return writeJSON(out, infos)
	}
	for _, info := range infos {
		key := "---"
		if info.AuthConfigured {
			key = "key"
		}
		fmt.Fprintf(out, "  %-14s %-16s [%s]  %v\n", info.ID, info.Name, key, info.Capabilities)
	}
	return nil
}

func runOpen(cmd *cobra.Command, args []string) error {
	id, err := parsePlatform(args[0])
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	desc, err := client.Registry().Lookup(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Opening %s in browser: %s\n", desc.Name, desc.BrowserURL)
	if err := browser.OpenURL(desc.BrowserURL); err != nil {
		return failure.Wrap(err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return failure.Wrap(err, failure.WithCode(OutputWriteFailure))
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// display renders markdown with glamour and pages it on a terminal.
// Other writers get the markdown as is.
func display(w io.Writer, md string) error {
	if !isTerminal(w) {
		_, err := io.WriteString(w, md)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return failure.Wrap(err)
	}

	out, err := renderer.Render(md)
	if err != nil {
		return failure.Wrap(err)
	}

	if err := RunPager(out); err != nil {
		return failure.Wrap(err)
	}
	return nil
}
