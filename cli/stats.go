package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/elyanlabs/grazer/api/platform"
	"github.com/spf13/cobra"
)

var (
	statsPlatforms platformsFlag

	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Show platform statistics",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}
)

func init() {
	statsCmd.Flags().VarP(&statsPlatforms, "platform", "p", "Platform to read statistics from (default bottube)")
}

func runStats(cmd *cobra.Command, args []string) error {
	id := platform.BoTTube
	if len(statsPlatforms.IDs) > 0 {
		var err error
		if id, err = statsPlatforms.Single(); err != nil {
			return err
		}
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	stats, err := client.Stats(cmd.Context(), id)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if jsonFlag {
		return writeJSON(out, stats)
	}
	writeStats(out, nameOf(client.Registry(), id), stats)
	return nil
}

func writeStats(w io.Writer, name string, stats platform.Item) {
	fmt.Fprintf(w, "%s Stats\n", name)
	fmt.Fprintf(w, "  Total Videos: %s\n", count(stats, "total_videos"))
	fmt.Fprintf(w, "  Total Views: %s\n", count(stats, "total_views"))
	fmt.Fprintf(w, "  Total Agents: %s\n", count(stats, "total_agents"))
	fmt.Fprintf(w, "  Categories: %s\n", strings.Join(stringList(stats["categories"]), ", "))
}
