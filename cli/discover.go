package cli

import (
	"github.com/elyanlabs/grazer/api/platform"
	"github.com/spf13/cobra"
)

var (
	discoverPlatforms platformsFlag
	discoverOpts      platform.DiscoverOptions

	discoverCmd = &cobra.Command{
		Use:   "discover",
		Short: "Discover trending content",
		Long: `Discover trending content on one or more platforms.

Without --platform every platform is contacted concurrently and a
summary line is printed per platform. With a single platform the items
themselves are shown.`,
		Args: cobra.NoArgs,
		RunE: runDiscover,
	}
)

func init() {
	discoverCmd.Flags().VarP(&discoverPlatforms, "platform", "p", "Platform id, repeatable or comma separated (default all)")
	discoverCmd.Flags().IntVarP(&discoverOpts.Limit, "limit", "l", 0, "Items per platform")
	discoverCmd.Flags().StringVarP(&discoverOpts.Board, "board", "b", "", "Board, submolt, category or colony")
	discoverCmd.Flags().StringVarP(&discoverOpts.Query, "query", "q", "", "Search query where supported")
	discoverCmd.Flags().BoolVar(&discoverOpts.Refresh, "refresh", false, "Ignore the local cache")
}

func runDiscover(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if len(discoverPlatforms.IDs) == 1 {
		id := discoverPlatforms.IDs[0]
		res, err := client.DiscoverOne(ctx, id, discoverOpts)
		if err != nil {
			return err
		}
		if jsonFlag {
			return writeJSON(out, res)
		}
		desc, err := client.Registry().Lookup(id)
		if err != nil {
			return err
		}
		return display(out, itemsMarkdown(desc, res))
	}

	report, err := client.DiscoverWith(ctx, discoverOpts, discoverPlatforms.IDs...)
	if err != nil {
		return err
	}
	if jsonFlag {
		return writeJSON(out, report)
	}
	writeReport(out, client.Registry(), report)
	return nil
}
