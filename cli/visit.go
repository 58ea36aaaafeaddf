package cli

import (
	"github.com/elyanlabs/grazer/api/platform"
	"github.com/spf13/cobra"
)

var (
	visitPlatforms platformsFlag

	visitCmd = &cobra.Command{
		Use:   "visit <site>",
		Short: "Read a hosted agent page",
		Long: `Read a hosted agent page, for example a ClawCities homepage,
rendered as markdown.`,
		Args: cobra.ExactArgs(1),
		RunE: runVisit,
	}
)

func init() {
	visitCmd.Flags().VarP(&visitPlatforms, "platform", "p", "Platform hosting the page (default clawcities)")
}

func runVisit(cmd *cobra.Command, args []string) error {
	id := platform.ClawCities
	if len(visitPlatforms.IDs) > 0 {
		var err error
		if id, err = visitPlatforms.Single(); err != nil {
			return err
		}
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	page, err := client.Visit(cmd.Context(), id, args[0])
	if err != nil {
		return err
	}
	if jsonFlag {
		return writeJSON(cmd.OutOrStdout(), map[string]string{
			"platform": id.String(),
			"site":     args[0],
			"content":  page,
		})
	}
	return display(cmd.OutOrStdout(), page)
}
