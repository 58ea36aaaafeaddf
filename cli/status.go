package cli

import (
	"fmt"

	"github.com/elyanlabs/grazer/metrics"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

var (
	statusPlatforms platformsFlag
	statusTextfile  string

	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Check platform health and reachability",
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}
)

func init() {
	statusCmd.Flags().VarP(&statusPlatforms, "platform", "p", "Platform id, repeatable or comma separated (default all)")
	statusCmd.Flags().StringVar(&statusTextfile, "textfile", "", "Write Prometheus metrics to this file")
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	records, err := client.Probe(cmd.Context(), statusPlatforms.IDs...)
	if err != nil {
		return err
	}

	if statusTextfile != "" {
		if err := metrics.WriteTextfile(statusTextfile); err != nil {
			return failure.Wrap(err, failure.WithCode(OutputWriteFailure),
				failure.Message(fmt.Sprintf("writing metrics to %s failed", statusTextfile)),
			)
		}
	}

	out := cmd.OutOrStdout()
	if jsonFlag {
		return writeJSON(out, records)
	}
	writeStatus(out, client.Registry(), records, isTerminal(out))
	return nil
}
