package mcp

import (
	"github.com/elyanlabs/grazer/api"
	"github.com/spf13/cobra"
)

// Command returns the MCP server command. newClient is called once at start.
func Command(newClient func() (*api.Client, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			return NewServer(client).Run()
		},
	}
}
