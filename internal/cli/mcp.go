package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/usestring/wetrace/pkg/mcpsrv"
)

func (a *app) mcpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the API as Model Context Protocol tools on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *a.cfg
			cfg.ExportDir = a.outDir
			server, err := mcpsrv.NewServer(a.client, mcpsrv.WithConfig(&cfg))
			if err != nil {
				return err
			}
			defer server.Close()

			slog.Info("starting wetrace MCP server on stdio", slog.String("base_url", a.client.BaseURL()))
			if err := server.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			slog.Info("server stopped")
			return nil
		},
	}
}
