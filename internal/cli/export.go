package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/usestring/wetrace/internal/exportfile"
	"github.com/usestring/wetrace/pkg/client"
)

func (a *app) exportCommand() *cobra.Command {
	var req client.ExportRequest
	kinds := make([]string, len(client.ExportKinds))
	for i, k := range client.ExportKinds {
		kinds[i] = string(k)
	}

	cmd := &cobra.Command{
		Use:       "export <" + strings.Join(kinds, "|") + ">",
		Short:     "Download an export and save it to the export directory",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := client.ParseExportKind(args[0])
			if err != nil {
				return err
			}
			req.Kind = kind
			if kind == client.ExportContacts && !cmd.Flags().Changed("format") {
				req.Format = client.FormatCSV
			}
			if !client.ValidFormat(req.Format) {
				return fmt.Errorf("unknown export format %q (want one of %s)", req.Format, strings.Join(client.ExportFormats, ", "))
			}

			data, err := a.client.Export(cmd.Context(), req)
			if err != nil {
				return err
			}
			saved, err := exportfile.Save(a.outDir, string(kind), req.Talker, req.Format, data)
			if err != nil {
				return err
			}
			slog.Debug("export saved", slog.String("path", saved.Path), slog.String("size", saved.Size()))

			path := lipgloss.NewRenderer(a.stdout).NewStyle().Foreground(lipgloss.Color("42")).Render(saved.Path)
			_, err = fmt.Fprintf(a.stdout, "file saved to: %s\n", path)
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&req.Talker, "talker", "", "Conversation username")
	f.StringVar(&req.Name, "name", "", "Display name used in the export")
	f.StringVar(&req.TimeRange, "time-range", "", "Date range, e.g. 2024-01-01~2024-01-31")
	f.StringVar(&req.Format, "format", client.FormatHTML, "Export format: "+strings.Join(client.ExportFormats, ", "))
	f.StringVar(&req.Keyword, "keyword", "", "Filter contacts (contacts export only)")
	return cmd
}
