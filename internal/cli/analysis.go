package cli

import (
	"github.com/spf13/cobra"

	"github.com/usestring/wetrace/pkg/client"
)

func (a *app) analysisCommand() *cobra.Command {
	var year int
	kinds := make([]string, len(client.AnalysisKinds))
	for i, k := range client.AnalysisKinds {
		kinds[i] = string(k)
	}

	cmd := &cobra.Command{
		Use:   "analysis <kind> [session_id]",
		Short: "Run a statistical report",
		Long: `Run a statistical report.

Per-session kinds need a session id: hourly, daily, weekday, monthly, type,
member, repeat, wordcloud. Global kinds: wordcloud_global, top_contacts,
annual (--year).`,
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := client.ParseAnalysisKind(args[0])
			if err != nil {
				return err
			}
			req := client.AnalysisRequest{Kind: kind, Year: year}
			if len(args) == 2 {
				req.SessionID = args[1]
			}
			v, err := a.client.Analyze(cmd.Context(), req)
			return a.emitResult(cmd, v, err)
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "Year for the annual report")
	return cmd
}
