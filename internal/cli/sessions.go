package cli

import (
	"github.com/spf13/cobra"

	"github.com/usestring/wetrace/pkg/client"
)

// addPageFlags registers --limit and --offset with the usual defaults.
func addPageFlags(cmd *cobra.Command, limit, offset *int) {
	cmd.Flags().IntVar(limit, "limit", client.DefaultLimit, "Max results to return")
	cmd.Flags().IntVar(offset, "offset", 0, "Pagination offset")
}

func (a *app) sessionsCommand() *cobra.Command {
	var opts client.ListOptions
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List chat sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.client.Sessions(cmd.Context(), opts)
			return a.emitResult(cmd, v, err)
		},
	}
	cmd.Flags().StringVar(&opts.Keyword, "keyword", "", "Filter by name")
	addPageFlags(cmd, &opts.Limit, &opts.Offset)
	return cmd
}

func (a *app) deleteSessionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-session <talker>",
		Short: "Delete a chat session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.client.DeleteSession(cmd.Context(), args[0])
			return a.emitResult(cmd, v, err)
		},
	}
}

func (a *app) messagesCommand() *cobra.Command {
	var opts client.MessagesOptions
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "List messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.client.Messages(cmd.Context(), opts)
			return a.emitResult(cmd, v, err)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.TalkerID, "talker", "", "Conversation username")
	f.StringVar(&opts.SenderID, "sender", "", "Sender username")
	f.StringVar(&opts.Keyword, "keyword", "", "Only messages containing this text")
	f.StringVar(&opts.TimeRange, "time-range", "", "Date range, e.g. 2024-01-01~2024-01-31")
	f.BoolVar(&opts.Reverse, "reverse", false, "Newest first")
	addPageFlags(cmd, &opts.Limit, &opts.Offset)
	return cmd
}

func (a *app) dashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show overview statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.client.Dashboard(cmd.Context())
			return a.emitResult(cmd, v, err)
		},
	}
}
