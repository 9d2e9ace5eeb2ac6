package cli

import (
	"github.com/spf13/cobra"

	"github.com/usestring/wetrace/pkg/client"
)

func (a *app) searchCommand() *cobra.Command {
	var (
		opts    client.SearchOptions
		msgType int
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Full-text search over messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("type") {
				opts.Type = &msgType
			}
			v, err := a.client.Search(cmd.Context(), opts)
			return a.emitResult(cmd, v, err)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.Keyword, "keyword", "", "Text to search for")
	f.StringVar(&opts.Talker, "talker", "", "Restrict to one conversation")
	f.StringVar(&opts.Sender, "sender", "", "Restrict to one sender")
	f.IntVar(&msgType, "type", 0, "Message type code")
	f.StringVar(&opts.TimeRange, "time-range", "", "Date range, e.g. 2024-01-01~2024-01-31")
	addPageFlags(cmd, &opts.Limit, &opts.Offset)
	_ = cmd.MarkFlagRequired("keyword")
	return cmd
}

func (a *app) searchContextCommand() *cobra.Command {
	var (
		opts          client.SearchContextOptions
		before, after int
	)
	cmd := &cobra.Command{
		Use:   "search-context",
		Short: "Show the messages around a search hit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Before, opts.After = &before, &after
			v, err := a.client.SearchContext(cmd.Context(), opts)
			return a.emitResult(cmd, v, err)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.Talker, "talker", "", "Conversation of the hit")
	f.Int64Var(&opts.Seq, "seq", 0, "Sequence number of the hit")
	f.IntVar(&before, "before", client.DefaultContextWindow, "Messages before the hit")
	f.IntVar(&after, "after", client.DefaultContextWindow, "Messages after the hit")
	_ = cmd.MarkFlagRequired("talker")
	_ = cmd.MarkFlagRequired("seq")
	return cmd
}
