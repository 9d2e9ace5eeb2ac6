package cli

import (
	"github.com/spf13/cobra"

	"github.com/usestring/wetrace/pkg/client"
)

func (a *app) contactsCommand() *cobra.Command {
	var opts client.ListOptions
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "List contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.client.Contacts(cmd.Context(), opts)
			return a.emitResult(cmd, v, err)
		},
	}
	cmd.Flags().StringVar(&opts.Keyword, "keyword", "", "Filter by name or remark")
	addPageFlags(cmd, &opts.Limit, &opts.Offset)
	return cmd
}

func (a *app) contactCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "contact <id>",
		Short: "Show one contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.client.Contact(cmd.Context(), args[0])
			return a.emitResult(cmd, v, err)
		},
	}
}

func (a *app) needContactCommand() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "need-contact",
		Short: "List contacts you have not talked to recently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.client.NeedContact(cmd.Context(), days)
			return a.emitResult(cmd, v, err)
		},
	}
	cmd.Flags().IntVar(&days, "days", client.DefaultNeedDays, "Silent for at least this many days")
	return cmd
}

func (a *app) chatRoomsCommand() *cobra.Command {
	var opts client.ListOptions
	cmd := &cobra.Command{
		Use:   "chatrooms",
		Short: "List group chats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.client.ChatRooms(cmd.Context(), opts)
			return a.emitResult(cmd, v, err)
		},
	}
	cmd.Flags().StringVar(&opts.Keyword, "keyword", "", "Filter by name")
	addPageFlags(cmd, &opts.Limit, &opts.Offset)
	return cmd
}

func (a *app) chatRoomCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chatroom <id>",
		Short: "Show one group chat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.client.ChatRoom(cmd.Context(), args[0])
			return a.emitResult(cmd, v, err)
		},
	}
}
