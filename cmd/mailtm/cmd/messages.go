package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cevapi/mailtm/internal/render"
)

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Inbox operations",
}

var messagesListPage int

var messagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List inbox messages, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		sess, err := authenticate(cmd.Context(), client)
		if err != nil {
			return err
		}
		page, err := client.ListMessages(cmd.Context(), sess, messagesListPage)
		if err != nil {
			return fmt.Errorf("list messages: %w", err)
		}
		fmt.Print(render.Inbox(page, cfg.Output.IntroWidth))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(messagesCmd)
	messagesCmd.AddCommand(messagesListCmd)
	messagesListCmd.Flags().IntVar(&messagesListPage, "page", 1, "result page")
}
