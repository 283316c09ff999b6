package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cevapi/mailtm/internal/mailtm"
)

var messagesDeleteCmd = &cobra.Command{
	Use:   "delete <message-id>",
	Short: "Delete a message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		sess, err := authenticate(cmd.Context(), client)
		if err != nil {
			return err
		}
		if err := client.DeleteMessage(cmd.Context(), sess, args[0]); err != nil {
			if mailtm.IsNotFound(err) {
				return fmt.Errorf("no message with id %s", args[0])
			}
			return fmt.Errorf("delete message %s: %w", args[0], err)
		}
		fmt.Println("Message deleted.")
		return nil
	},
}

var messagesMarkSeenCmd = &cobra.Command{
	Use:   "mark-seen <message-id>",
	Short: "Mark a message as seen",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		sess, err := authenticate(cmd.Context(), client)
		if err != nil {
			return err
		}
		if err := client.MarkSeen(cmd.Context(), sess, args[0]); err != nil {
			return fmt.Errorf("mark seen %s: %w", args[0], err)
		}
		fmt.Println("Message marked as seen.")
		return nil
	},
}

func init() {
	messagesCmd.AddCommand(messagesDeleteCmd)
	messagesCmd.AddCommand(messagesMarkSeenCmd)
}
