package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cevapi/mailtm/internal/mailtm"
	"github.com/cevapi/mailtm/internal/render"
)

var (
	readMarkSeen   bool
	latestMarkSeen bool
)

var messagesReadCmd = &cobra.Command{
	Use:   "read <message-id>",
	Short: "Show a message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		sess, err := authenticate(cmd.Context(), client)
		if err != nil {
			return err
		}

		msg, err := client.GetMessage(cmd.Context(), sess, args[0])
		if err != nil {
			if mailtm.IsNotFound(err) {
				return fmt.Errorf("no message with id %s", args[0])
			}
			return fmt.Errorf("fetch message %s: %w", args[0], err)
		}
		if readMarkSeen && !msg.Seen {
			if err := client.MarkSeen(cmd.Context(), sess, msg.ID); err != nil {
				return fmt.Errorf("mark seen: %w", err)
			}
			// Re-fetch so the printed record reflects the patch.
			msg, err = client.GetMessage(cmd.Context(), sess, msg.ID)
			if err != nil {
				return fmt.Errorf("fetch message %s: %w", args[0], err)
			}
		}

		fmt.Print(render.MessageView(msg))
		return nil
	},
}

var messagesLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the newest message in the inbox",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		sess, err := authenticate(cmd.Context(), client)
		if err != nil {
			return err
		}

		page, err := client.ListMessages(cmd.Context(), sess, 1)
		if err != nil {
			return fmt.Errorf("list messages: %w", err)
		}
		if len(page.Items) == 0 {
			fmt.Println("(inbox empty)")
			return nil
		}
		newest := mailtm.SortMessagesDesc(page.Items)[0]

		msg, err := client.GetMessage(cmd.Context(), sess, newest.ID)
		if err != nil {
			return fmt.Errorf("fetch message %s: %w", newest.ID, err)
		}
		if latestMarkSeen && !msg.Seen {
			if err := client.MarkSeen(cmd.Context(), sess, msg.ID); err != nil {
				return fmt.Errorf("mark seen: %w", err)
			}
			msg, err = client.GetMessage(cmd.Context(), sess, msg.ID)
			if err != nil {
				return fmt.Errorf("fetch message %s: %w", newest.ID, err)
			}
		}

		fmt.Print(render.MessageView(msg))
		return nil
	},
}

func init() {
	messagesCmd.AddCommand(messagesReadCmd)
	messagesCmd.AddCommand(messagesLatestCmd)
	messagesReadCmd.Flags().BoolVar(&readMarkSeen, "mark-seen", false, "mark the message as seen")
	messagesLatestCmd.Flags().BoolVar(&latestMarkSeen, "mark-seen", false, "mark the message as seen")
}
