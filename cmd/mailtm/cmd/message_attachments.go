package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var attachmentsDir string

var messagesSaveAttsCmd = &cobra.Command{
	Use:   "save-atts <message-id>",
	Short: "Download all attachments of a message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		sess, err := authenticate(cmd.Context(), client)
		if err != nil {
			return err
		}

		msg, err := client.GetMessage(cmd.Context(), sess, args[0])
		if err != nil {
			return fmt.Errorf("fetch message %s: %w", args[0], err)
		}
		if len(msg.Attachments) == 0 {
			fmt.Println("(no attachments)")
			return nil
		}

		if attachmentsDir != "" {
			if err := os.MkdirAll(attachmentsDir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", attachmentsDir, err)
			}
		}

		for i, att := range msg.Attachments {
			data, err := client.DownloadAttachment(cmd.Context(), sess, msg.ID, att.ID)
			if err != nil {
				return fmt.Errorf("download attachment %s: %w", att.ID, err)
			}

			name := filepath.Base(att.Filename)
			if name == "" || name == "." || name == string(filepath.Separator) {
				name = fmt.Sprintf("attachment-%d", i+1)
			}
			out := filepath.Join(attachmentsDir, name)
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Printf("Saved %s (%d bytes)\n", out, len(data))
		}
		return nil
	},
}

func init() {
	messagesCmd.AddCommand(messagesSaveAttsCmd)
	messagesSaveAttsCmd.Flags().StringVar(&attachmentsDir, "dir", "", "output directory (default: current directory)")
}
