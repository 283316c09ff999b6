package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cevapi/mailtm/internal/eml"
	"github.com/cevapi/mailtm/internal/render"
)

var sourceOut string

var messagesSaveSourceCmd = &cobra.Command{
	Use:   "save-source <message-id>",
	Short: "Save the raw RFC 822 source of a message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		sess, err := authenticate(cmd.Context(), client)
		if err != nil {
			return err
		}

		raw, err := client.SourceBytes(cmd.Context(), sess, args[0])
		if err != nil {
			return fmt.Errorf("fetch source %s: %w", args[0], err)
		}

		out := sourceOut
		if out == "" {
			out = args[0] + ".eml"
		}
		if err := os.WriteFile(out, raw, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Printf("Saved %d bytes to %s\n", len(raw), out)
		return nil
	},
}

var messagesInspectCmd = &cobra.Command{
	Use:   "inspect <message-id>",
	Short: "Parse the raw source and show a MIME summary",
	Long: `Fetch the raw RFC 822 source of a message and print a parsed
summary: decoded headers, the plain-text body, and the attachment
parts. Useful when a message renders oddly and the stored metadata
does not explain why.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		sess, err := authenticate(cmd.Context(), client)
		if err != nil {
			return err
		}

		raw, err := client.SourceBytes(cmd.Context(), sess, args[0])
		if err != nil {
			return fmt.Errorf("fetch source %s: %w", args[0], err)
		}
		sum, err := eml.Summarize(raw)
		if err != nil {
			return fmt.Errorf("parse source %s: %w", args[0], err)
		}
		fmt.Print(render.SourceSummary(sum))
		return nil
	},
}

func init() {
	messagesCmd.AddCommand(messagesSaveSourceCmd)
	messagesCmd.AddCommand(messagesInspectCmd)
	messagesSaveSourceCmd.Flags().StringVar(&sourceOut, "out", "", "output path (default: <message-id>.eml)")
}
