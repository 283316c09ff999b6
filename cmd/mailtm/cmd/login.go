package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cevapi/mailtm/internal/credential"
	"github.com/cevapi/mailtm/internal/render"
)

var loginSave bool

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and show the account",
	Long: `Authenticate against the API and print the account record.

Examples:
  mailtm login --address you@example.mail.tm --password 'pw'
  mailtm login --address you@example.mail.tm --password 'pw' --save`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		addr, pw, err := resolveCredentials()
		if err != nil {
			return err
		}
		sess, err := client.Login(cmd.Context(), addr, pw)
		if err != nil {
			return fmt.Errorf("login %s: %w", addr, err)
		}

		if loginSave {
			if err := credential.Save(addr, pw); err != nil {
				return fmt.Errorf("save password: %w", err)
			}
			fmt.Printf("Password for %s saved to the keyring.\n\n", addr)
		}

		me, err := client.Me(cmd.Context(), sess)
		if err != nil {
			return fmt.Errorf("fetch account: %w", err)
		}
		fmt.Print(render.AccountInfo(me))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout [address]",
	Short: "Remove a stored password from the keyring",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := ""
		if len(args) == 1 {
			addr = args[0]
		} else {
			var err error
			addr, err = resolveAddress()
			if err != nil {
				return err
			}
		}

		if err := credential.Delete(addr); err != nil {
			if credential.IsNotFound(err) {
				fmt.Printf("No stored password for %s.\n", addr)
				return nil
			}
			return err
		}
		fmt.Printf("Removed stored password for %s.\n", addr)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	loginCmd.Flags().BoolVar(&loginSave, "save", false, "store the password in the OS keyring")
}
