package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cevapi/mailtm/internal/credential"
	"github.com/cevapi/mailtm/internal/mailtm"
	"github.com/cevapi/mailtm/internal/render"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Account operations",
}

var (
	createLocal      string
	createDomain     string
	createRandom     bool
	createSave       bool
	createPrintLogin bool
)

var accountCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new account",
	Long: `Create a new account on one of the public domains.

Examples:
  mailtm account create --random --password 'pw'
  mailtm account create --local myuser --domain example.mail.tm --password 'pw' --save`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if password == "" {
			return errors.New("account create requires --password")
		}

		client := newClient()

		domain := createDomain
		if domain == "" {
			var err error
			domain, err = client.PickDomain(cmd.Context())
			if err != nil {
				return fmt.Errorf("pick domain: %w", err)
			}
		}

		local := createLocal
		if local == "" && createRandom {
			local = mailtm.RandomLocalPart(10)
		}
		if local == "" {
			return errors.New("need --local or --random")
		}

		addr := local + "@" + domain
		raw, err := client.CreateAccount(cmd.Context(), addr, password)
		if err != nil {
			return fmt.Errorf("create account %s: %w", addr, err)
		}

		fmt.Println("Account created")
		printJSON(raw)

		if createSave {
			if err := credential.Save(addr, password); err != nil {
				return fmt.Errorf("save password: %w", err)
			}
			fmt.Printf("Password for %s saved to the keyring.\n", addr)
		}

		if createPrintLogin {
			sess, err := client.Login(cmd.Context(), addr, password)
			if err != nil {
				return fmt.Errorf("login %s: %w", addr, err)
			}
			me, err := client.Me(cmd.Context(), sess)
			if err != nil {
				return fmt.Errorf("fetch account: %w", err)
			}
			fmt.Println()
			fmt.Print(render.AccountInfo(me))
		}
		return nil
	},
}

var accountMeCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the authenticated account",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		sess, err := authenticate(cmd.Context(), client)
		if err != nil {
			return err
		}
		me, err := client.Me(cmd.Context(), sess)
		if err != nil {
			return fmt.Errorf("fetch account: %w", err)
		}
		fmt.Print(render.AccountInfo(me))
		return nil
	},
}

var accountGetCmd = &cobra.Command{
	Use:   "get <account-id>",
	Short: "Fetch an account record by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		sess, err := authenticate(cmd.Context(), client)
		if err != nil {
			return err
		}
		raw, err := client.AccountJSON(cmd.Context(), sess, args[0])
		if err != nil {
			return fmt.Errorf("fetch account %s: %w", args[0], err)
		}
		printJSON(raw)
		return nil
	},
}

var accountDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the authenticated account",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		sess, err := authenticate(cmd.Context(), client)
		if err != nil {
			return err
		}

		id := sess.AccountID
		if id == "" {
			me, err := client.Me(cmd.Context(), sess)
			if err != nil {
				return fmt.Errorf("fetch account: %w", err)
			}
			id = me.ID
		}
		if id == "" {
			return errors.New("cannot determine account id")
		}

		if err := client.DeleteAccount(cmd.Context(), sess, id); err != nil {
			return fmt.Errorf("delete account: %w", err)
		}
		fmt.Println("Account deleted.")
		return nil
	},
}

var accountDeleteIDCmd = &cobra.Command{
	Use:   "delete-id <account-id>",
	Short: "Delete an account by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		sess, err := authenticate(cmd.Context(), client)
		if err != nil {
			return err
		}
		if err := client.DeleteAccount(cmd.Context(), sess, args[0]); err != nil {
			return fmt.Errorf("delete account %s: %w", args[0], err)
		}
		fmt.Println("Account deleted.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(accountCreateCmd)
	accountCmd.AddCommand(accountMeCmd)
	accountCmd.AddCommand(accountGetCmd)
	accountCmd.AddCommand(accountDeleteCmd)
	accountCmd.AddCommand(accountDeleteIDCmd)

	accountCreateCmd.Flags().StringVar(&createLocal, "local", "", "mailbox name (local part)")
	accountCreateCmd.Flags().StringVar(&createDomain, "domain", "", "domain (default: first active public domain)")
	accountCreateCmd.Flags().BoolVar(&createRandom, "random", false, "generate a random mailbox name")
	accountCreateCmd.Flags().BoolVar(&createSave, "save", false, "store the password in the OS keyring")
	accountCreateCmd.Flags().BoolVar(&createPrintLogin, "print-login", false, "log in and print the account after creation")
}
