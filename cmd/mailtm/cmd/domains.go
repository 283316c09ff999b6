package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cevapi/mailtm/internal/render"
)

var domainsPage int

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List the public domains",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		page, err := client.ListDomains(cmd.Context(), domainsPage)
		if err != nil {
			return fmt.Errorf("list domains: %w", err)
		}
		fmt.Print(render.DomainList(page))
		return nil
	},
}

var domainCmd = &cobra.Command{
	Use:   "domain <domain-id>",
	Short: "Fetch a domain record by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		raw, err := client.DomainJSON(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("fetch domain %s: %w", args[0], err)
		}
		printJSON(raw)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(domainsCmd)
	rootCmd.AddCommand(domainCmd)
	domainsCmd.Flags().IntVar(&domainsPage, "page", 1, "result page")
}
