// Package cmd implements the mailtm command tree.
package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cevapi/mailtm/internal/config"
	"github.com/cevapi/mailtm/internal/credential"
	"github.com/cevapi/mailtm/internal/mailtm"
)

var (
	cfgFile  string
	homeDir  string
	verbose  bool
	address  string
	password string

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mailtm",
	Short: "Disposable email from the command line",
	Long: `mailtm is a client for the mail.tm disposable-email service.

It creates and deletes throwaway accounts, lists the available domains,
and reads, deletes, and saves the messages an account receives.

Credentials resolve from --address/--password, then MAILTM_ADDRESS and
MAILTM_PASSWORD, then the config file address with the password stored
by 'mailtm login --save'.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))

		var err error
		cfg, err = config.Load(cfgFile, homeDir)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return nil
	},
}

// Execute runs the root command with a background context.
// Prefer ExecuteContext for signal-aware execution.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with the given context,
// enabling graceful shutdown when the context is cancelled.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// newClient builds an API client from the loaded config.
func newClient() *mailtm.Client {
	opts := []mailtm.Option{
		mailtm.WithLogger(logger),
		mailtm.WithTimeout(cfg.Timeout()),
	}
	if cfg.API.BaseURL != "" {
		opts = append(opts, mailtm.WithBaseURL(cfg.API.BaseURL))
	}
	return mailtm.NewClient(opts...)
}

// resolveAddress returns the account address for the invocation:
// flag, then environment, then config file.
func resolveAddress() (string, error) {
	addr := address
	if addr == "" {
		addr = os.Getenv("MAILTM_ADDRESS")
	}
	if addr == "" {
		addr = cfg.Account.Address
	}
	if addr == "" {
		return "", fmt.Errorf("no account address: use --address, MAILTM_ADDRESS, or set account.address in %s", cfg.ConfigFilePath())
	}
	return addr, nil
}

// resolveCredentials returns the address and password for
// authenticated commands. The password falls back to the keyring.
func resolveCredentials() (string, string, error) {
	addr, err := resolveAddress()
	if err != nil {
		return "", "", err
	}

	pw := password
	if pw == "" {
		pw = os.Getenv("MAILTM_PASSWORD")
	}
	if pw == "" {
		stored, err := credential.Password(addr)
		if err == nil {
			pw = stored
		} else if !credential.IsNotFound(err) {
			logger.Debug("keyring lookup failed", "address", addr, "error", err)
		}
	}
	if pw == "" {
		return "", "", fmt.Errorf("no password for %s: use --password, MAILTM_PASSWORD, or 'mailtm login --save'", addr)
	}
	return addr, pw, nil
}

// authenticate logs in with the resolved credentials.
func authenticate(ctx context.Context, client *mailtm.Client) (mailtm.Session, error) {
	addr, pw, err := resolveCredentials()
	if err != nil {
		return mailtm.Session{}, err
	}
	sess, err := client.Login(ctx, addr, pw)
	if err != nil {
		return mailtm.Session{}, fmt.Errorf("login %s: %w", addr, err)
	}
	return sess, nil
}

// printJSON pretty-prints a raw API payload.
func printJSON(raw json.RawMessage) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		fmt.Println(string(raw))
		return
	}
	fmt.Println(buf.String())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.mailtm/config.toml)")
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "home directory (overrides MAILTM_HOME)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&address, "address", "", "account email address")
	rootCmd.PersistentFlags().StringVar(&password, "password", "", "account password")
}
