package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quillback/sfbridge/auth"
)

var rootCmd = &cobra.Command{
	Use:   "sfbridge",
	Short: "Run Salesforce plugins in a WASM sandbox",
	Long: `sfbridge - Run untrusted WASM plugins against Salesforce safely.

Plugins call Salesforce through imported host functions and never see
the credentials used to authenticate them. Credentials come from the
SF_AUTH_URL environment variable (force://ACCESS_TOKEN@INSTANCE_HOST)
or from the OS keychain after 'sfbridge login'.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("org", "o", "default", "Stored org name to use when SF_AUTH_URL is unset")
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// resolveCredentials prefers the environment and falls back to the
// keychain entry named by --org.
func resolveCredentials(cmd *cobra.Command) (auth.Credentials, error) {
	if creds, err := auth.FromEnv(); err == nil {
		return creds, nil
	}
	org, _ := cmd.Flags().GetString("org")
	store, err := auth.OpenStore()
	if err != nil {
		return auth.Credentials{}, err
	}
	creds, err := store.Load(org)
	if err != nil {
		return auth.Credentials{}, fmt.Errorf("no credentials: set %s or run 'sfbridge login' (%w)", auth.EnvAuthURL, err)
	}
	return creds, nil
}
