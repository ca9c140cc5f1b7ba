package main

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/quillback/sfbridge/auth"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the credentials from SF_AUTH_URL in the OS keychain",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		creds, err := auth.FromEnv()
		if err != nil {
			fatal(err)
		}
		store, err := auth.OpenStore()
		if err != nil {
			fatal(err)
		}
		org, _ := cmd.Flags().GetString("org")
		if err := store.Save(org, creds); err != nil {
			fatal(err)
		}
		pterm.Println("✓ Stored credentials for " + pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(org))
		pterm.Println("  Instance: " + creds.InstanceURL)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove stored credentials from the OS keychain",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, err := auth.OpenStore()
		if err != nil {
			fatal(err)
		}
		org, _ := cmd.Flags().GetString("org")
		if err := store.Delete(org); err != nil {
			if errors.Is(err, auth.ErrNotFound) {
				fatal(fmt.Errorf("no credentials stored for %q", org))
			}
			fatal(err)
		}
		pterm.Println("✓ Removed credentials for " + org)
	},
}

var orgsCmd = &cobra.Command{
	Use:   "orgs",
	Short: "List orgs with stored credentials",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, err := auth.OpenStore()
		if err != nil {
			fatal(err)
		}
		names, err := store.List()
		if err != nil {
			fatal(err)
		}
		if len(names) == 0 {
			pterm.Println("No stored orgs. Set SF_AUTH_URL and run: sfbridge login")
			return
		}
		items := make([]pterm.BulletListItem, 0, len(names))
		for _, name := range names {
			items = append(items, pterm.BulletListItem{Level: 0, Text: name})
		}
		_ = pterm.DefaultBulletList.WithItems(items).Render()
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(orgsCmd)
}
