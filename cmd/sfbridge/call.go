package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sort"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quillback/sfbridge/bridge"
	"github.com/quillback/sfbridge/salesforce"
	"github.com/quillback/sfbridge/wire"
)

var callCmd = &cobra.Command{
	Use:   "call <plugin.wasm> <function>",
	Short: "Call an exported function of a plugin",
	Long: `Load a WASM plugin, wire it to the authenticated org, and call one
of its exported functions.

Input can be provided via:
  - Inline flag: sfbridge call plugin.wasm run -i '{"soql":"SELECT Id FROM Account"}'
  - Stdin:       echo '{...}' | sfbridge call plugin.wasm run`,
	Args: cobra.ExactArgs(2),
	Run:  runCall,
}

func init() {
	callCmd.Flags().StringP("input", "i", "", "JSON input passed to the function")
	addBridgeFlags(callCmd)
	rootCmd.AddCommand(callCmd)
}

func addBridgeFlags(cmd *cobra.Command) {
	cmd.Flags().Duration("timeout", 60*time.Second, "Call timeout")
	cmd.Flags().Bool("no-cache", false, "Disable the compilation cache")
	cmd.Flags().Uint32("memory-pages", 0, "Guest memory limit in 64KB pages (0 = default)")
	cmd.Flags().Bool("verbose", false, "Log bridge internals")
}

func buildBridge(cmd *cobra.Command, pluginPath string) (*bridge.Bridge, error) {
	creds, err := resolveCredentials(cmd)
	if err != nil {
		return nil, err
	}
	client, err := salesforce.NewClient(creds.InstanceURL, creds.AccessToken)
	if err != nil {
		return nil, err
	}

	moduleBytes, err := os.ReadFile(pluginPath)
	if err != nil {
		return nil, err
	}

	var opts []bridge.Option
	if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache {
		if dir, err := os.UserCacheDir(); err == nil {
			opts = append(opts, bridge.WithCompilationCacheDir(dir+"/sfbridge"))
		}
	}
	if pages, _ := cmd.Flags().GetUint32("memory-pages"); pages > 0 {
		opts = append(opts, bridge.WithMemoryLimit(pages))
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		opts = append(opts, bridge.WithLogger(logger))
	}

	return bridge.New(cmd.Context(), moduleBytes, bridge.NewState(client), opts...)
}

func runCall(cmd *cobra.Command, args []string) {
	pluginPath, fn := args[0], args[1]

	input, _ := cmd.Flags().GetString("input")
	if input == "" {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fatal(err)
			}
			input = string(data)
		}
	}

	b, err := buildBridge(cmd, pluginPath)
	if err != nil {
		fatal(err)
	}
	defer b.Close(context.Background())

	timeout, _ := cmd.Flags().GetDuration("timeout")
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	out, err := b.Call(ctx, fn, []byte(input))
	if err != nil {
		fatal(err)
	}
	printEnvelope(out)
}

// printEnvelope renders a result envelope when the output is one, and
// the raw bytes otherwise.
func printEnvelope(out []byte) {
	var res wire.Result[json.RawMessage]
	if err := json.Unmarshal(out, &res); err != nil {
		pterm.Println(string(out))
		return
	}
	if res.Err != nil {
		pterm.Println(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("✗ " + res.Err.Code))
		pterm.Println("  " + res.Err.Message)
		os.Exit(1)
	}
	var pretty map[string]any
	if err := json.Unmarshal(res.Value, &pretty); err == nil {
		formatted, _ := json.MarshalIndent(pretty, "", "  ")
		pterm.Println(string(formatted))
		return
	}
	pterm.Println(string(res.Value))
}

var functionsCmd = &cobra.Command{
	Use:   "functions <plugin.wasm>",
	Short: "List the host functions available to a plugin",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		b, err := buildBridge(cmd, args[0])
		if err != nil {
			fatal(err)
		}
		defer b.Close(context.Background())

		names := b.Functions()
		sort.Strings(names)
		items := make([]pterm.BulletListItem, 0, len(names))
		for _, name := range names {
			items = append(items, pterm.BulletListItem{Level: 0, Text: name})
		}
		_ = pterm.DefaultBulletList.WithItems(items).Render()
	},
}

func init() {
	addBridgeFlags(functionsCmd)
	rootCmd.AddCommand(functionsCmd)
}
