// Package cli implements blockproxyctl, a command line client for the admin
// gateway built on adminclient.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jroosing/blockproxy/internal/adminclient"
	"github.com/spf13/cobra"
)

// DefaultURL is the gateway address used when --url and BLOCKPROXY_URL are unset.
const DefaultURL = "http://127.0.0.1:8200/"

// URLEnv overrides the default gateway URL.
const URLEnv = "BLOCKPROXY_URL"

type options struct {
	url     string
	json    bool
	timeout time.Duration
}

// NewRootCommand builds the blockproxyctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "blockproxyctl",
		Short: "Inspect and control a running blockproxy",
		Long: `blockproxyctl talks to the blockproxy admin gateway.

It reads proxy statistics and switches content blocking on or off.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultURL := DefaultURL
	if v := os.Getenv(URLEnv); v != "" {
		defaultURL = v
	}

	root.PersistentFlags().StringVar(&opts.url, "url", defaultURL, "Admin gateway URL")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "Output command results in JSON format")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Request timeout")

	root.AddCommand(newStatsCommand(opts))
	root.AddCommand(newBlockingCommand(opts))

	return root
}

// Execute runs blockproxyctl and returns the process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func (o *options) client() (*adminclient.Client, error) {
	c, err := adminclient.FromLocation(o.url, adminclient.WithTimeout(o.timeout))
	if err != nil {
		return nil, fmt.Errorf("invalid --url: %w", err)
	}
	return c, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
