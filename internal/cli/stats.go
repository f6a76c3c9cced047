package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jroosing/blockproxy/internal/statistics"
	"github.com/spf13/cobra"
)

func newStatsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show proxy statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}

			snap, err := c.GetStatistics(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get statistics: %w", err)
			}

			if opts.json {
				return printJSON(cmd.OutOrStdout(), snap)
			}
			return printSnapshot(cmd.OutOrStdout(), snap)
		},
	}
}

func printSnapshot(w io.Writer, snap statistics.Snapshot) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Proxied requests:\t%s\n", counter(snap.ProxiedRequests))
	fmt.Fprintf(tw, "Blocked requests:\t%s\n", counter(snap.BlockedRequests))
	fmt.Fprintf(tw, "Modified responses:\t%s\n", counter(snap.ModifiedResponses))
	if err := tw.Flush(); err != nil {
		return err
	}

	printRanking(w, "Top blocked paths", snap.TopBlockedPaths)
	printRanking(w, "Top clients", snap.TopClients)
	return nil
}

func printRanking(w io.Writer, title string, r statistics.Ranking) {
	fmt.Fprintf(w, "\n%s:\n", title)
	if len(r) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, e := range r {
		fmt.Fprintf(tw, "  %d\t%s\n", e.Count, e.Key)
	}
	_ = tw.Flush()
}

func counter(v *uint64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%d", *v)
}
