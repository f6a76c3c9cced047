package cli

import (
	"fmt"

	"github.com/jroosing/blockproxy/internal/blocking"
	"github.com/spf13/cobra"
)

func newBlockingCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blocking",
		Short: "Show or change the blocking state",
		Args:  cobra.NoArgs,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Show the blocking state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			state, err := c.GetBlocking(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get blocking state: %w", err)
			}
			return printState(cmd, opts, state)
		},
	})

	cmd.AddCommand(newSetBlockingCommand(opts, "enable", blocking.Enabled))
	cmd.AddCommand(newSetBlockingCommand(opts, "disable", blocking.Disabled))

	return cmd
}

func newSetBlockingCommand(opts *options, use string, target blocking.State) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Set the blocking state to %s", target),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			state, err := c.SetBlocking(cmd.Context(), target)
			if err != nil {
				return fmt.Errorf("failed to set blocking state: %w", err)
			}
			return printState(cmd, opts, state)
		},
	}
}

func printState(cmd *cobra.Command, opts *options, state blocking.State) error {
	if opts.json {
		return printJSON(cmd.OutOrStdout(), blocking.Status{State: state})
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Blocking: %s\n", state)
	return err
}
