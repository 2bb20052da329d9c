package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newVersionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information and the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprint(out, c.build)

			server, err := c.adapter()
			if err != nil {
				return err
			}

			version, err := server.Version(cmd.Context())
			if err != nil {
				c.log.Debug().Err(err).Msg("server version request failed")
				fmt.Fprintln(out, color.YellowString("!")+" server unreachable at "+c.cfg.ServerURL)
				return nil
			}

			fmt.Fprintf(out, "Server version: %s\n", version)
			return nil
		},
	}
}
