package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-field-crypt/internal/codegen"
)

func newGenCmd(c *cli) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "gen FILE",
		Short: "Generate Fields methods for structs with crypt tags",
		Long: `gen reads a Go source file and writes a Fields method for every struct
that has at least one crypt:"encrypted" or crypt:"plain" tag. A crypt tag on
an attribute that is not string or *string is reported as an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			out, err := codegen.Generate(args[0], src)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}

			if err = os.WriteFile(output, out, 0o644); err != nil {
				return err
			}
			c.log.Debug().Str("input", args[0]).Str("output", output).Msg("descriptors generated")
			fmt.Fprintln(cmd.ErrOrStderr(), color.GreenString("✓")+" wrote "+color.YellowString(output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")

	return cmd
}
