package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-field-crypt/internal/crypto"
)

func newKeygenCmd(c *cli) *cobra.Command {
	var (
		size    int
		copyKey bool
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a random base64 encryption key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := crypto.GenerateKey(size)
			if err != nil {
				return err
			}
			encoded := crypto.EncodeKey(key)

			fmt.Fprintln(cmd.OutOrStdout(), encoded)

			if copyKey {
				if err = c.copy(encoded); err != nil {
					return fmt.Errorf("copy key to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), color.GreenString("✓")+" key copied to clipboard")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", crypto.DefaultKeySize, "key size in bytes: 16, 24 or 32")
	cmd.Flags().BoolVar(&copyKey, "copy", false, "also copy the key to the clipboard")

	return cmd
}
