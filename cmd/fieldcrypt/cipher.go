package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-field-crypt/internal/crypto"
)

func newEncryptCmd(c *cli) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "encrypt TEXT",
		Short: "Encrypt TEXT into a base64 envelope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := c.key(key)
			if err != nil {
				return err
			}

			envelope, err := crypto.EncryptString(args[0], raw)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), envelope)
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "base64 key (default $CLIENT_ENCRYPTION_KEY)")

	return cmd
}

func newDecryptCmd(c *cli) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "decrypt ENVELOPE",
		Short: "Decrypt a base64 envelope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := c.key(key)
			if err != nil {
				return err
			}

			plaintext, err := crypto.DecryptString(args[0], raw)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), plaintext)
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "base64 key (default $CLIENT_ENCRYPTION_KEY)")

	return cmd
}
