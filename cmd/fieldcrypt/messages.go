package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-field-crypt/models"
)

func newMessagesCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Post and read messages on a fieldcrypt server",
	}

	cmd.AddCommand(
		newMessagesPostCmd(c),
		newMessagesListCmd(c),
		newMessagesGetCmd(c),
	)

	return cmd
}

func newMessagesPostCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "post TEXT",
		Short: "Save a message; the server stores its text encrypted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := c.adapter()
			if err != nil {
				return err
			}

			message, err := server.CreateMessage(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s message %s saved\n",
				color.GreenString("✓"), color.YellowString(strconv.FormatInt(message.ID, 10)))
			return nil
		},
	}
}

func newMessagesListCmd(c *cli) *cobra.Command {
	var decrypted bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List messages as stored, or decrypted with --decrypted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := c.adapter()
			if err != nil {
				return err
			}

			messages, err := server.ListMessages(cmd.Context(), decrypted)
			if err != nil {
				return err
			}

			if len(messages) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), color.CyanString("→")+" no messages")
				return nil
			}
			return printMessages(cmd.OutOrStdout(), messages)
		},
	}

	cmd.Flags().BoolVar(&decrypted, "decrypted", false, "ask the server to decrypt message text")

	return cmd
}

func newMessagesGetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one decrypted message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid message id %q", args[0])
			}

			server, err := c.adapter()
			if err != nil {
				return err
			}

			message, err := server.GetMessage(cmd.Context(), id)
			if err != nil {
				return err
			}

			return printMessages(cmd.OutOrStdout(), []models.Message{message})
		},
	}
}

func printMessages(w io.Writer, messages []models.Message) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTEXT")
	for _, m := range messages {
		fmt.Fprintf(tw, "%d\t%s\n", m.ID, m.Text)
	}
	return tw.Flush()
}
