package main

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-field-crypt/internal/adapter"
	"github.com/MKhiriev/go-field-crypt/internal/config"
	"github.com/MKhiriev/go-field-crypt/internal/crypto"
	"github.com/MKhiriev/go-field-crypt/internal/logger"
	"github.com/MKhiriev/go-field-crypt/models"
)

var errNoKey = errors.New("no encryption key: pass --key or set CLIENT_ENCRYPTION_KEY")

// cli is the state shared by every command.
type cli struct {
	cfg *config.ClientConfig
	log *logger.Logger

	newAdapter func(config.ClientConfig, *logger.Logger) (adapter.ServerAdapter, error)
	copy       func(string) error
	build      models.AppBuildInfo
}

func (c *cli) adapter() (adapter.ServerAdapter, error) {
	return c.newAdapter(*c.cfg, c.log)
}

// key decodes the --key flag value, falling back to the configured key.
func (c *cli) key(flag string) ([]byte, error) {
	if flag == "" {
		flag = c.cfg.EncryptionKey
	}
	if flag == "" {
		return nil, errNoKey
	}

	return crypto.DecodeKey(flag)
}

func newRootCmd(c *cli) *cobra.Command {
	var (
		serverURL string
		verbose   bool
	)

	root := &cobra.Command{
		Use:   "fieldcrypt",
		Short: "fieldcrypt - keys, envelopes and the messages API from the command line",
		Long: `fieldcrypt is the operator tool for the field encryption layer.

It generates keys, encrypts and decrypts single values, talks to a running
fieldcrypt server and generates Fields methods from crypt struct tags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			c.log = logger.NewConsoleLogger(cmd.ErrOrStderr(), "fieldcrypt", level)

			if serverURL != "" {
				c.cfg.ServerURL = serverURL
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&serverURL, "server", "", "server base URL (default $CLIENT_SERVER_URL)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")

	root.AddCommand(
		newKeygenCmd(c),
		newEncryptCmd(c),
		newDecryptCmd(c),
		newMessagesCmd(c),
		newGenCmd(c),
		newVersionCmd(c),
	)

	return root
}
