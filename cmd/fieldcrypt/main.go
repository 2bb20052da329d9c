package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"

	"github.com/MKhiriev/go-field-crypt/internal/adapter"
	"github.com/MKhiriev/go-field-crypt/internal/config"
	"github.com/MKhiriev/go-field-crypt/internal/logger"
	"github.com/MKhiriev/go-field-crypt/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("✗")+" "+err.Error())
		os.Exit(1)
	}

	c := &cli{
		cfg:        cfg,
		log:        logger.Nop(),
		newAdapter: adapter.NewHTTPServerAdapter,
		copy:       clipboard.WriteAll,
		build:      models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
	}

	if err = newRootCmd(c).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("✗")+" "+err.Error())
		os.Exit(1)
	}
}
