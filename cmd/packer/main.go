package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/eugenenazirov/packer/internal/application"
	"github.com/eugenenazirov/packer/internal/config"
	"github.com/eugenenazirov/packer/internal/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	kingpinApp := kingpin.New("packer", "Packer - picks the most valuable set of things that fits each package")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	currency := kingpinApp.Flag("currency", "Currency symbol stripped from thing costs").String()
	logLevel := kingpinApp.Flag("log-level", "Log level: debug, info, warn or error").String()
	inputFile := kingpinApp.Arg("file", "Path to the packages input file").Required().String()

	if _, err := kingpinApp.Parse(args); err != nil {
		return fmt.Errorf("parse arguments: %w", err)
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *currency != "" {
		overrides.CurrencySymbol = currency
	}

	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	result, err := app.Run(*inputFile)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, result)
	return err
}
