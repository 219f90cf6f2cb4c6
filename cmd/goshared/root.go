package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/goshared/pkg/goshared/config"
	"github.com/randalmurphal/goshared/pkg/goshared/env"
	"github.com/randalmurphal/goshared/pkg/goshared/logging"
)

// app carries state shared by the subcommands.
type app struct {
	configPath string
	logger     *slog.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "goshared",
		Short: "Typed environment lookups, safe text and terminal helpers",
		Long: `goshared bundles small helpers: typed environment lookups, terminal
layout, JWT shape checks, random strings and observed command runs.

Logging is configured from GOSHARED_* variables; --config merges a YAML or
JSON file over them. File keys use the variable names without the prefix,
lower-cased (log_level, log_file, file_logging_enabled, ...), and may
reference environment variables as ${NAME}.`,
		Version:           getVersion().String(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "",
		"YAML or JSON file merged over the GOSHARED_* logging settings")

	cmd.AddCommand(
		newEnvCommand(),
		newMiddleCommand(),
		newColumnsCommand(),
		newJWTCommand(),
		newRanstrCommand(),
		newTruncCommand(),
		newRunCommand(a),
		newVersionCommand(),
	)
	return cmd
}

// setup initialises logging before any subcommand runs.
func (a *app) setup(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}

	logCfg := logging.ConfigFrom(cfg)
	if err := logCfg.Validate(); err != nil {
		return err
	}
	logger, err := logging.Init(logCfg)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	a.logger = logger
	return nil
}

// loadConfig merges the optional file over the GOSHARED_* environment and
// expands ${NAME} references against the process environment.
func loadConfig(path string) (config.Config, error) {
	cfg := config.FromEnv(logging.EnvPrefix, nil)
	if path == "" {
		return cfg, nil
	}

	file, err := config.FromFile(path)
	if err != nil {
		return config.Config{}, err
	}
	return config.Merge(cfg, file).Expand(environ()), nil
}

func environ() map[string]any {
	src := env.OSSource{}
	vars := make(map[string]any)
	for _, name := range src.Names() {
		if v, ok := src.Lookup(name); ok {
			vars[name] = v
		}
	}
	return vars
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			v := getVersion()
			fmt.Fprintf(cmd.OutOrStdout(), "goshared %s\n", v)
			if v.time != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "built %s\n", v.time)
			}
		},
	}
}
