// Package cmd implements the numberflow CLI commands.
//
// The root command carries the flags shared by every subcommand (config
// file and debug logging); subcommands register themselves from init.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-drift/numberflow/pkg/config"
	"github.com/go-drift/numberflow/pkg/errors"
	"github.com/go-drift/numberflow/pkg/numberflow"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "numberflow <command> [flags]",
		Short: "Animated digit reels for numeric strings",
		Long: `numberflow drives the NumberFlow widget engine outside a UI framework.

It turns a sequence of formatted values into render plans (which reels roll,
from where, with what delay and spring) and can animate them in the terminal.

Settings are read from numberflow.yaml in the current directory, or from the
file given with --config.`,
		Version:       fmt.Sprintf("%s (built %s)", Version, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "path to a numberflow.yaml file")
	root.PersistentFlags().Bool("debug", false, "enable debug logging")
	root.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr")
	return root
}

// RegisterCommand adds a subcommand to the CLI.
func RegisterCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// Execute runs the CLI with os.Args.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		rootCmd.PrintErrln("Error:", err)
	}
	return err
}

// loadProps resolves the default props from --config or ./numberflow.yaml.
func loadProps(cmd *cobra.Command) (numberflow.Props, error) {
	path, _ := cmd.Flags().GetString("config")

	var (
		props numberflow.Props
		err   error
	)
	if path == "" {
		props, err = config.Resolve(".")
	} else {
		var cfg *config.Config
		if cfg, err = config.Load(path); err == nil {
			props, err = cfg.Props()
		}
	}
	if err == nil {
		return props, nil
	}

	errors.Report(&errors.FlowError{
		Op:   "cmd.loadProps",
		Kind: errors.KindConfig,
		Err:  err,
	})
	return numberflow.Props{}, fmt.Errorf("failed to load config: %w", err)
}

// setupLogger builds the command logger and routes reported errors through it.
// Without --debug, flow logs are discarded and only reported errors are written.
func setupLogger(cmd *cobra.Command) (*zap.Logger, error) {
	debug, _ := cmd.Flags().GetBool("debug")
	path, _ := cmd.Flags().GetString("log-file")

	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	if path != "" {
		cfg.OutputPaths = []string{path}
		cfg.ErrorOutputPaths = []string{path}
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	errors.SetHandler(errors.NewLogHandler(logger))

	if !debug {
		return zap.NewNop(), nil
	}
	return logger, nil
}
