// Package commands implements the CLI commands of keypress.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/katalvlaran/keypress/internal/build"
	"github.com/katalvlaran/keypress/internal/config"
	"github.com/katalvlaran/keypress/internal/logger"
)

// CLI represents the command line interface for keypress.
type CLI struct {
	rootCmd *cobra.Command
	lookup  func(string) (string, bool)

	cfg config.Config
	log *logger.Logger
}

// Option configures a CLI.
type Option func(*CLI)

// WithLookupEnv replaces os.LookupEnv as the source of KEYPRESS_* variables.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(c *CLI) { c.lookup = fn }
}

// New creates a new CLI instance.
func New(opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "keypress",
		Short:         "Shortest button-press sequences through nested keypads",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "keypress.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().String("env-file", ".env", "Path to an optional .env file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")

	c := &CLI{
		rootCmd: rootCmd,
		lookup:  os.LookupEnv,
		cfg:     config.Default(),
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentPreRunE = c.setup

	rootCmd.AddCommand(c.newComplexityCmd())
	rootCmd.AddCommand(c.newPathsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	if cerr := c.log.Close(); err == nil {
		err = cerr
	}

	return err
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error writers for the root command.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}

// setup resolves configuration (file, then .env and environment, then
// flags) and builds the logger.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return err
	}

	if err := config.LoadDotEnv(envFile); err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(c.lookup); err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	lvl, err := cfg.LogLevel()
	if err != nil {
		return err
	}

	lg, err := logger.New(logger.Options{Level: lvl, Writer: cmd.ErrOrStderr(), File: cfg.Log.File})
	if err != nil {
		return zerr.Wrap(err, "failed to initialize logger")
	}
	c.cfg, c.log = cfg, lg
	c.log.Debug("configuration loaded", "config", configPath, "depth", cfg.Depth, "strategy", cfg.Strategy)

	return nil
}
