// Package commands implements the CLI surface of the build-backend proxy.
// Front-end integrations invoke one subcommand per hook and read the
// result from stdout.
package commands

import (
	"context"
	"io"
	"strings"

	"github.com/rapidsai/rapids-build-backend/internal/app"
	"github.com/rapidsai/rapids-build-backend/internal/build"
	"github.com/rapidsai/rapids-build-backend/internal/core/domain"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface of the proxy.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command

	directory string
	settings  []string
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "rapids-build-backend",
		Short:         "Build-backend proxy that adapts package builds to the local CUDA toolchain",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.directory, "directory", "C", ".", "Project directory containing pyproject.toml")
	rootCmd.PersistentFlags().StringArrayVarP(&c.settings, "config-setting", "c", nil, "Config setting as key=value (repeatable)")

	rootCmd.AddCommand(c.newHookCmds()...)
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
}

// configSettings parses the repeated -c flags into the settings map.
func (c *CLI) configSettings() (map[string]string, error) {
	settings := make(map[string]string, len(c.settings))
	for _, kv := range c.settings {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfig, "config setting is missing '='"), "setting", kv)
		}
		settings[key] = value
	}
	return settings, nil
}
