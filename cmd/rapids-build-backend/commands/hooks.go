package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newHookCmds() []*cobra.Command {
	return []*cobra.Command{
		c.newRequiresCmd("get-requires-for-build-wheel",
			"Print the wheel build requirements, one specifier per line",
			func(ctx context.Context, dir string, settings map[string]string) ([]string, error) {
				return c.app.GetRequiresForBuildWheel(ctx, dir, settings)
			}),
		c.newRequiresCmd("get-requires-for-build-sdist",
			"Print the sdist build requirements, one specifier per line",
			func(ctx context.Context, dir string, settings map[string]string) ([]string, error) {
				return c.app.GetRequiresForBuildSdist(ctx, dir, settings)
			}),
		c.newRequiresCmd("get-requires-for-build-editable",
			"Print the editable build requirements, one specifier per line",
			func(ctx context.Context, dir string, settings map[string]string) ([]string, error) {
				return c.app.GetRequiresForBuildEditable(ctx, dir, settings)
			}),

		c.newMetadataCmd("prepare-metadata-for-build-wheel",
			"Produce wheel metadata into the given directory and print the dist-info basename",
			func(ctx context.Context, dir, metadataDir string, settings map[string]string) (string, error) {
				return c.app.PrepareMetadataForBuildWheel(ctx, dir, metadataDir, settings)
			}),
		c.newMetadataCmd("prepare-metadata-for-build-editable",
			"Produce editable metadata into the given directory and print the dist-info basename",
			func(ctx context.Context, dir, metadataDir string, settings map[string]string) (string, error) {
				return c.app.PrepareMetadataForBuildEditable(ctx, dir, metadataDir, settings)
			}),

		c.newBuildCmd("build-wheel",
			"Build a wheel into the given directory and print its basename",
			func(ctx context.Context, dir, outDir string, settings map[string]string, metadataDir string) (string, error) {
				return c.app.BuildWheel(ctx, dir, outDir, settings, metadataDir)
			}),
		c.newSdistCmd(),
		c.newBuildCmd("build-editable",
			"Build an editable wheel into the given directory and print its basename",
			func(ctx context.Context, dir, outDir string, settings map[string]string, metadataDir string) (string, error) {
				return c.app.BuildEditable(ctx, dir, outDir, settings, metadataDir)
			}),
	}
}

func (c *CLI) newRequiresCmd(use, short string, hook func(context.Context, string, map[string]string) ([]string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := c.configSettings()
			if err != nil {
				return err
			}
			reqs, err := hook(cmd.Context(), c.directory, settings)
			if err != nil {
				return err
			}
			for _, req := range reqs {
				fmt.Fprintln(cmd.OutOrStdout(), req)
			}
			return nil
		},
	}
}

func (c *CLI) newMetadataCmd(use, short string, hook func(context.Context, string, string, map[string]string) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <metadata-dir>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := c.configSettings()
			if err != nil {
				return err
			}
			basename, err := hook(cmd.Context(), c.directory, args[0], settings)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), basename)
			return nil
		},
	}
}

func (c *CLI) newBuildCmd(use, short string, hook func(context.Context, string, string, map[string]string, string) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <wheel-dir> [metadata-dir]",
		Short: short,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := c.configSettings()
			if err != nil {
				return err
			}
			metadataDir := ""
			if len(args) > 1 {
				metadataDir = args[1]
			}
			basename, err := hook(cmd.Context(), c.directory, args[0], settings, metadataDir)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), basename)
			return nil
		},
	}
}

func (c *CLI) newSdistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build-sdist <sdist-dir>",
		Short: "Build a source distribution into the given directory and print its basename",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := c.configSettings()
			if err != nil {
				return err
			}
			basename, err := c.app.BuildSdist(cmd.Context(), c.directory, args[0], settings)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), basename)
			return nil
		},
	}
}
