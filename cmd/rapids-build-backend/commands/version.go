package commands

import (
	"fmt"

	"github.com/rapidsai/rapids-build-backend/internal/build"
	"github.com/spf13/cobra"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rapids-build-backend version %s\n", build.Version)
		},
	}
}
