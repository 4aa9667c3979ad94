package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/bindle/internal/app"
)

// jsonSwitcher is implemented by loggers that can emit structured JSON.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

func (c *CLI) newBundleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundle [entries...]",
		Short: "Resolve the dependency graph for the given entry modules",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, _ := cmd.Flags().GetString("manifest")
			jsonMode, _ := cmd.Flags().GetBool("json")

			if jsonMode {
				if s, ok := c.logger.(jsonSwitcher); ok {
					s.SetJSON(true)
				}
			}

			return c.app.Run(cmd.Context(), args, app.RunOptions{
				ManifestPath: manifest,
			})
		},
	}
	cmd.Flags().StringP("manifest", "m", "", "Write the resolved bundle manifest to the given path")
	cmd.Flags().Bool("json", false, "Emit logs as JSON")
	return cmd
}
