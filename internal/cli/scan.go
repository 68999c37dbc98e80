package cli

import (
	"github.com/spf13/cobra"

	"macsweep/internal/remove"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List what clean would remove, without touching anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		cfg.Mode = remove.DryRun
		return runEngine(cmd, cfg)
	},
}
