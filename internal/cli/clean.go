package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"macsweep/internal/config"
	"macsweep/internal/engine"
	"macsweep/internal/lock"
	"macsweep/internal/remove"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Run the cleanup",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}

		if flagDryRun && flagDelete {
			return fmt.Errorf("--dry-run and --delete are mutually exclusive")
		}
		if flagDryRun {
			cfg.Mode = remove.DryRun
		} else if flagDelete {
			cfg.Mode = remove.PermanentDelete
		}

		return runEngine(cmd, cfg)
	},
}

// resolveConfig merges the config file with command-line overrides into the
// engine's fully resolved input.
func resolveConfig() (engine.Config, error) {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return engine.Config{}, err
		}
	}

	file, err := config.Load(path)
	if err != nil {
		return engine.Config{}, err
	}

	if flagAll {
		file.Categories = config.Categories{
			UserCaches: true, BrowserCaches: true, TempFiles: true,
			Downloads: true, SystemCaches: true, Snapshots: true,
		}
	}
	if flagTempAge >= 0 {
		file.Ages.TempFiles = flagTempAge
	}
	if flagDownAge >= 0 {
		file.Ages.Downloads = flagDownAge
	}

	elevated := os.Geteuid() == 0
	if file.Categories.SystemCaches && !elevated {
		return engine.Config{}, fmt.Errorf("system caches are enabled but macsweep is not running as root; rerun with sudo or disable the category")
	}

	return file.Resolve(elevated)
}

func runEngine(cmd *cobra.Command, cfg engine.Config) error {
	orch, err := buildOrchestrator()
	if err != nil {
		return err
	}

	report, err := orch.Run(cfg)
	if err != nil {
		var running *lock.AlreadyRunningError
		if errors.As(err, &running) {
			return fmt.Errorf("%s; wait for it to finish", running)
		}
		return err
	}

	renderReport(cmd.OutOrStdout(), report, cfg.Mode)
	return nil
}
