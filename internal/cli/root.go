// Package cli is the thin command layer around the cleanup engine: flag
// parsing, config loading, privilege detection, and report rendering. The
// engine itself is in internal/engine.
package cli

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"macsweep/internal/engine"
	"macsweep/internal/inuse"
	"macsweep/internal/lock"
	"macsweep/internal/logging"
	"macsweep/internal/paths"
	"macsweep/internal/remove"
	"macsweep/internal/resolve"
	"macsweep/internal/snapshot"
	"macsweep/internal/trash"
)

var (
	Version = "0.1.0"
)

var (
	configPath   string
	flagDryRun   bool
	flagDelete   bool
	flagAll      bool
	flagTempAge  int
	flagDownAge  int
)

var rootCmd = &cobra.Command{
	Use:   "macsweep",
	Short: "Reclaim disk space from caches, temp files, and old downloads",
	Long: `macsweep walks a fixed whitelist of locations known to hold regenerable
data (application caches, browser caches, temp files, old downloads) and
removes matching entries, reporting the space freed. Removal defaults to a
recoverable move into the Trash.`,
	Version: Version,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/Library/Application Support/macsweep/config.yaml)")
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(scanCmd)

	cleanCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "report what would be removed without touching anything")
	cleanCmd.Flags().BoolVar(&flagDelete, "delete", false, "delete permanently instead of moving to the Trash")
	cleanCmd.Flags().BoolVar(&flagAll, "all", false, "enable every category (system caches need sudo)")
	cleanCmd.Flags().IntVar(&flagTempAge, "temp-age", -1, "minimum age in days for temp files")
	cleanCmd.Flags().IntVar(&flagDownAge, "download-age", -1, "minimum age in days for downloads")
}

// buildOrchestrator wires the engine against the real platform collaborators.
func buildOrchestrator() (*engine.Orchestrator, error) {
	roots, err := paths.Default()
	if err != nil {
		return nil, fmt.Errorf("resolve whitelist roots: %w", err)
	}

	resolver := resolve.New(roots, inuse.LsofChecker{}, snapshot.TMUtil{})
	executor := remove.New(trash.New(roots.TrashDir), snapshot.TMUtil{})
	orch := engine.New(resolver, executor, lock.New(roots.LockFile))

	if logger := runLogger(); logger != nil {
		orch.SetEventSink(logging.EventSink(logger))
	}
	return orch, nil
}

func runLogger() *log.Logger {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	logger, err := logging.New(filepath.Join(home, "Library/Logs/macsweep"))
	if err != nil {
		return nil
	}
	return logger
}
