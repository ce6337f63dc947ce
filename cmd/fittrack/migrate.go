// ABOUTME: CLI command for migrating data between storage backends.
// ABOUTME: Copies every store slot from one backend to the other.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/config"
	"github.com/harperreed/fittrack/internal/store"
	"github.com/spf13/cobra"
)

var (
	migrateTo     string
	migrateDryRun bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate data between storage backends",
	Long: `Copy all fittrack data from the current backend to another one.

Use this when switching between local SQLite storage and the
cloud-synced Charm store.

IMPORTANT:

  - Slots present in the source overwrite those in the destination
  - The source data is left untouched
  - Run with --dry-run first to see what would be copied

USAGE:

  fittrack migrate --to charm --dry-run   # Preview
  fittrack migrate --to charm             # Copy sqlite -> charm
  fittrack migrate --to sqlite            # Copy charm -> sqlite

AFTER MIGRATION:

  Set the new backend as the default in ~/.config/fittrack/config.json:
    {"backend": "charm"}
  or pass --backend on each invocation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateTo == "" {
			return fmt.Errorf("--to is required (sqlite or charm)")
		}
		if migrateTo == cfg.GetBackend() {
			return fmt.Errorf("already using the %s backend", migrateTo)
		}

		destCfg := &config.Config{Backend: migrateTo, DataDir: cfg.DataDir}
		dest, err := destCfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open %s backend: %w", migrateTo, err)
		}
		defer func() { _ = dest.Close() }()

		if migrateDryRun {
			color.Yellow("Dry run mode - no changes will be made")
			fmt.Println()
		}

		copied := 0
		for _, slot := range store.AllSlots {
			raw, err := appStore.Get(slot)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					continue
				}
				return fmt.Errorf("failed to read slot %s: %w", slot, err)
			}

			if migrateDryRun {
				fmt.Printf("would copy %s (%d bytes)\n", slot, len(raw))
				copied++
				continue
			}

			if err := dest.Set(slot, raw); err != nil {
				return fmt.Errorf("failed to write slot %s: %w", slot, err)
			}
			fmt.Printf("copied %s (%d bytes)\n", slot, len(raw))
			copied++
		}

		fmt.Println()
		if migrateDryRun {
			color.Yellow("Would copy %d slots to %s", copied, migrateTo)
		} else {
			color.Green("✓ Copied %d slots to %s", copied, migrateTo)
		}
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend: sqlite or charm")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview what would be migrated")
	rootCmd.AddCommand(migrateCmd)
}
