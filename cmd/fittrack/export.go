// ABOUTME: CLI commands for exporting and importing fittrack data.
// ABOUTME: Dumps and restores all store slots as a JSON document.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/store"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export fittrack data as JSON",
	Long: `Export all fittrack data as a JSON document.

The export contains every store slot: workout history, goals, metrics
buckets, daily counters, and any active workout. It is suitable for
backup and for 'fittrack import'.

EXAMPLES:

  fittrack export                   # Print to stdout
  fittrack export -o backup.json    # Save to file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dump := make(map[string]json.RawMessage)
		for _, slot := range store.AllSlots {
			raw, err := appStore.Get(slot)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					continue
				}
				return fmt.Errorf("failed to read slot %s: %w", slot, err)
			}
			if json.Valid(raw) {
				dump[slot] = json.RawMessage(raw)
			} else {
				// Counter slots hold bare decimal strings
				encoded, err := json.Marshal(string(raw))
				if err != nil {
					return fmt.Errorf("failed to encode slot %s: %w", slot, err)
				}
				dump[slot] = encoded
			}
		}

		data, err := json.MarshalIndent(dump, "", "  ")
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import fittrack data from JSON",
	Long: `Import fittrack data from a JSON backup file.

Slots present in the backup overwrite the local ones; slots absent from
the backup are left untouched.

EXAMPLES:

  fittrack import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		var dump map[string]json.RawMessage
		if err := json.Unmarshal(data, &dump); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		imported := 0
		for _, slot := range store.AllSlots {
			raw, ok := dump[slot]
			if !ok {
				continue
			}
			value := []byte(raw)
			var s string
			if err := json.Unmarshal(raw, &s); err == nil {
				value = []byte(s)
			}
			if err := appStore.Set(slot, value); err != nil {
				return fmt.Errorf("failed to write slot %s: %w", slot, err)
			}
			imported++
		}

		color.Green("✓ Imported %d slots from %s", imported, args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
