// ABOUTME: CLI commands for Charm-based sync.
// ABOUTME: Supports link, unlink, status, and wipe operations.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/store"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Sync fittrack data across devices",
	Long: `Sync fittrack data across devices using Charm Cloud.

Your data is E2E encrypted with your SSH key before upload.
The server never sees your unencrypted workout data.

Sync requires the charm backend; run with --backend charm or set it in
~/.config/fittrack/config.json.

GETTING STARTED:

  1. Link your device (creates/uses SSH key automatically):
     fittrack sync link

  2. On other devices, link with the same Charm account:
     fittrack sync link

  3. Check sync status:
     fittrack --backend charm sync status

COMMANDS:

  link        Link this device to your Charm account
  unlink      Disconnect this device from Charm
  status      Show sync status and account info
  wipe        Delete cloud and local data (destructive)

Data syncs automatically after each write operation.`,
}

var syncLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link this device to Charm",
	Long: `Link this device to your Charm account.

If you don't have a Charm account, one will be created using your SSH key.
If you already have an account, you'll be prompted to link via charm.sh.

Example:
  fittrack sync link`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Use charm CLI to link
		charmCmd := exec.Command("charm", "link")
		charmCmd.Stdin = os.Stdin
		charmCmd.Stdout = os.Stdout
		charmCmd.Stderr = os.Stderr

		if err := charmCmd.Run(); err != nil {
			return fmt.Errorf("failed to link: %w\n\nMake sure 'charm' CLI is installed: go install github.com/charmbracelet/charm@latest", err)
		}

		color.Green("\n✓ Device linked to Charm")
		fmt.Println("Your fittrack data will now sync automatically across devices.")

		// Sync immediately after linking
		if cs, ok := appStore.(*store.CharmStore); ok {
			if err := cs.Sync(); err != nil {
				color.Yellow("⚠ Initial sync failed: %v", err)
			} else {
				color.Green("✓ Initial sync complete")
			}
		}

		return nil
	},
}

var syncUnlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Disconnect from Charm",
	Long: `Disconnect this device from Charm.

This does not delete your local fittrack data.
You can link again later with 'fittrack sync link'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Use charm CLI to unlink
		charmCmd := exec.Command("charm", "unlink")
		charmCmd.Stdin = os.Stdin
		charmCmd.Stdout = os.Stdout
		charmCmd.Stderr = os.Stderr

		if err := charmCmd.Run(); err != nil {
			return fmt.Errorf("failed to unlink: %w", err)
		}

		color.Green("✓ Device unlinked from Charm")
		fmt.Println("Your local fittrack data is preserved.")

		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	Long: `Show current sync status including:
- Charm account info
- Connection status
- Local data info`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cs, ok := appStore.(*store.CharmStore)
		if !ok {
			color.Yellow("Sync requires the charm backend")
			fmt.Println("\nRun with --backend charm, or set it in ~/.config/fittrack/config.json.")
			return nil
		}

		id, err := cs.ID()
		if err != nil {
			color.Yellow("Not linked to Charm")
			fmt.Println("\nRun 'fittrack sync link' to connect to Charm.")
			return nil
		}

		fmt.Println("Charm ID:", id)
		fmt.Println("Server: charm.2389.dev")
		fmt.Println()

		sessions := store.LoadSessions(cs)
		goals := store.LoadGoals(cs)

		color.Green("✓ Connected to Charm")
		fmt.Printf("  Workouts: %d\n", len(sessions))
		fmt.Printf("  Goals: %d\n", len(goals))

		return nil
	},
}

var syncWipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete all cloud and local data",
	Long: `Delete all cloud backups and local data.

This is a DESTRUCTIVE operation. ALL data will be permanently deleted.
Use this to:
- Completely remove all fittrack data
- Start completely fresh`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cs, ok := appStore.(*store.CharmStore)
		if !ok {
			color.Yellow("Sync requires the charm backend")
			fmt.Println("\nRun with --backend charm, or set it in ~/.config/fittrack/config.json.")
			return nil
		}

		// Confirm
		fmt.Println("This will PERMANENTLY DELETE all cloud backups and local fittrack data.")
		fmt.Print("Type 'wipe' to confirm: ")
		reader := bufio.NewReader(os.Stdin)
		confirm, _ := reader.ReadString('\n')
		if strings.TrimSpace(confirm) != "wipe" {
			fmt.Println("Aborted.")
			return nil
		}

		for _, slot := range store.AllSlots {
			if err := cs.Delete(slot); err != nil {
				color.Yellow("⚠ Failed to delete %s: %v", slot, err)
			}
		}

		color.Yellow("✗ All fittrack data deleted")
		return nil
	},
}

func init() {
	syncCmd.AddCommand(syncLinkCmd)
	syncCmd.AddCommand(syncUnlinkCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncWipeCmd)
	rootCmd.AddCommand(syncCmd)
}
