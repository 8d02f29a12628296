package main

import (
	"fmt"

	"halls-of-ruzt/internal/storage"

	"github.com/spf13/cobra"
)

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "List save slots",
	Long: `List every save slot with its depth and turn count.

Examples:
  ruzt slots
  ruzt slots rm bot`,
	Args: cobra.NoArgs,
	RunE: runSlots,
}

var slotsRmCmd = &cobra.Command{
	Use:   "rm <slot>",
	Short: "Delete a save slot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSlotsRm,
}

func init() {
	slotsCmd.AddCommand(slotsRmCmd)
}

func runSlots(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open save database: %w", err)
	}
	defer store.Close()

	slots, err := store.ListSlots()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(slots) == 0 {
		fmt.Fprintln(out, "No saved runs.")
		return nil
	}
	fmt.Fprintf(out, "  %-16s  %-5s  %-6s  %s\n", "Slot", "Depth", "Turns", "Saved")
	fmt.Fprintf(out, "  %-16s  %-5s  %-6s  %s\n", "----", "-----", "-----", "-----")
	for _, s := range slots {
		fmt.Fprintf(out, "  %-16s  %-5d  %-6d  %s\n", s.Name, s.Depth, s.Turns, s.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runSlotsRm(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open save database: %w", err)
	}
	defer store.Close()

	if err := store.DeleteSlot(args[0]); err != nil {
		return fmt.Errorf("slot %q: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted slot %q.\n", args[0])
	return nil
}
