package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/patterns/formats"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List saved boards",
	Long: `List boards saved with Ctrl+S during play.

Examples:
  life saves
  life saves rm life-20240309-140506
  life saves export life-20240309-140506 board.cells
  life play --load life-20240309-140506`,
	Args: cobra.NoArgs,
	Run:  runSaves,
}

var savesRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a saved board",
	Args:  cobra.ExactArgs(1),
	Run:   runSavesRm,
}

var savesExportCmd = &cobra.Command{
	Use:   "export <name> [file]",
	Short: "Write a saved board as a .cells pattern file",
	Long: `Write a saved board as a plaintext pattern. Without a file the pattern
is printed to stdout. Exported files can be copied to ~/.life/patterns.`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runSavesExport,
}

func init() {
	savesCmd.AddCommand(savesRmCmd)
	savesCmd.AddCommand(savesExportCmd)
}

// mustOpenStore opens the database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runSaves(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	boards, err := store.ListBoards()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing boards: %v\n", err)
		os.Exit(1)
	}

	if len(boards) == 0 {
		fmt.Println("No saved boards.")
		fmt.Println()
		fmt.Println("Press Ctrl+S during 'life play' to save a board.")
		return
	}

	maxNameLen := 4
	for _, b := range boards {
		maxNameLen = max(maxNameLen, len(b.Name))
	}

	fmt.Printf("  %-*s  %-14s  %10s  %10s  %s\n", maxNameLen, "Name", "Mode", "Generation", "Population", "Saved")
	fmt.Printf("  %-*s  %-14s  %10s  %10s  %s\n", maxNameLen, "----", "----", "----------", "----------", "-----")
	for _, b := range boards {
		fmt.Printf("  %-*s  %-14s  %10d  %10d  %s\n",
			maxNameLen, b.Name, b.Mode, b.Generation, b.Population, b.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func runSavesRm(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	if err := store.DeleteBoard(args[0]); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "Error: no saved board named %q\n", args[0])
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		store.Close()
		os.Exit(1)
	}
	fmt.Printf("Removed %s\n", args[0])
}

func runSavesExport(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	b, err := store.LoadBoard(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading board %q: %v\n", args[0], err)
		store.Close()
		os.Exit(1)
	}

	data := formats.EncodeCells(formats.Pattern{
		ID:          b.Name,
		Name:        b.Name,
		Description: fmt.Sprintf("%s board at generation %d", b.Mode, b.Generation),
		Cells:       b.Cells,
	})

	if len(args) == 1 {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(args[1], data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", args[1], err)
		store.Close()
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d cells)\n", args[1], len(b.Cells))
}
