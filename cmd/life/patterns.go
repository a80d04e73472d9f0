package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/patterns"
	"github.com/vovakirdan/tui-life/internal/patterns/formats"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the pattern library",
	Long: `List built-in patterns and any pattern files in ~/.life/patterns.

Pattern files may be YAML (.yaml, .yml) or plaintext (.cells).
User patterns with the same ID as a built-in are ignored.

Examples:
  life patterns
  life patterns show glider-gun`,
	Run: runPatterns,
}

var patternsShowCmd = &cobra.Command{
	Use:   "show <id|file>",
	Short: "Print a pattern in plaintext format",
	Args:  cobra.ExactArgs(1),
	Run:   runPatternsShow,
}

func init() {
	patternsCmd.AddCommand(patternsShowCmd)
}

func runPatterns(_ *cobra.Command, _ []string) {
	all, err := patterns.All(patternDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading patterns: %v\n", err)
		os.Exit(1)
	}

	maxIDLen := 2
	for _, p := range all {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Printf("  %-*s  %5s  %-7s  %s\n", maxIDLen, "ID", "Cells", "Size", "Name")
	fmt.Printf("  %-*s  %5s  %-7s  %s\n", maxIDLen, "--", "-----", "----", "----")
	for _, p := range all {
		b := p.Bounds()
		size := fmt.Sprintf("%dx%d", b.Width(), b.Height())
		name := p.Name
		if p.FilePath != "" {
			name += " (" + p.FilePath + ")"
		}
		fmt.Printf("  %-*s  %5d  %-7s  %s\n", maxIDLen, p.ID, len(p.Cells), size, name)
	}

	fmt.Println()
	fmt.Println("Run 'life play --pattern <id>' to start with a pattern.")
}

func runPatternsShow(_ *cobra.Command, args []string) {
	p, err := patterns.Resolve(args[0], patternDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	os.Stdout.Write(formats.EncodeCells(formats.Pattern{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Cells:       p.Cells,
	}))
}
