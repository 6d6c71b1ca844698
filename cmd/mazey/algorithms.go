package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazey/internal/registry"
)

var algorithmsCmd = &cobra.Command{
	Use:     "algorithms",
	Aliases: []string{"list"},
	Short:   "List maze algorithms",
	Long:    `Shows every maze algorithm and the grid shapes it can carve.`,
	Args:    cobra.NoArgs,
	Run:     runAlgorithms,
}

func runAlgorithms(_ *cobra.Command, _ []string) {
	algos := registry.List()

	fmt.Println("Available algorithms:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, a := range algos {
		maxIDLen = max(maxIDLen, len(a.ID))
		maxTitleLen = max(maxTitleLen, len(a.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Grids")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----")

	for _, a := range algos {
		kinds := make([]string, len(a.Kinds))
		for i, k := range a.Kinds {
			kinds[i] = string(k)
		}
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, a.ID, maxTitleLen, a.Title, strings.Join(kinds, ", "))
	}

	fmt.Println()
	fmt.Println("Run 'mazey generate --algorithm <id>' to use one.")
}
