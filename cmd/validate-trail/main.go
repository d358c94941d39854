package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/melodytrail/backend/internal/trail/catalog"
	"github.com/melodytrail/backend/internal/trail/graph"
)

func main() {
	quiet := flag.Bool("quiet", false, "Only print errors and warnings")
	help := flag.Bool("help", false, "Show help message")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	nodes := catalog.AllNodes()
	report := graph.Validate(nodes)

	if !*quiet {
		fmt.Println("Validating trail structure...")
		fmt.Printf("Checking %d nodes\n\n", report.NodeCount)
	}

	printErrors(report)
	printWarnings(report)
	if !*quiet {
		printSummary(report)
	}

	if report.HasErrors() {
		fmt.Println("\nValidation FAILED")
		os.Exit(1)
	}

	if !*quiet {
		fmt.Println("\nValidation PASSED")
	}
}

func printErrors(report *graph.Report) {
	for _, dup := range report.DuplicateIDs {
		fmt.Printf("ERROR: duplicate node id %q\n", dup)
	}

	for _, missing := range report.MissingPrereqs {
		fmt.Printf("ERROR: node %q requires %q which does not exist\n",
			missing.NodeID, missing.PrereqID)
	}

	for _, cycle := range report.Cycles {
		fmt.Printf("ERROR: prerequisite cycle: %s\n", strings.Join(cycle, " -> "))
	}

	for _, invalid := range report.InvalidTypes {
		fmt.Printf("ERROR: node %q has unknown node type %q\n",
			invalid.NodeID, invalid.NodeType)
	}
}

func printWarnings(report *graph.Report) {
	if report.XPWarning == nil {
		return
	}

	w := report.XPWarning
	fmt.Printf("WARNING: XP imbalance of %.1f%% between main paths (%s: %d XP, %s: %d XP)\n",
		w.VariancePercent, w.MaxCategory, w.MaxXP, w.MinCategory, w.MinXP)
}

func printSummary(report *graph.Report) {
	fmt.Println("\nXP economy:")
	for _, cat := range report.CategoryXP {
		fmt.Printf("  %-12s %4d XP across %d nodes\n", cat.Category, cat.TotalXP, cat.NodeCount)
	}

	fmt.Printf("\nNode types: %d typed, %d legacy\n", report.TypedNodes, report.LegacyNodes)
}

func showHelp() {
	fmt.Println("validate-trail checks the built-in trail catalog for structural problems:")
	fmt.Println("  - prerequisites that reference nonexistent nodes")
	fmt.Println("  - cycles in the prerequisite graph")
	fmt.Println("  - duplicate node ids")
	fmt.Println("  - unrecognized node types")
	fmt.Println("  - XP imbalance between the main paths (warning only)")
	fmt.Println()
	fmt.Println("Exits 1 if any error is found. Warnings never fail the run.")
	fmt.Println()
	flag.PrintDefaults()
}
