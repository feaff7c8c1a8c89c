// Command scctool is a test-runner CLI surface: it accepts module
// selectors as positional arguments and exits 0 iff every selected
// assertion passes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scctool [selectors...]",
	Short: "Assertion runner for the SCC graph library",
	Long: `scctool drives the library's self-check suite against a set of
module selectors: graph, scc, tarjan, kosaraju, memory, utils, io,
integration, performance, or all. Exit status is 0 iff every selected
assertion passes.`,
	Args: cobra.ArbitraryArgs,
	RunE: runSelectors,
}

func runSelectors(cmd *cobra.Command, args []string) error {
	selectors := args
	if len(selectors) == 0 {
		selectors = []string{"all"}
	}

	selected, err := expandSelectors(selectors)
	if err != nil {
		return err
	}

	var failures int
	for _, name := range selected {
		suite, ok := suites[name]
		if !ok {
			return fmt.Errorf("unknown module selector %q", name)
		}
		fmt.Printf("== %s ==\n", name)
		for _, assertion := range suite {
			if aerr := assertion.run(); aerr != nil {
				fmt.Printf("FAIL %s: %v\n", assertion.name, aerr)
				failures++
				continue
			}
			fmt.Printf("PASS %s\n", assertion.name)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d assertion(s) failed", failures)
	}

	return nil
}

// allSelectors lists every module selector accepted besides "all".
var allSelectors = []string{
	"graph", "scc", "tarjan", "kosaraju",
	"memory", "utils", "io", "integration", "performance",
}

func expandSelectors(requested []string) ([]string, error) {
	seen := make(map[string]bool, len(requested))
	var out []string
	for _, sel := range requested {
		if sel == "all" {
			return allSelectors, nil
		}
		if _, ok := suites[sel]; !ok {
			return nil, fmt.Errorf("unknown module selector %q", sel)
		}
		if !seen[sel] {
			seen[sel] = true
			out = append(out, sel)
		}
	}
	return out, nil
}
