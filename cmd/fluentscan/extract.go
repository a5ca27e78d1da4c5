package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fluentscan/internal/driver"
)

var extractCmd = &cobra.Command{
	Use:   "extract [flags] FILE...",
	Short: "Extract balanced XML-like nodes and JSON objects",
	Long: `Extract walks each file and reports every balanced <tag>...</tag> node
and every brace-balanced JSON object. Use "-" to read standard input.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("kind", "all", "what to extract (node|object|all)")
	extractCmd.Flags().String("select", "", "JSONPath applied to each object; objects without a match are skipped")
}

func runExtract(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	kind, err := cmd.Flags().GetString("kind")
	if err != nil {
		return fmt.Errorf("failed to get kind flag: %w", err)
	}
	walks, err := driver.ParseWalks(kind)
	if err != nil {
		return err
	}
	for _, w := range walks {
		if w != driver.WalkNodes && w != driver.WalkObjects {
			return fmt.Errorf("extract: unsupported kind %q (expected: node|object|all)", w)
		}
	}
	selector, err := cmd.Flags().GetString("select")
	if err != nil {
		return fmt.Errorf("failed to get select flag: %w", err)
	}
	return runAndReport(cmd, st, args, driver.Options{
		Walks:    walks,
		Policy:   st.cfg.Policy(),
		Selector: selector,
	})
}
