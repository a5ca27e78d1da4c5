package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"fluentscan/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "fluentscan",
	Short: "Scan text files for markup nodes, JSON objects, numbers and words",
	Long: `fluentscan walks plain-text inputs with a forward cursor and extracts
balanced XML-like nodes, brace-balanced JSON objects, locale-aware numbers and words`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cleanup, err := setupTracing(cmd)
		if err != nil {
			return err
		}
		traceCleanup = cleanup
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if traceCleanup != nil {
			traceCleanup()
			traceCleanup = nil
		}
	},
}

// traceCleanup закрывает трассировщик после выполнения команды
var traceCleanup func()

// main registers subcommands and persistent flags, then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(numbersCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("config", "", "path to fluentscan.toml (default: nearest one above the working directory)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("format", "pretty", "output format (pretty|json|msgpack)")
	rootCmd.PersistentFlags().Int("jobs", 0, "max parallel files (0=auto)")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (\"-\" for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")

	if err := rootCmd.Execute(); err != nil {
		if traceCleanup != nil {
			traceCleanup()
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
