package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fluentscan/internal/config"
	"fluentscan/internal/driver"
	"fluentscan/internal/report"
)

// settings is the configuration file merged with explicitly set flags.
type settings struct {
	cfg     config.Config
	format  string
	color   bool
	jobs    int
	timings bool
}

func loadSettings(cmd *cobra.Command) (settings, error) {
	flags := cmd.Root().PersistentFlags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return settings{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Resolve(configPath, ".")
	if err != nil {
		return settings{}, err
	}

	if flags.Changed("format") {
		if cfg.Output.Format, err = flags.GetString("format"); err != nil {
			return settings{}, fmt.Errorf("failed to get format flag: %w", err)
		}
	}
	if flags.Changed("color") {
		if cfg.Output.Color, err = flags.GetString("color"); err != nil {
			return settings{}, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	if flags.Changed("jobs") {
		if cfg.Scan.Jobs, err = flags.GetInt("jobs"); err != nil {
			return settings{}, fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	cfg.Output.Color = strings.ToLower(cfg.Output.Color)
	if err := cfg.Validate(); err != nil {
		return settings{}, err
	}

	timings, err := flags.GetBool("timings")
	if err != nil {
		return settings{}, fmt.Errorf("failed to get timings flag: %w", err)
	}

	useColor := resolveColor(cfg.Output.Color, isTerminal(os.Stdout))
	color.NoColor = !useColor

	return settings{
		cfg:     cfg,
		format:  cfg.Output.Format,
		color:   useColor,
		jobs:    cfg.Scan.Jobs,
		timings: timings,
	}, nil
}

func resolveColor(mode string, tty bool) bool {
	return mode == "on" || (mode == "auto" && tty)
}

// runAndReport executes the walks over args and renders the result. Files that
// could not be loaded are reported in the output and turn into a non-zero exit.
func runAndReport(cmd *cobra.Command, st settings, args []string, opts driver.Options) error {
	opts.Jobs = st.jobs
	res, err := driver.Run(cmd.Context(), args, opts)
	if err != nil {
		return err
	}
	ropts := report.Options{Color: st.color, Timings: st.timings}
	if err := report.Write(cmd.OutOrStdout(), st.format, res, ropts); err != nil {
		return err
	}
	if res.Failed() {
		return fmt.Errorf("some inputs could not be read")
	}
	return nil
}
