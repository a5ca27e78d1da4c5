package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fluentscan/internal/scanner"
	"fluentscan/internal/source"
)

var windowCmd = &cobra.Command{
	Use:   "window --at OFFSET FILE",
	Short: "Show the text around a byte offset",
	Args:  cobra.ExactArgs(1),
	RunE:  runWindow,
}

func init() {
	windowCmd.Flags().Int("at", 0, "byte offset of the cursor")
	windowCmd.Flags().Int("radius", -1, "bytes shown on each side (default: scan.window)")
}

func runWindow(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	at, err := cmd.Flags().GetInt("at")
	if err != nil {
		return fmt.Errorf("failed to get at flag: %w", err)
	}
	radius, err := cmd.Flags().GetInt("radius")
	if err != nil {
		return fmt.Errorf("failed to get radius flag: %w", err)
	}
	if radius < 0 {
		radius = st.cfg.Scan.Window
	}

	fs := source.NewFileSet()
	id, err := fs.Load(args[0])
	if err != nil {
		return err
	}
	return renderWindow(cmd.OutOrStdout(), fs, id, at, radius)
}

func renderWindow(out io.Writer, fs *source.FileSet, id source.FileID, at, radius int) error {
	file := fs.Get(id)
	sc := scanner.NewFile(file)
	if at < 0 || at > sc.Len() {
		return fmt.Errorf("offset %d out of range [0, %d]", at, sc.Len())
	}
	sc.Advance(at)

	pos, _ := fs.Resolve(sc.SpanFrom(sc.Mark()))
	before, after := sc.WindowParts(radius)
	marker := color.New(color.FgRed, color.Bold).Sprint(scanner.CursorMarker)

	_, err := fmt.Fprintf(out, "%s:%d:%d (offset %d/%d)\n%s%s%s\n",
		file.Path, pos.Line, pos.Col, at, sc.Len(), before, marker, after)
	return err
}
