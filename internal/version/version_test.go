package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestColoredWithoutColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	if got := Colored(); got != Version {
		t.Errorf("Colored() = %q, want %q", got, Version)
	}

	origVersion := Version
	Version = "7"
	defer func() { Version = origVersion }()
	if got := Colored(); got != "7" {
		t.Errorf("Colored() = %q for a version without dots", got)
	}
}
