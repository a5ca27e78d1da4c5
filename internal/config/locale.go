package config

import (
	"fmt"

	"golang.org/x/text/language"

	"fluentscan/internal/scanner"
)

// PolicyForLocale maps a BCP 47 tag to a separator policy. The empty string,
// "und" and "invariant" mean no grouping; any other valid tag may use
// grouping separators.
func PolicyForLocale(locale string) (scanner.SeparatorPolicy, error) {
	switch locale {
	case "", "invariant":
		return scanner.PolicyInvariant, nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return scanner.PolicyInvariant, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	if tag == language.Und {
		return scanner.PolicyInvariant, nil
	}
	return scanner.PolicyGrouping, nil
}
