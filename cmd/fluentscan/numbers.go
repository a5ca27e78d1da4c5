package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fluentscan/internal/config"
	"fluentscan/internal/driver"
)

var numbersCmd = &cobra.Command{
	Use:   "numbers [flags] FILE...",
	Short: "Decode every number in the input",
	Long: `Numbers reads every digit run as a double. With a grouping locale
(anything other than "und"/"invariant") a separator followed by exactly three
digits is treated as a thousands group: "1.234,5" decodes to 1234.5.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		policy := st.cfg.Policy()
		if cmd.Flags().Changed("locale") {
			locale, err := cmd.Flags().GetString("locale")
			if err != nil {
				return fmt.Errorf("failed to get locale flag: %w", err)
			}
			if policy, err = config.PolicyForLocale(locale); err != nil {
				return err
			}
		}
		return runAndReport(cmd, st, args, driver.Options{
			Walks:  []driver.Walk{driver.WalkNumbers},
			Policy: policy,
		})
	},
}

func init() {
	numbersCmd.Flags().String("locale", "", "BCP 47 tag selecting the separator policy (overrides scan.locale)")
}
