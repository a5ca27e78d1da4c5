package main

import (
	"github.com/spf13/cobra"

	"fluentscan/internal/driver"
)

var wordsCmd = &cobra.Command{
	Use:   "words FILE...",
	Short: "List every ASCII word in the input",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		return runAndReport(cmd, st, args, driver.Options{
			Walks: []driver.Walk{driver.WalkWords},
		})
	},
}
