package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"alloy/internal/driver"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the enhancement result cache",
}

var cacheDropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Delete every cached enhancement result",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := driver.OpenDiskCache()
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		if err := cache.DropAll(); err != nil {
			return err
		}
		if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "cache dropped")
		}
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheDropCmd)
}
