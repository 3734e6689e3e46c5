package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Force update pricing data",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cache, err := newPricingCache()
		if err != nil {
			return err
		}

		fmt.Println("Updating pricing data...")
		catalog, err := cache.Load(cmd.Context(), true)
		if err != nil {
			return err
		}

		fmt.Printf("Updated successfully. Last updated: %s\n",
			catalog.LastUpdated.Format("2006-01-02 15:04:05 MST"))
		if catalog.Default {
			fmt.Println("Warning: serving built-in default pricing; remote and cache were unavailable.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
