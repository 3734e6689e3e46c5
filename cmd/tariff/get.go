package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <provider> <model>",
	Short: "Get pricing for a model",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := newPricingCache()
		if err != nil {
			return err
		}

		provider, model := args[0], args[1]
		rec, err := cache.GetModelPricing(cmd.Context(), provider, model)
		if err != nil {
			return err
		}

		fmt.Printf("%s/%s:\n", provider, model)
		fmt.Printf("  Input:  $%.2f per 1M tokens\n", rec.InputPrice)
		fmt.Printf("  Output: $%.2f per 1M tokens\n", rec.OutputPrice)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
