package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var (
	listProvider string
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available models and their pricing",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cache, err := newPricingCache()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		models, err := cache.ListModels(ctx, listProvider)
		if err != nil {
			return err
		}

		if listJSON {
			output := make(map[string]map[string]interface{}, len(models))
			for key, rec := range models {
				output[key] = map[string]interface{}{
					"input":    rec.InputPrice,
					"output":   rec.OutputPrice,
					"currency": rec.Currency,
				}
			}
			data, err := json.MarshalIndent(output, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		lastUpdated, err := cache.LastUpdated(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Available models (Last updated: %s):\n\n", lastUpdated.Format("2006-01-02 15:04:05 MST"))

		keys := make([]string, 0, len(models))
		for key := range models {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			rec := models[key]
			fmt.Printf("%s:\n", key)
			fmt.Printf("  Input:  $%7.2f per 1M tokens\n", rec.InputPrice)
			fmt.Printf("  Output: $%7.2f per 1M tokens\n", rec.OutputPrice)
			fmt.Println()
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listProvider, "provider", "", "Filter by provider (e.g., anthropic, openai)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(listCmd)
}
