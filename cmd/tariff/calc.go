package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:   "calc <provider> <model> <input_tokens> <output_tokens>",
	Short: "Calculate API call cost",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputTokens, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid input token count %q: %w", args[2], err)
		}
		outputTokens, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("invalid output token count %q: %w", args[3], err)
		}

		cache, err := newPricingCache()
		if err != nil {
			return err
		}

		provider, model := args[0], args[1]
		cost, err := cache.CalculateCost(cmd.Context(), provider, model, inputTokens, outputTokens)
		if err != nil {
			return err
		}

		fmt.Printf("Cost calculation for %s/%s:\n", provider, model)
		fmt.Printf("  Input tokens:  %d\n", inputTokens)
		fmt.Printf("  Output tokens: %d\n", outputTokens)
		fmt.Printf("  Total cost:    $%.6f\n", cost)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)
}
