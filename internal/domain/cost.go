package domain

import "math"

const (
	tokensPerMillion = 1_000_000.0
	costPrecision    = 1e6 // round costs to 6 decimal places
)

// Cost computes the monetary cost of a call against one price record,
// rounded to 6 decimal places. Token counts are plain arithmetic inputs;
// negative counts produce negative cost contributions, and rejecting them
// is the caller's concern.
func Cost(rec PriceRecord, inputTokens, outputTokens int) float64 {
	inputCost := float64(inputTokens) / tokensPerMillion * rec.InputPrice
	outputCost := float64(outputTokens) / tokensPerMillion * rec.OutputPrice

	return math.Round((inputCost+outputCost)*costPrecision) / costPrecision
}
