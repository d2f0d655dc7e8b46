package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// CreditPoints returns hard-coded reward point balances selected by substring
// match on the card name. Not a real lookup.
type CreditPoints struct{}

func (c *CreditPoints) Name() string { return "check_credit_points" }

func (c *CreditPoints) Description() string {
	return "Check the accumulated credit or reward points for a specific credit card. Use this tool ONLY when the user explicitly asks about their points for a named card, e.g. 'how many points do I have on my ICICI card?'."
}

func (c *CreditPoints) InputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"card_name": map[string]any{
				"type":        "string",
				"description": "The name or identifier of the credit card to check points for, e.g. 'Amex Gold'.",
			},
		},
		"required":             []string{"card_name"},
		"additionalProperties": false,
	}
}

func (c *CreditPoints) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		CardName string `json:"card_name"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing check_credit_points input: %w", err)
	}

	if strings.TrimSpace(args.CardName) == "" {
		return "Error: Credit card name cannot be empty for checking points.", nil
	}

	points := "5,000"
	switch {
	case strings.Contains(args.CardName, "HDFC"):
		points = "7,250"
	case strings.Contains(args.CardName, "Amex"):
		points = "12,800"
	}

	return fmt.Sprintf("You have %s reward points on your %s card.", points, args.CardName), nil
}
