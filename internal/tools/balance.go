package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// CardBalance returns hard-coded balance figures selected by substring match
// on the card name. Not a real lookup.
type CardBalance struct{}

func (c *CardBalance) Name() string { return "check_card_balance" }

func (c *CardBalance) Description() string {
	return "Check the current outstanding balance and available credit limit for a specific credit card. Use this tool ONLY when the user explicitly asks about their card balance for a named card, e.g. 'what's the balance on my SBI card?'."
}

func (c *CardBalance) InputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"card_name": map[string]any{
				"type":        "string",
				"description": "The name or identifier of the credit card to check balance for, e.g. 'SBI SimplySAVE'.",
			},
		},
		"required":             []string{"card_name"},
		"additionalProperties": false,
	}
}

func (c *CardBalance) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		CardName string `json:"card_name"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing check_card_balance input: %w", err)
	}

	if strings.TrimSpace(args.CardName) == "" {
		return "Error: Credit card name cannot be empty for checking balance.", nil
	}

	outstanding := "₹15,230.50"
	available := "₹84,769.50"
	switch {
	case strings.Contains(args.CardName, "ICICI"):
		outstanding = "₹5,100.00"
		available = "₹1,94,900.00"
	case strings.Contains(args.CardName, "SBI"):
		outstanding = "₹22,000.75"
		available = "₹1,27,999.25"
	}

	return fmt.Sprintf("For your %s card: Outstanding balance is %s. Available credit limit is %s.", args.CardName, outstanding, available), nil
}
