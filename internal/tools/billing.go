package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const billReminderDefaultDays = 7

// BillReminder confirms a credit-card bill payment reminder. Like the other
// reminder stubs it stores nothing.
type BillReminder struct {
	clock Clock
}

func NewBillReminder(clock Clock) *BillReminder {
	return &BillReminder{clock: clock}
}

func (b *BillReminder) Name() string { return "set_bill_payment_reminder" }

func (b *BillReminder) Description() string {
	return "Set a reminder for paying a credit card bill. Use this tool ONLY when the user explicitly requests to set a reminder for a specific card bill payment, e.g. 'remind me to pay my HDFC card bill' or 'set a payment reminder for Amex due on July 20th'."
}

func (b *BillReminder) InputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"card_name": map[string]any{
				"type":        "string",
				"description": "The name or identifier of the credit card for which the bill payment reminder is being set, e.g. 'ICICI Platinum', 'HDFC Millennia'.",
			},
			"due_date": map[string]any{
				"type":        "string",
				"description": "The due date for the bill payment, e.g. '2025-07-15'. If not provided, defaults to 7 days from today.",
			},
		},
		"required":             []string{"card_name"},
		"additionalProperties": false,
	}
}

func (b *BillReminder) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		CardName string `json:"card_name"`
		DueDate  string `json:"due_date"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing set_bill_payment_reminder input: %w", err)
	}

	if strings.TrimSpace(args.CardName) == "" {
		return "Error: Credit card name cannot be empty for setting a reminder.", nil
	}

	dueDate := args.DueDate
	if dueDate == "" {
		dueDate = b.clock.Now().AddDate(0, 0, billReminderDefaultDays).Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, dueDate); err != nil {
		return "Error: Invalid due date format. Please use YYYY-MM-DD.", nil
	}

	return fmt.Sprintf("Reminder set: Pay bill for %s by %s.", args.CardName, dueDate), nil
}
