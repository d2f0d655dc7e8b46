package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const followUpDefaultDays = 3

// FollowUpReminder confirms a job-application follow-up reminder. Nothing is
// stored; the confirmation string is the whole effect.
type FollowUpReminder struct {
	clock Clock
}

func NewFollowUpReminder(clock Clock) *FollowUpReminder {
	return &FollowUpReminder{clock: clock}
}

func (f *FollowUpReminder) Name() string { return "follow_up_reminder" }

func (f *FollowUpReminder) Description() string {
	return "Set a reminder for following up on a job application only when the user explicitly requests to set or arrange a follow-up reminder for a company they applied to, such as 'set a follow-up reminder for Apple'. If no date is specified, use a date 3 days from today. Do not use for other queries."
}

func (f *FollowUpReminder) InputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"company_name": map[string]any{
				"type":        "string",
				"description": "The name of the company to follow up with.",
			},
			"date": map[string]any{
				"type":        "string",
				"description": "The date for the follow-up reminder, e.g. '2025-06-01'. If not provided, defaults to 3 days from today.",
			},
		},
		"required":             []string{"company_name"},
		"additionalProperties": false,
	}
}

func (f *FollowUpReminder) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		CompanyName string `json:"company_name"`
		Date        string `json:"date"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing follow_up_reminder input: %w", err)
	}

	if strings.TrimSpace(args.CompanyName) == "" {
		return "Error: Company name cannot be empty.", nil
	}

	date := args.Date
	if date == "" {
		date = f.clock.Now().AddDate(0, 0, followUpDefaultDays).Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return "Error: Invalid date format (use YYYY-MM-DD).", nil
	}

	return fmt.Sprintf("Follow-up reminder set for %s on %s.", args.CompanyName, date), nil
}
