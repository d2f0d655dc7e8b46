package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ScheduleMeeting confirms meeting details after validating them. It performs
// no actual scheduling.
type ScheduleMeeting struct{}

func (s *ScheduleMeeting) Name() string { return "schedule_meeting" }

func (s *ScheduleMeeting) Description() string {
	return "Schedule a meeting only when the user explicitly requests to arrange or set up a meeting, providing their email, the recipient's email, date, and time, such as 'schedule a meeting with hr@company.com on 2025-06-01 at 14:00'. Do not use for other queries or if any required details are missing."
}

func (s *ScheduleMeeting) InputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"user_email": map[string]any{
				"type":        "string",
				"description": "The user's email address for the meeting.",
			},
			"recipient_email": map[string]any{
				"type":        "string",
				"description": "The email address of the person the meeting is with.",
			},
			"date": map[string]any{
				"type":        "string",
				"description": "The date of the meeting, e.g. '2025-06-01'.",
			},
			"time": map[string]any{
				"type":        "string",
				"description": "The time of the meeting, e.g. '14:00'.",
			},
		},
		"required":             []string{"user_email", "recipient_email", "date", "time"},
		"additionalProperties": false,
	}
}

func (s *ScheduleMeeting) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		UserEmail      string `json:"user_email"`
		RecipientEmail string `json:"recipient_email"`
		Date           string `json:"date"`
		Time           string `json:"time"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing schedule_meeting input: %w", err)
	}

	if !emailPattern.MatchString(args.UserEmail) || !emailPattern.MatchString(args.RecipientEmail) {
		return "Error: Invalid email format provided.", nil
	}

	if _, err := time.Parse(dateLayout, args.Date); err != nil {
		return "Error: Invalid date (YYYY-MM-DD) or time (HH:MM) format.", nil
	}
	if _, err := time.Parse(timeLayout, args.Time); err != nil {
		return "Error: Invalid date (YYYY-MM-DD) or time (HH:MM) format.", nil
	}

	return fmt.Sprintf("Meeting scheduled between %s and %s on %s at %s.", args.UserEmail, args.RecipientEmail, args.Date, args.Time), nil
}
