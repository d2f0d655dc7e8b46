package tools

import (
	"context"
	"encoding/json"
	"testing"
)

func execute(t *testing.T, tool interface {
	Execute(ctx context.Context, input string) (string, error)
}, args map[string]any) string {
	t.Helper()
	b, err := json.Marshal(args)
	if err != nil {
		t.Fatalf("marshalling args: %v", err)
	}
	result, err := tool.Execute(context.Background(), string(b))
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	return result
}

func TestScheduleMeeting(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{
			name: "valid",
			args: map[string]any{
				"user_email": "me@example.com", "recipient_email": "hr@company.com",
				"date": "2025-06-01", "time": "14:00",
			},
			want: "Meeting scheduled between me@example.com and hr@company.com on 2025-06-01 at 14:00.",
		},
		{
			name: "bad user email",
			args: map[string]any{
				"user_email": "not-an-email", "recipient_email": "hr@company.com",
				"date": "2025-06-01", "time": "14:00",
			},
			want: "Error: Invalid email format provided.",
		},
		{
			name: "missing tld",
			args: map[string]any{
				"user_email": "me@example.com", "recipient_email": "hr@company",
				"date": "2025-06-01", "time": "14:00",
			},
			want: "Error: Invalid email format provided.",
		},
		{
			name: "bad date",
			args: map[string]any{
				"user_email": "me@example.com", "recipient_email": "hr@company.com",
				"date": "June 1st", "time": "14:00",
			},
			want: "Error: Invalid date (YYYY-MM-DD) or time (HH:MM) format.",
		},
		{
			name: "bad time",
			args: map[string]any{
				"user_email": "me@example.com", "recipient_email": "hr@company.com",
				"date": "2025-06-01", "time": "2pm",
			},
			want: "Error: Invalid date (YYYY-MM-DD) or time (HH:MM) format.",
		},
	}

	tool := &ScheduleMeeting{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := execute(t, tool, tt.args); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScheduleMeeting_MalformedInput(t *testing.T) {
	tool := &ScheduleMeeting{}
	if _, err := tool.Execute(context.Background(), "not json"); err == nil {
		t.Error("expected error for malformed input")
	}
}
