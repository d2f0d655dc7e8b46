package assistant

import (
	"strings"
	"testing"

	"valet/internal/serpapi"
)

func TestNewJobSearch_Wiring(t *testing.T) {
	p := &scriptedProvider{}
	a := NewJobSearch(p, serpapi.NewClient("test-key"), DefaultJobSeed())

	if a.Name() != "jobs" {
		t.Errorf("Name() = %q", a.Name())
	}

	var names []string
	for _, def := range a.registry.Defs() {
		names = append(names, def.Name)
	}
	want := []string{"search_jobs", "schedule_meeting", "follow_up_reminder"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("tools = %v, want %v", names, want)
	}
}

func TestJobPrompt_ContainsProfileAndTime(t *testing.T) {
	p := &scriptedProvider{}
	a := NewJobSearch(p, serpapi.NewClient("test-key"), DefaultJobSeed())

	prompt := jobPrompt(a.Profile(), testNow)
	for _, want := range []string{
		"Current time: 2025-06-10 15:30:00",
		"- Name: Neelabh",
		"- Education: BTech in Computer Science",
		"- Notice Period: 20 days",
		"- Preferred Locations: Remote, New York",
		"- Interested Roles: software engineer, data analyst",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestJobPrompt_ReflectsProfileUpdates(t *testing.T) {
	p := &scriptedProvider{}
	a := NewJobSearch(p, serpapi.NewClient("test-key"), DefaultJobSeed())

	a.Profile().Append("job_location_preferred", "Berlin")

	prompt := jobPrompt(a.Profile(), testNow)
	if !strings.Contains(prompt, "Remote, New York, Berlin") {
		t.Errorf("prompt does not reflect appended location:\n%s", prompt)
	}
}

func TestNewCreditCard_Wiring(t *testing.T) {
	p := &scriptedProvider{}
	a := NewCreditCard(p, DefaultCardSeed())

	if a.Name() != "cards" {
		t.Errorf("Name() = %q", a.Name())
	}

	var names []string
	for _, def := range a.registry.Defs() {
		names = append(names, def.Name)
	}
	want := []string{"set_bill_payment_reminder", "check_credit_points", "check_card_balance"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("tools = %v, want %v", names, want)
	}
}

func TestCardPrompt_ContainsProfileAndTime(t *testing.T) {
	p := &scriptedProvider{}
	a := NewCreditCard(p, DefaultCardSeed())

	prompt := cardPrompt(a.Profile(), testNow)
	for _, want := range []string{
		"Current time: 2025-06-10 15:30:00",
		"- Name: Neelabh",
		"- Primary Email: neelabhverma@gmail.com",
		"- Credit Card(s) Owned: HDFC Millennia",
		"- Credit Card Limit(s): 100000",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
