package assistant

import (
	"fmt"
	"strings"
	"time"

	"valet/internal/extract"
	"valet/internal/llm"
	"valet/internal/profile"
	"valet/internal/serpapi"
	"valet/internal/tools"
)

// Editable profile fields of the job-search assistant.
const (
	fieldNoticePeriod       = "notice_period"
	fieldExpectedSalary     = "expected_salary"
	fieldPreferredLocations = "job_location_preferred"
	fieldEmail              = "email"
	fieldNumber             = "number"
	fieldInterestedRoles    = "interested_roles"
)

// JobSeed holds the initial profile of the job-search assistant.
type JobSeed struct {
	Name               string
	Degree             string
	Email              string
	Phone              string
	NoticePeriod       string
	ExpectedSalary     string
	PreferredLocations []string
	InterestedRoles    []string
}

func DefaultJobSeed() JobSeed {
	return JobSeed{
		Name:               "Neelabh",
		Degree:             "BTech in Computer Science",
		Email:              "neelabhverma@gmail.com",
		Phone:              "8989898989",
		NoticePeriod:       "20 days",
		ExpectedSalary:     "80000",
		PreferredLocations: []string{"Remote", "New York"},
		InterestedRoles:    []string{"software engineer", "data analyst"},
	}
}

// NewJobSearch assembles the job-search assistant: profile, extractor, and
// the search/meeting/follow-up toolset.
func NewJobSearch(provider llm.Provider, search *serpapi.Client, seed JobSeed, opts ...Option) *Assistant {
	fixed := []profile.Field{
		{Name: "name", Value: seed.Name},
		{Name: "degree_holding", Value: seed.Degree},
	}

	editable := []profile.Field{
		{Name: fieldNoticePeriod, Value: seed.NoticePeriod},
		{Name: fieldExpectedSalary, Value: seed.ExpectedSalary},
	}
	for _, loc := range seed.PreferredLocations {
		editable = append(editable, profile.Field{Name: fieldPreferredLocations, Value: loc})
	}
	editable = append(editable,
		profile.Field{Name: fieldEmail, Value: seed.Email},
		profile.Field{Name: fieldNumber, Value: seed.Phone},
	)
	for _, role := range seed.InterestedRoles {
		editable = append(editable, profile.Field{Name: fieldInterestedRoles, Value: role})
	}

	prof := profile.New(fixed, editable)

	extractor := extract.NewExtractor(provider,
		"notice period, salary, job locations, contact info (email or phone), or interested roles")

	registry := NewRegistry()
	registry.Register(tools.NewJobSearch(search))
	registry.Register(&tools.ScheduleMeeting{})
	registry.Register(tools.NewFollowUpReminder(tools.SystemClock{}))

	return New("jobs", provider, extractor, registry, prof, jobPrompt, opts...)
}

func jobPrompt(prof *profile.Profile, now time.Time) string {
	join := func(field string) string {
		return strings.Join(prof.Values(field), ", ")
	}

	return fmt.Sprintf(`## Role and Identity
You are a professional job finding assistant with expertise in career advice, job search, meeting scheduling, and follow-up reminders.
Your goal is to help users find job opportunities, schedule meetings, set follow-up reminders, or provide career advice based on their preferences.
Current time: %s

## User Profile
- Name: %s
- Education: %s

## Job Preferences
- Notice Period: %s
- Expected Salary: %s
- Preferred Locations: %s
- Contact Email: %s
- Contact Number: %s
- Interested Roles: %s

## Core Responsibilities
1. Use the search_jobs tool only when the user explicitly requests to find or show job listings with a clear job title and location.
2. Use the schedule_meeting tool only when the user explicitly requests to arrange or set up a meeting with clear email, date, and time details.
3. Use the follow_up_reminder tool only when the user explicitly requests to set or arrange a follow-up reminder for a job application with a clear company name.
4. Update user information when new details (e.g. experience, salary, location preferences) are shared.
5. Provide career advice, skill recommendations, or summaries of user information for general queries without using tools.

## Tool Usage Instructions
- Use the search_jobs tool ONLY for explicit job search requests, such as 'find software engineer jobs in Seattle' or 'show data analyst positions in Chicago'. Do NOT use it for general career advice or skill questions; if job title or location is missing or unclear, fall back to the user's interested roles and preferred locations.
- Use the schedule_meeting tool ONLY for explicit meeting scheduling requests, such as 'schedule a meeting with hr@company.com on 2025-06-01 at 14:00'. Do NOT use it for other queries or if user email, recipient email, date, or time is missing.
- Use the follow_up_reminder tool ONLY for explicit follow-up reminder requests, such as 'set a follow-up reminder for Apple' or 'set a follow-up reminder for Apple on 2025-06-01'. If no date is provided, use a date 3 days from today. Do NOT use it for other queries or if the company name is missing.
- If required parameters for any tool are missing or unclear, respond with a helpful message asking for clarification instead of using the tool.
- Responses from tool calls will be appended to the dialogue for final response generation.

## Response Format Guidelines
- Keep responses concise, under 3 sentences when possible.
- For job search results, always include job titles, companies, locations, salaries, and apply links, and summarize the description of each job.
- If no jobs are found, inform the user politely.
- For meeting scheduling, confirm the meeting details with emails, date, and time.
- For follow-up reminders, confirm the reminder details with company name and date.
- Use a professional, friendly tone and align responses with user preferences.
- If information is missing or unclear, admit it and ask for clarification.`,
		now.Format("2006-01-02 15:04:05"),
		prof.FixedValue("name"),
		prof.FixedValue("degree_holding"),
		join(fieldNoticePeriod),
		join(fieldExpectedSalary),
		join(fieldPreferredLocations),
		join(fieldEmail),
		join(fieldNumber),
		join(fieldInterestedRoles),
	)
}
