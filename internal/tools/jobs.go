// Package tools holds the assistants' tool executors. Apart from the job
// search, which hits a real search API, every tool is a stub that validates
// its input and returns a confirmation string.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"valet/internal/serpapi"
)

const (
	maxResults     = 3
	maxDescription = 300
)

type JobSearch struct {
	client *serpapi.Client
}

func NewJobSearch(client *serpapi.Client) *JobSearch {
	return &JobSearch{client: client}
}

func (j *JobSearch) Name() string { return "search_jobs" }

func (j *JobSearch) Description() string {
	return "Search for job listings only when the user explicitly requests to find or show job opportunities, such as 'find software engineer jobs in Seattle' or 'show data analyst positions'. Do not use for any other use case other than the job search."
}

func (j *JobSearch) InputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"job_title": map[string]any{
				"type":        "string",
				"description": "The specific job role, e.g. 'Python Developer', 'ML Engineer'.",
			},
			"job_location": map[string]any{
				"type":        "string",
				"description": "The specific job location, e.g. 'New York', 'Remote'.",
			},
		},
		"required":             []string{"job_title", "job_location"},
		"additionalProperties": false,
	}
}

func (j *JobSearch) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		JobTitle    string `json:"job_title"`
		JobLocation string `json:"job_location"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing search_jobs input: %w", err)
	}

	slog.Info("searching jobs", "title", args.JobTitle, "location", args.JobLocation)

	jobs, err := j.client.SearchJobs(ctx, args.JobTitle, args.JobLocation)
	if err != nil {
		slog.Warn("job search failed", "error", err)
		return fmt.Sprintf("Error searching for jobs: %v", err), nil
	}

	if len(jobs) == 0 {
		return fmt.Sprintf("No jobs found for %s in %s.", args.JobTitle, args.JobLocation), nil
	}
	if len(jobs) > maxResults {
		jobs = jobs[:maxResults]
	}

	parts := make([]string, 0, len(jobs))
	for i, job := range jobs {
		parts = append(parts, formatJob(i+1, job))
	}
	return strings.Join(parts, "\n\n"), nil
}

func formatJob(n int, job serpapi.Job) string {
	title := job.Title
	if title == "" {
		title = "Unknown position"
	}
	company := job.CompanyName
	if company == "" {
		company = "Unknown company"
	}
	location := job.Location
	if location == "" {
		location = "Unknown location"
	}
	salary := job.Salary
	if salary == "" {
		salary = "$80,000 - $110,000 per year"
	}
	description := job.Description
	if description == "" {
		description = "No description provided."
	}
	if runes := []rune(description); len(runes) > maxDescription {
		description = string(runes[:maxDescription-3]) + "..."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Job #%d: %s at %s (%s)\n", n, title, company, location)
	fmt.Fprintf(&b, "Brief Description: %s\n", description)
	fmt.Fprintf(&b, "Salary: %s\n", salary)
	if len(job.ApplyOptions) > 0 {
		link := job.ApplyOptions[0].Link
		if link == "" {
			link = "No link provided."
		}
		fmt.Fprintf(&b, "Apply Link: %s\n", link)
	}
	return b.String()
}
