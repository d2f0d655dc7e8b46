package main

import (
	"context"
	"fmt"

	"valet/internal/assistant"
	"valet/internal/config"
	"valet/internal/llm"
	"valet/internal/serpapi"
	"valet/internal/trace"
)

// buildAssistants wires the provider and tool clients into both assistants.
func buildAssistants(cfg *config.Config) (jobs, cards *assistant.Assistant, err error) {
	llmCfg, ok := cfg.LLMs[cfg.DefaultLLM]
	if !ok {
		return nil, nil, fmt.Errorf("default LLM %q not found in config", cfg.DefaultLLM)
	}
	provider := llm.NewOpenAI(llmCfg.BaseURL, llmCfg.APIKey, llmCfg.Model)

	search := serpapi.NewClient(cfg.SerpAPI.APIKey)

	jobs = assistant.NewJobSearch(provider, search, jobSeed(cfg))
	cards = assistant.NewCreditCard(provider, cardSeed(cfg))
	return jobs, cards, nil
}

func jobSeed(cfg *config.Config) assistant.JobSeed {
	seed := assistant.DefaultJobSeed()
	if cfg.Owner.Name != "" {
		seed.Name = cfg.Owner.Name
	}
	if cfg.Owner.Degree != "" {
		seed.Degree = cfg.Owner.Degree
	}
	if cfg.Owner.Email != "" {
		seed.Email = cfg.Owner.Email
	}
	if cfg.Owner.Phone != "" {
		seed.Phone = cfg.Owner.Phone
	}
	return seed
}

func cardSeed(cfg *config.Config) assistant.CardSeed {
	seed := assistant.DefaultCardSeed()
	if cfg.Owner.Name != "" {
		seed.Name = cfg.Owner.Name
	}
	if cfg.Owner.Email != "" {
		seed.PrimaryEmail = cfg.Owner.Email
	}
	if cfg.Owner.Phone != "" {
		seed.Phone = cfg.Owner.Phone
	}
	return seed
}

// initTracing starts the OTLP exporter when configured. The returned shutdown
// is a no-op when tracing is disabled.
func initTracing(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	if !cfg.Trace.Enabled {
		return func(context.Context) error { return nil }, nil
	}
	return trace.Init(ctx, trace.Config{
		Endpoint: cfg.Trace.Endpoint,
		URLPath:  cfg.Trace.URLPath,
		APIKey:   cfg.Trace.APIKey,
	})
}
