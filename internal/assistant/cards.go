package assistant

import (
	"fmt"
	"strings"
	"time"

	"valet/internal/extract"
	"valet/internal/llm"
	"valet/internal/profile"
	"valet/internal/tools"
)

// Editable profile fields of the credit-card assistant.
const (
	fieldCardCount      = "number_of_credit_cards"
	fieldCardNames      = "credit_card_names"
	fieldCardLimits     = "credit_card_limits"
	fieldAlternateEmail = "alternate_email"
)

// CardSeed holds the initial profile of the credit-card assistant.
type CardSeed struct {
	Name           string
	PrimaryEmail   string
	Phone          string
	CardCount      string
	CardNames      []string
	CardLimits     []string
	AlternateEmail string
}

func DefaultCardSeed() CardSeed {
	return CardSeed{
		Name:           "Neelabh",
		PrimaryEmail:   "neelabhverma@gmail.com",
		Phone:          "8989898989",
		CardCount:      "1",
		CardNames:      []string{"HDFC Millennia"},
		CardLimits:     []string{"100000"},
		AlternateEmail: "neelabh.alt@example.com",
	}
}

// NewCreditCard assembles the credit-card assistant: profile, extractor, and
// the reminder/points/balance toolset.
func NewCreditCard(provider llm.Provider, seed CardSeed, opts ...Option) *Assistant {
	fixed := []profile.Field{
		{Name: "name", Value: seed.Name},
		{Name: "primary_email", Value: seed.PrimaryEmail},
		{Name: "phone_number", Value: seed.Phone},
	}

	editable := []profile.Field{
		{Name: fieldCardCount, Value: seed.CardCount},
	}
	for _, name := range seed.CardNames {
		editable = append(editable, profile.Field{Name: fieldCardNames, Value: name})
	}
	for _, limit := range seed.CardLimits {
		editable = append(editable, profile.Field{Name: fieldCardLimits, Value: limit})
	}
	editable = append(editable, profile.Field{Name: fieldAlternateEmail, Value: seed.AlternateEmail})

	prof := profile.New(fixed, editable)

	extractor := extract.NewExtractor(provider,
		"number of credit cards, credit card(s) owned, credit card limit(s), or alternate email")

	registry := NewRegistry()
	registry.Register(tools.NewBillReminder(tools.SystemClock{}))
	registry.Register(&tools.CreditPoints{})
	registry.Register(&tools.CardBalance{})

	return New("cards", provider, extractor, registry, prof, cardPrompt, opts...)
}

func cardPrompt(prof *profile.Profile, now time.Time) string {
	join := func(field string) string {
		return strings.Join(prof.Values(field), ", ")
	}

	return fmt.Sprintf(`## Role and Identity
You are a helpful AI assistant specializing in credit card related queries.
Your goal is to assist users with their credit card questions, set bill payment reminders, check credit points, and check card balances.
You should be polite, professional, and accurate.
Current time: %s

## User Profile
- Name: %s
- Primary Email: %s
- Phone Number: %s

## User's Credit Card Information (Editable by user interaction)
- Number of Credit Cards: %s
- Credit Card(s) Owned: %s
- Credit Card Limit(s): %s
- Alternate Email: %s

## Core Responsibilities
1. Use the set_bill_payment_reminder tool ONLY when the user explicitly asks to set a reminder for a card bill payment, providing the card name. If the due date is missing, default to 7 days from today.
2. Use the check_credit_points tool ONLY when the user explicitly asks about reward points for a specific card name.
3. Use the check_card_balance tool ONLY when the user explicitly asks about the balance for a specific card name.
4. Update the user's credit card information when new details (e.g. new card, updated limit, alternate email) are shared.
5. Provide general advice or answer questions about credit cards, fees, benefits, etc. without using tools if the query doesn't match tool functionalities.

## Tool Usage Instructions
- Use tools ONLY for their specified explicit purpose. Do not guess or infer.
- set_bill_payment_reminder: requires card_name. due_date is optional (defaults to 7 days from now).
- check_credit_points: requires card_name.
- check_card_balance: requires card_name.
- If required parameters for any tool are missing or unclear, ask for clarification instead of using the tool with incomplete data.
- Responses from tool calls will be appended to the dialogue for final response generation.

## Response Format Guidelines
- Keep responses concise and to the point.
- For bill reminders, confirm the card name and reminder date.
- For credit points, state the points and for which card.
- For balance checks, provide outstanding balance and available limit for the specified card.
- If information is missing or unclear for a tool, politely ask the user for the necessary details.
- Use a professional and friendly tone.`,
		now.Format("2006-01-02 15:04:05"),
		prof.FixedValue("name"),
		prof.FixedValue("primary_email"),
		prof.FixedValue("phone_number"),
		join(fieldCardCount),
		join(fieldCardNames),
		join(fieldCardLimits),
		join(fieldAlternateEmail),
	)
}
