package services

import (
	"fmt"
	"strings"

	"estate-server/entities"
)

// Prompt templates for the text generation API. Each builder produces a
// complete single-shot prompt; there is no multi-turn protocol on the
// wire, so conversation history is flattened into the prompt text.

const assistantSystem = `You are a helpful real-estate discovery assistant.
Answer questions about properties, neighborhoods, financing and the home
buying process. Keep answers short and practical. If you are unsure,
say so instead of inventing details.`

const locationOverviewTemplate = `Write a short neighborhood overview for a
property listing page.

Property: %s
Location: %s

Cover connectivity, nearby schools and hospitals, and the general
character of the area in at most three paragraphs. Plain text only.`

const developerOverviewTemplate = `Write a short public overview of a
real-estate developer for their profile page.

Developer: %s
City: %s
About: %s

Two paragraphs, neutral tone, no superlatives that are not supported by
the facts above.`

const emiAdviceTemplate = `A home buyer is considering a property priced at
%.0f with a down payment of %.0f, financed over %d years. Explain the
likely monthly EMI range at current typical rates, the effect of the
tenure on total interest, and one or two practical suggestions. Keep it
under 200 words and do not present the numbers as a binding quote.`

const vaastuTemplate = `Evaluate the following property description against
common Vaastu guidelines. Point out aspects that align well and aspects
that a Vaastu-conscious buyer might want to review, without being
alarmist.

Property description:
%s`

// BuildAssistantPrompt flattens a session's history into one prompt.
func BuildAssistantPrompt(history []entities.ChatMessage) string {
	var b strings.Builder
	b.WriteString(assistantSystem)
	b.WriteString("\n\n")
	for _, msg := range history {
		switch msg.Role {
		case entities.ChatRoleAssistant:
			b.WriteString("Assistant: ")
		default:
			b.WriteString("User: ")
		}
		b.WriteString(msg.Content)
		b.WriteString("\n")
	}
	b.WriteString("Assistant:")
	return b.String()
}

func BuildLocationOverviewPrompt(title, location string) string {
	return fmt.Sprintf(locationOverviewTemplate, title, location)
}

func BuildDeveloperOverviewPrompt(name, city, about string) string {
	return fmt.Sprintf(developerOverviewTemplate, name, city, about)
}

func BuildEMIAdvicePrompt(price, downPayment float64, years int) string {
	return fmt.Sprintf(emiAdviceTemplate, price, downPayment, years)
}

func BuildVaastuPrompt(description string) string {
	return fmt.Sprintf(vaastuTemplate, description)
}
