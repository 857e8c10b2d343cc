package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blaisecz/health-trends/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/rotisserie/eris"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You assist a clinical team that remotely monitors participants through repeated questionnaires.

You receive the computed analysis of one participant: per-field symptom trends (first half vs second half means), a trajectory label, and an additive risk score with the factors that produced it. Base your conclusions only on the provided data.

Your goals:
- Summarize the participant's recent evolution in plain language for a nurse or physician.
- Point out the fields that worsened and the risk factors that fired.
- Suggest follow-up actions for the monitoring team.

Rules:
- Do NOT invent measurements, diagnoses, or medications that are not in the data.
- If data is limited (few records or short time span), say so explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences on the participant's evolution and current risk level.",
  "concerns": ["one item per worsening field or fired risk factor"],
  "suggested_actions": ["2-4 concrete follow-up actions for the monitoring team"]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing one monitored participant.

- "trend" holds per-field trends; "first_avg" and "second_avg" are ordinal means and "trend" is the direction.
- "trajectory" is the participant-level label derived from those trends.
- "risk" holds the additive score, its tier, and the factors that contributed.

JSON:

%s

Based on this data, respond in the required JSON format.`

// SummaryLLM generates clinician-facing narratives.
type SummaryLLM interface {
	// Summarize turns a participant report into a narrative.
	Summarize(ctx context.Context, report *domain.ParticipantReport) (*domain.ClinicalNarrative, error)
}

// OpenAIClient implements SummaryLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
	prompt string
}

// NewOpenAIClient creates a new OpenAI client for generating narratives.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
		prompt: systemPrompt,
	}
}

// WithSystemPrompt replaces the built-in system prompt. An empty prompt is ignored.
func (c *OpenAIClient) WithSystemPrompt(prompt string) *OpenAIClient {
	if c != nil && prompt != "" {
		c.prompt = prompt
	}
	return c
}

// Summarize calls OpenAI to generate a narrative for one participant.
func (c *OpenAIClient) Summarize(ctx context.Context, report *domain.ParticipantReport) (*domain.ClinicalNarrative, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	reportJSON, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, eris.Wrapf(ErrOpenAIRequest, "serialize report: %v", err)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.prompt),
			openai.UserMessage(fmt.Sprintf(userPromptTemplate, string(reportJSON))),
		},
	})
	if err != nil {
		return nil, eris.Wrapf(ErrOpenAIRequest, "%v", err)
	}

	if len(resp.Choices) == 0 {
		return nil, eris.Wrap(ErrOpenAIResponse, "no choices in response")
	}

	return ParseNarrative(resp.Choices[0].Message.Content)
}

// ParseNarrative decodes the model's JSON answer.
func ParseNarrative(content string) (*domain.ClinicalNarrative, error) {
	var out domain.ClinicalNarrative
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, eris.Wrapf(ErrOpenAIResponse, "%v", err)
	}
	if out.Summary == "" {
		return nil, eris.Wrap(ErrOpenAIResponse, "empty summary")
	}
	return &out, nil
}
