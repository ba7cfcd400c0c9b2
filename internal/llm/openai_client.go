package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrSummarizerUnavailable indicates the summary model is not configured or its circuit is open.
	ErrSummarizerUnavailable = errors.New("health summarizer unavailable")
	// ErrSummaryRequest indicates an error during the model request.
	ErrSummaryRequest = errors.New("health summary request failed")
	// ErrSummaryResponse indicates an error parsing the model response.
	ErrSummaryResponse = errors.New("failed to parse health summary response")
)

const DefaultModel = "gpt-4o-mini"

const systemPrompt = `You are a non-medical wellness assistant for a nutrition and health portal.

You receive body measurements, computed anthropometric metrics (BMI, waist-to-hip ratio, estimated body fat, lean mass, body water, protein share, basal metabolic rate, visceral fat level) and their reference bands for a single patient. Base your answer only on the provided data.

Your goals:
- Describe the patient's current body composition in clear, neutral language.
- Point out which values sit inside or outside their reference band.
- Give practical, behavioral suggestions about nutrition, hydration and activity.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases or treatment. Recommend talking to their nutritionist when values are far from the band.
- Values of 0 mean the measurement was not provided; say so instead of interpreting them.
- Be concise and concrete. Answer in the language of the gender label when it is not English.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing the patient's body composition.",
  "observations": ["3-5 short observations about the metrics and their bands."],
  "suggestions": ["2-4 concrete, non-medical habits tailored to these numbers."]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this patient's health profile.

- "measurements" are raw values in kg and cm.
- "metrics" are derived values; "bmr" is kcal/day, "water_pct" and "protein_pct" are percentages of body weight.
- "classification" holds the reference band of BMI and waist-to-hip ratio.

JSON:

%s

Based on this data, respond in the required JSON format.`

// HealthSummarizer turns a computed health profile into a short narrative.
type HealthSummarizer interface {
	Summarize(ctx context.Context, summaryCtx *domain.SummaryContext) (*domain.SummaryOutput, error)
}

// OpenAIClient implements HealthSummarizer using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for health summaries.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = DefaultModel
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// Summarize calls OpenAI to describe the health profile.
func (c *OpenAIClient) Summarize(ctx context.Context, summaryCtx *domain.SummaryContext) (*domain.SummaryOutput, error) {
	if c == nil {
		return nil, ErrSummarizerUnavailable
	}

	contextJSON, err := json.MarshalIndent(summaryCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrSummaryRequest, err)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(fmt.Sprintf(userPromptTemplate, string(contextJSON))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSummaryRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrSummaryResponse)
	}

	return parseSummary(resp.Choices[0].Message.Content)
}

func parseSummary(content string) (*domain.SummaryOutput, error) {
	var output domain.SummaryOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSummaryResponse, err)
	}
	if output.Summary == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrSummaryResponse)
	}
	if output.Observations == nil {
		output.Observations = []string{}
	}
	if output.Suggestions == nil {
		output.Suggestions = []string{}
	}
	return &output, nil
}
