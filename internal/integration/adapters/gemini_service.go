// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/centsible/backend/internal/application/adapter"
)

// GeminiService implements the SavingsAdvisor interface using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Recommend asks Gemini for short savings recommendations based on the
// user's recent transactions.
func (s *GeminiService) Recommend(ctx context.Context, samples []adapter.SpendingSample) ([]string, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(samples)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	recommendations, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return recommendations, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(samples []adapter.SpendingSample) string {
	var sb strings.Builder

	sb.WriteString(`You are a personal finance assistant. Analyze the user's recent transactions and produce actionable savings recommendations.

RULES:
- Base every recommendation on patterns visible in the transactions
- Keep each recommendation to one or two sentences
- Return between 3 and 5 recommendations
- Do not mention transaction IDs or internal data structures

RECENT TRANSACTIONS:
`)

	for _, sample := range samples {
		sb.WriteString(fmt.Sprintf("- Category: %s, Kind: %s, Amount: %s, Date: %s\n",
			sample.CategoryName, sample.Kind, sample.Amount, sample.Date))
	}

	sb.WriteString(`
RESPONSE FORMAT: Return only a JSON array of recommendation strings, no additional text.
`)

	return sb.String()
}

// parseResponse parses the Gemini response into recommendation strings.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) ([]string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var recommendations []string
	if err := json.Unmarshal([]byte(textContent), &recommendations); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	return recommendations, nil
}
