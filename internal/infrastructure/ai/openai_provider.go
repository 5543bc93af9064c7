// Package ai implements the vision/text providers on top of an
// OpenAI-compatible chat-completions API. Provider responses are untyped
// JSON from a language model, so the analysis shape is validated against an
// explicit schema at this boundary; anything that fails validation surfaces
// as an error and the use cases substitute their canned fallback.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"techassist/internal/domain/entities"
	"techassist/internal/usecase/interfaces"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var ErrMissingAPIKey = errors.New("missing OPENAI_API_KEY")

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o"
	callTimeout    = 30 * time.Second
	maxTokens      = 500

	analyzeSystemPrompt = "You are a plumbing and electrical expert. Analyze the provided image and identify any plumbing or electrical fixtures, their condition, and make recommendations for repair or replacement. Return your response as JSON with the following fields: identified (string), condition (string), recommendations (string), parts (array of strings), repair_steps (array of strings), estimated_repair_time (string), skill_level (string)."
	analyzeUserPrompt   = "Analyze this image of a plumbing or electrical fixture. Identify what it is, its condition, and recommend solutions."

	identifySystemPrompt = "You are a hardware parts expert. Look at the image and return a short search query (a few words, plain text, no punctuation) naming the replacement part a technician would search for at a hardware store."

	enhanceSystemPrompt = "You are a professional technical writer specializing in plumbing and electrical service reports. Your task is to take a technician's rough notes and transform them into a professional, technically precise report that would be appropriate for a customer. Maintain all the factual information but improve grammar, vocabulary, completeness, and professionalism."
)

const analysisSchemaJSON = `{
  "type": "object",
  "required": ["identified", "condition", "recommendations", "parts"],
  "properties": {
    "identified": {"type": "string"},
    "condition": {"type": "string"},
    "recommendations": {"type": "string"},
    "parts": {"type": "array", "items": {"type": "string"}},
    "repair_steps": {"type": "array", "items": {"type": "string"}},
    "estimated_repair_time": {"type": "string"},
    "skill_level": {"type": "string"}
  }
}`

var analysisSchema = jsonschema.MustCompileString("photo_analysis.json", analysisSchemaJSON)

// OpenAIProvider satisfies both the vision and text provider contracts.
type OpenAIProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

var (
	_ interfaces.IVisionProvider = (*OpenAIProvider)(nil)
	_ interfaces.ITextProvider   = (*OpenAIProvider)(nil)
)

// NewOpenAIProviderFromEnv reads OPENAI_API_KEY (required), OPENAI_BASE_URL
// and OPENAI_MODEL. A missing key returns ErrMissingAPIKey so the caller can
// run without a provider and rely on the canned fallbacks.
func NewOpenAIProviderFromEnv() (*OpenAIProvider, error) {
	key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if key == "" {
		return nil, ErrMissingAPIKey
	}
	base := strings.TrimSpace(os.Getenv("OPENAI_BASE_URL"))
	if base == "" {
		base = defaultBaseURL
	}
	model := strings.TrimSpace(os.Getenv("OPENAI_MODEL"))
	if model == "" {
		model = defaultModel
	}
	return &OpenAIProvider{
		apiKey:  key,
		baseURL: strings.TrimRight(base, "/"),
		model:   model,
		client:  &http.Client{Timeout: callTimeout},
	}, nil
}

type chatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat interface{}   `json:"response_format,omitempty"`
	MaxTokens      int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func imageContent(text, imageDataURL string) []map[string]interface{} {
	return []map[string]interface{}{
		{"type": "text", "text": text},
		{"type": "image_url", "image_url": map[string]string{"url": imageDataURL}},
	}
}

func (p *OpenAIProvider) complete(ctx context.Context, req chatRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[ai][provider] completion failed status=%d body_len=%d", resp.StatusCode, len(respBody))
		return "", fmt.Errorf("ai provider: unexpected status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("ai provider: empty choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

// AnalyzeImage runs the fixture-analysis prompt and validates the returned
// JSON against the PhotoAnalysis schema before decoding it.
func (p *OpenAIProvider) AnalyzeImage(ctx context.Context, imageDataURL string) (entities.PhotoAnalysis, error) {
	content, err := p.complete(ctx, chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: analyzeSystemPrompt},
			{Role: "user", Content: imageContent(analyzeUserPrompt, imageDataURL)},
		},
		ResponseFormat: map[string]string{"type": "json_object"},
		MaxTokens:      maxTokens,
	})
	if err != nil {
		return entities.PhotoAnalysis{}, err
	}

	var raw interface{}
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return entities.PhotoAnalysis{}, fmt.Errorf("ai provider: analysis not json: %w", err)
	}
	if err := analysisSchema.Validate(raw); err != nil {
		log.Printf("[ai][provider] analysis schema validation failed err=%v", err)
		return entities.PhotoAnalysis{}, fmt.Errorf("ai provider: analysis schema: %w", err)
	}

	var analysis entities.PhotoAnalysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return entities.PhotoAnalysis{}, err
	}
	return analysis, nil
}

// IdentifyPart returns opaque query text; callers treat it exactly like
// user-typed search input.
func (p *OpenAIProvider) IdentifyPart(ctx context.Context, imageDataURL string) (string, error) {
	content, err := p.complete(ctx, chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: identifySystemPrompt},
			{Role: "user", Content: imageContent("What replacement part is shown in this image?", imageDataURL)},
		},
		MaxTokens: 60,
	})
	if err != nil {
		return "", err
	}
	query := strings.TrimSpace(content)
	if query == "" {
		return "", errors.New("ai provider: empty part query")
	}
	return query, nil
}

func (p *OpenAIProvider) EnhanceNote(ctx context.Context, content string) (string, error) {
	enhanced, err := p.complete(ctx, chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: enhanceSystemPrompt},
			{Role: "user", Content: fmt.Sprintf("Please enhance this technician note to make it more professional: %q", content)},
		},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(enhanced), nil
}
