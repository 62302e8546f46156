package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

const (
	openaiName  = "openai"
	openaiLabel = "OpenAI"

	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultOpenAIModel   = "gpt-4o-mini"
)

// OpenAI generates commands through the chat completions API.
type OpenAI struct {
	APIKey  string
	Model   string
	BaseURL string // overridable for tests
	client  *http.Client
}

// NewOpenAI builds the OpenAI backend. An empty key is allowed here;
// Generate reports it as a MissingCredential failure without touching the
// network.
func NewOpenAI(apiKey string) *OpenAI {
	return &OpenAI{
		APIKey:  apiKey,
		Model:   defaultOpenAIModel,
		BaseURL: defaultOpenAIBaseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

func (o *OpenAI) Name() string { return openaiName }

func (o *OpenAI) Generate(ctx context.Context, request string) (string, error) {
	if strings.TrimSpace(o.APIKey) == "" {
		return "", newError(MissingCredential, openaiName,
			"OpenAI API key not configured. Run 'kmd configure'")
	}

	reqBody := map[string]interface{}{
		"model": o.Model,
		"messages": []map[string]string{
			{"role": "system", "content": systemInstruction()},
			{"role": "user", "content": request},
		},
		"temperature": 0.3,
		"max_tokens":  100,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", newError(Unexpected, openaiName, "failed to marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST",
		o.BaseURL+"/chat/completions",
		bytes.NewBuffer(jsonData))
	if err != nil {
		return "", newError(Unexpected, openaiName, "failed to build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+o.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", classifyTransport(openaiName, err, "OpenAI API unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(openaiName, openaiLabel, resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", newError(Unexpected, openaiName, "failed to decode response: %v", err)
	}

	if len(result.Choices) == 0 {
		return "", newError(EmptyResponse, openaiName, "empty response from OpenAI")
	}

	command := StripFences(result.Choices[0].Message.Content)
	if command == "" {
		return "", newError(EmptyResponse, openaiName, "empty response from OpenAI")
	}
	return command, nil
}
