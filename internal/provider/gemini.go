package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	geminiName  = "gemini"
	geminiLabel = "Gemini"

	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel   = "gemini-2.0-flash"
)

// Gemini generates commands through Google's generateContent API. Unlike
// the other backends the key travels as a URL query parameter, not a
// header.
type Gemini struct {
	APIKey  string
	Model   string
	BaseURL string // overridable for tests
	client  *http.Client
}

// NewGemini builds the Gemini backend. An empty key is allowed here;
// Generate reports it as a MissingCredential failure without touching the
// network.
func NewGemini(apiKey string) *Gemini {
	return &Gemini{
		APIKey:  apiKey,
		Model:   defaultGeminiModel,
		BaseURL: defaultGeminiBaseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

func (g *Gemini) Name() string { return geminiName }

func (g *Gemini) Generate(ctx context.Context, request string) (string, error) {
	if strings.TrimSpace(g.APIKey) == "" {
		return "", newError(MissingCredential, geminiName,
			"Gemini API key not configured. Run 'kmd configure'")
	}

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": fmt.Sprintf("%s\n\nUser request: %s", systemInstruction(), request)},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature":     0.3,
			"maxOutputTokens": 100,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", newError(Unexpected, geminiName, "failed to marshal request: %v", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		g.BaseURL, g.Model, url.QueryEscape(g.APIKey))

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", newError(Unexpected, geminiName, "failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", classifyTransport(geminiName, err, "Gemini API unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(geminiName, geminiLabel, resp.StatusCode)
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", newError(Unexpected, geminiName, "failed to decode response: %v", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", newError(EmptyResponse, geminiName, "empty response from Gemini")
	}

	command := StripFences(result.Candidates[0].Content.Parts[0].Text)
	if command == "" {
		return "", newError(EmptyResponse, geminiName, "empty response from Gemini")
	}
	return command, nil
}
