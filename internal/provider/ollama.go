package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const (
	ollamaName  = "ollama"
	ollamaLabel = "Ollama"

	// DefaultOllamaURL is the standard local Ollama address.
	DefaultOllamaURL = "http://localhost:11434"

	// DefaultOllamaModel is used when the configuration names no model.
	DefaultOllamaModel = "llama3.2"

	requestTimeout = 30 * time.Second
)

// Ollama generates commands through a locally running Ollama server.
type Ollama struct {
	BaseURL string
	Model   string
	client  *http.Client
}

// NewOllama builds the local backend. Construction does no I/O; the server
// is first contacted by Generate.
func NewOllama(baseURL, model string) *Ollama {
	if baseURL == "" {
		baseURL = DefaultOllamaURL
	}
	if model == "" {
		model = DefaultOllamaModel
	}
	return &Ollama{
		BaseURL: baseURL,
		Model:   model,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

func (o *Ollama) Name() string { return ollamaName }

// Generate sends {model, prompt, stream:false} to /api/generate and reads
// the "response" field.
func (o *Ollama) Generate(ctx context.Context, request string) (string, error) {
	reqBody := map[string]interface{}{
		"model":  o.Model,
		"prompt": buildPrompt(request),
		"stream": false,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", newError(Unexpected, ollamaName, "failed to marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST",
		o.BaseURL+"/api/generate",
		bytes.NewBuffer(jsonData))
	if err != nil {
		return "", newError(Unexpected, ollamaName, "failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", classifyTransport(ollamaName, err,
			"Ollama not running. Start with 'ollama serve'")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(ollamaName, ollamaLabel, resp.StatusCode)
	}

	var result struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", newError(Unexpected, ollamaName, "failed to decode response: %v", err)
	}

	command := StripFences(result.Response)
	if command == "" {
		return "", newError(EmptyResponse, ollamaName, "empty response from Ollama")
	}
	return command, nil
}
