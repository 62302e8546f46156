package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// ollamaServer fakes the /api/generate route, capturing the request body.
func ollamaServer(t *testing.T, response string, status int) (*httptest.Server, *map[string]interface{}) {
	t.Helper()
	var captured map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		fmt.Fprintf(w, `{"response": %q}`, response)
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func TestOllamaGenerate(t *testing.T) {
	srv, captured := ollamaServer(t, "ls -la", http.StatusOK)

	o := NewOllama(srv.URL, "llama3.2")
	got, err := o.Generate(context.Background(), "list files")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if got != "ls -la" {
		t.Errorf("Generate = %q, want %q", got, "ls -la")
	}

	body := *captured
	if body["model"] != "llama3.2" {
		t.Errorf("request model = %v, want llama3.2", body["model"])
	}
	if body["stream"] != false {
		t.Errorf("request stream = %v, want false", body["stream"])
	}
	if prompt, _ := body["prompt"].(string); prompt == "" {
		t.Error("request prompt is empty")
	}
}

func TestOllamaStripsFences(t *testing.T) {
	srv, _ := ollamaServer(t, "```bash\nls -la\n```", http.StatusOK)

	o := NewOllama(srv.URL, "")
	got, err := o.Generate(context.Background(), "list files")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if got != "ls -la" {
		t.Errorf("Generate = %q, want fences stripped %q", got, "ls -la")
	}
}

func TestOllamaEmptyResponse(t *testing.T) {
	srv, _ := ollamaServer(t, "", http.StatusOK)

	o := NewOllama(srv.URL, "")
	_, err := o.Generate(context.Background(), "list files")
	assertKind(t, err, EmptyResponse)
}

func TestOllamaConnectionUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	o := NewOllama(srv.URL, "")
	_, err := o.Generate(context.Background(), "list files")
	assertKind(t, err, ConnectionUnavailable)
}

func TestOllamaTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	o := NewOllama(srv.URL, "")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := o.Generate(ctx, "list files")
	assertKind(t, err, Timeout)
}

func TestOllamaDefaults(t *testing.T) {
	o := NewOllama("", "")
	if o.BaseURL != DefaultOllamaURL {
		t.Errorf("BaseURL = %q, want %q", o.BaseURL, DefaultOllamaURL)
	}
	if o.Model != DefaultOllamaModel {
		t.Errorf("Model = %q, want %q", o.Model, DefaultOllamaModel)
	}
}

// assertKind fails unless err is a *Error of the wanted kind.
func assertKind(t *testing.T, err error, want Kind) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if perr.Kind != want {
		t.Errorf("error kind = %v, want %v (message %q)", perr.Kind, want, perr.Message)
	}
	if perr.Message == "" {
		t.Error("classified error carries no message")
	}
}
