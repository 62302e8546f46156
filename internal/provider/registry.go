package provider

import (
	"sort"
	"strings"

	"github.com/kmdapp/kmd/internal/config"
)

// constructors maps registry names to side-effect-free factories. Adding a
// backend means one entry here plus its implementation file.
var constructors = map[string]func(cfg *config.Config) Provider{
	ollamaName: func(cfg *config.Config) Provider { return NewOllama(cfg.OllamaURL, cfg.Model) },
	openaiName: func(cfg *config.Config) Provider { return NewOpenAI(cfg.APIKeys.OpenAI) },
	geminiName: func(cfg *config.Config) Provider { return NewGemini(cfg.APIKeys.Gemini) },
}

// New selects the configured backend. Lookup is case-insensitive and an
// unknown name resolves to the local Ollama backend rather than failing.
func New(cfg *config.Config) Provider {
	name := strings.ToLower(strings.TrimSpace(cfg.Provider))
	ctor, ok := constructors[name]
	if !ok {
		ctor = constructors[ollamaName]
	}
	return ctor(cfg)
}

// Names returns the registered backend names, sorted for display.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
