package ui

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"

	"github.com/kmdapp/kmd/internal/config"
	"github.com/kmdapp/kmd/internal/provider"
)

// Action represents the user's choice for a generated command
type Action int

const (
	ActionRun Action = iota
	ActionCopy
	ActionCancel
)

// ConfirmCommand shows the command and asks the user what to do
func ConfirmCommand(command string) (Action, error) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Println("\nGenerated command:")
	fmt.Printf("  %s\n\n", command)

	var choice string
	prompt := &survey.Select{
		Message: "What would you like to do?",
		Options: []string{
			"Run it",
			"Copy only",
			"Cancel",
		},
	}

	if err := survey.AskOne(prompt, &choice); err != nil {
		return ActionCancel, err
	}

	switch choice {
	case "Run it":
		return ActionRun, nil
	case "Copy only":
		return ActionCopy, nil
	default:
		return ActionCancel, nil
	}
}

// ConfigureSettings walks the user through the settings, editing cfg in
// place. Blank answers keep the current value; API key prompts never echo.
func ConfigureSettings(cfg *config.Config) error {
	providerPrompt := &survey.Select{
		Message: "Select a provider:",
		Options: provider.Names(),
		Default: cfg.Provider,
	}
	if err := survey.AskOne(providerPrompt, &cfg.Provider); err != nil {
		return err
	}

	switch cfg.Provider {
	case "ollama":
		urlPrompt := &survey.Input{
			Message: "Ollama URL:",
			Default: cfg.OllamaURL,
		}
		if err := survey.AskOne(urlPrompt, &cfg.OllamaURL); err != nil {
			return err
		}
		modelPrompt := &survey.Input{
			Message: "Model:",
			Default: cfg.Model,
		}
		if err := survey.AskOne(modelPrompt, &cfg.Model); err != nil {
			return err
		}

	case "openai":
		key, err := promptAPIKey("OpenAI", cfg.APIKeys.OpenAI)
		if err != nil {
			return err
		}
		cfg.APIKeys.OpenAI = key

	case "gemini":
		key, err := promptAPIKey("Gemini", cfg.APIKeys.Gemini)
		if err != nil {
			return err
		}
		cfg.APIKeys.Gemini = key
	}

	hotkeyPrompt := &survey.Input{
		Message: "Toggle hotkey:",
		Default: cfg.Hotkey,
	}
	if err := survey.AskOne(hotkeyPrompt, &cfg.Hotkey); err != nil {
		return err
	}

	themePrompt := &survey.Select{
		Message: "Theme:",
		Options: ThemeNames(),
		Default: cfg.Theme,
	}
	return survey.AskOne(themePrompt, &cfg.Theme)
}

// promptAPIKey asks for a key without echoing it. An empty answer keeps the
// current key so re-running configure never wipes credentials.
func promptAPIKey(label, current string) (string, error) {
	message := fmt.Sprintf("%s API key:", label)
	if current != "" {
		message = fmt.Sprintf("%s API key (blank keeps current):", label)
	}

	var key string
	prompt := &survey.Password{Message: message}
	if err := survey.AskOne(prompt, &key); err != nil {
		return "", err
	}
	if key == "" {
		return current, nil
	}
	return key, nil
}

// ShowSuccess displays a success message
func ShowSuccess(message string) {
	green := color.New(color.FgGreen, color.Bold)
	green.Printf("✓ %s\n", message)
}

// ShowError displays an error message
func ShowError(message string) {
	red := color.New(color.FgRed, color.Bold)
	red.Printf("✗ %s\n", message)
}

// ShowInfo displays an info message
func ShowInfo(message string) {
	blue := color.New(color.FgBlue)
	blue.Println(message)
}
