package provider

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// systemInstruction forces bare-command output from every backend. The OS
// and shell hints keep the model from suggesting commands the user's
// environment does not have.
func systemInstruction() string {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	return fmt.Sprintf("You are a command line expert. The user needs a terminal command "+
		"for %s (shell: %s). Return ONLY the exact command string. "+
		"Do not use markdown. Do not explain. Do not add quotes. "+
		"Example - User: 'list files' -> Response: ls -la", runtime.GOOS, shell)
}

// buildPrompt produces the single-prompt form used by backends without a
// chat-style message API.
func buildPrompt(request string) string {
	return fmt.Sprintf("%s\nUser: %s\nResponse:", systemInstruction(), request)
}

// StripFences removes the markdown code fences models sometimes wrap around
// the command despite the instruction, and trims surrounding whitespace.
func StripFences(s string) string {
	s = strings.ReplaceAll(s, "```bash", "")
	s = strings.ReplaceAll(s, "```sh", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
