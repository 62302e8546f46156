// Package provider implements the command-generation backends and the
// uniform contract between them and the rest of the application.
//
// Every backend translates a natural language request into a single shell
// command. Expected failure modes (unreachable backend, missing credential,
// malformed response) never escape this package as plain errors: they are
// classified *Error values that Run folds into a displayable Result.
package provider

import "context"

// Provider generates a terminal command from a natural language request.
type Provider interface {
	// Name returns the registry name of this backend.
	Name() string

	// Generate translates request into a shell command. Failures are
	// returned as *Error values classified by Kind.
	Generate(ctx context.Context, request string) (string, error)
}
