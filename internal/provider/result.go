package provider

import (
	"context"
	"errors"
)

// ErrorSentinel prefixes displayed failures. The surface renders success and
// failure through the same text field and only this prefix tells them apart,
// which keeps the display path free of error handling. Known weakness: a
// generated command that legitimately starts with "# Error: " would be
// indistinguishable, which is why callers that care inspect Err, not the
// rendered string.
const ErrorSentinel = "# Error: "

// Result is the outcome of one provider call. Exactly one of Command or Err
// is meaningful.
type Result struct {
	Command string
	Err     *Error
}

// Ok reports whether the call produced a command.
func (r Result) Ok() bool { return r.Err == nil }

// Display renders the result as a single line of user-facing text: the
// command itself, or the sentinel-prefixed failure message.
func (r Result) Display() string {
	if r.Err != nil {
		return ErrorSentinel + r.Err.Message
	}
	return r.Command
}

// Run invokes p and folds any failure into a Result. This is the provider
// boundary: no error crosses it, so the dispatcher and the surface stay
// error-handling-free for this failure class.
func Run(ctx context.Context, p Provider, request string) Result {
	command, err := p.Generate(ctx, request)
	if err != nil {
		var perr *Error
		if errors.As(err, &perr) {
			return Result{Err: perr}
		}
		return Result{Err: newError(Unexpected, p.Name(), "%v", err)}
	}
	return Result{Command: command}
}
