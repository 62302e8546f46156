// Package executor runs a generated command in the user's shell.
package executor

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	log "github.com/sirupsen/logrus"
)

// Run executes command through the user's shell, inheriting stdin, stdout
// and stderr so interactive commands behave normally.
func Run(command string) error {
	var shell string
	var shellArgs []string

	if runtime.GOOS == "windows" {
		shell = "cmd"
		shellArgs = []string{"/C", command}
	} else {
		shell = os.Getenv("SHELL")
		if shell == "" {
			shell = "/bin/sh"
		}
		shellArgs = []string{"-c", command}
	}

	log.Debugf("executing %q via %s", command, shell)

	cmd := exec.Command(shell, shellArgs...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			log.Debugf("command exited with code %d", exitError.ExitCode())
		}
		return fmt.Errorf("command failed: %w", err)
	}
	return nil
}
