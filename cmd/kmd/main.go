package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kmdapp/kmd/internal/clipboard"
	"github.com/kmdapp/kmd/internal/config"
	"github.com/kmdapp/kmd/internal/executor"
	"github.com/kmdapp/kmd/internal/provider"
	"github.com/kmdapp/kmd/internal/ui"
)

var (
	// version is set by goreleaser at build time
	version = "dev"
	commit  = "none"
	date    = "unknown"

	// CLI flags
	debug bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "kmd",
		Short:   "AI command assistant",
		Long:    "kmd is a floating launcher that turns natural language into terminal commands\nusing a local Ollama server or a cloud model",
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		RunE:    runSpotlight,
	}

	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")
	cobra.OnInitialize(func() {
		// keep the TUI clean unless asked for more
		log.SetOutput(os.Stderr)
		log.SetLevel(log.WarnLevel)
		if debug {
			log.SetLevel(log.DebugLevel)
		}
	})

	askCmd := &cobra.Command{
		Use:   "ask [command description]",
		Short: "Translate one request and exit",
		Long:  "ask translates a natural language request into a shell command, copies it\nto the clipboard and offers to run it",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runAsk,
	}

	configureCmd := &cobra.Command{
		Use:   "configure",
		Short: "Configure provider, credentials and appearance",
		RunE:  runConfigure,
	}

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(configureCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads settings, writing the defaults file on first run so the
// user has something to hand-edit.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if exists, _ := config.Exists(); !exists {
		if err := cfg.Save(); err != nil {
			log.WithError(err).Warn("could not write default config")
		} else if path, perr := config.GetConfigPath(); perr == nil {
			log.Debugf("created default config at %s", path)
		}
	}
	return cfg, nil
}

func runSpotlight(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("kmd needs an interactive terminal; use 'kmd ask' in scripts")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log.Debugf("provider=%s model=%s hotkey=%s", cfg.Provider, cfg.Model, cfg.Hotkey)

	program := tea.NewProgram(ui.NewSpotlight(cfg))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run spotlight: %w", err)
	}
	return nil
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	request := strings.Join(args, " ")
	p := provider.New(cfg)
	log.Debugf("asking %s: %q", p.Name(), request)

	result := provider.Run(context.Background(), p, request)
	if !result.Ok() {
		// same textual convention as the spotlight surface
		fmt.Fprintln(os.Stderr, result.Display())
		os.Exit(1)
	}

	copied := clipboard.Copy(result.Command)

	action, err := ui.ConfirmCommand(result.Command)
	if err != nil {
		return err
	}

	switch action {
	case ui.ActionRun:
		return executor.Run(result.Command)
	case ui.ActionCopy:
		if copied {
			ui.ShowSuccess("Copied to clipboard")
		} else {
			ui.ShowError("Clipboard unavailable; copy the command above manually")
		}
	case ui.ActionCancel:
		ui.ShowInfo("Cancelled")
	}
	return nil
}

func runConfigure(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := ui.ConfigureSettings(cfg); err != nil {
		return err
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	path, _ := config.GetConfigPath()
	ui.ShowSuccess(fmt.Sprintf("Configuration saved to %s", path))
	return nil
}
