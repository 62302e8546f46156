package ui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/kmdapp/kmd/internal/config"
)

// ThemesFileName is the optional per-user theme override file under the
// config directory.
const ThemesFileName = "themes.yaml"

// Theme is a named color palette for the spotlight surface. Colors are
// lipgloss color strings (ANSI number or hex).
type Theme struct {
	Name   string `yaml:"name"`
	Border string `yaml:"border"`
	Text   string `yaml:"text"`
	Accent string `yaml:"accent"`
	Muted  string `yaml:"muted"`
	Error  string `yaml:"error"`
}

// builtinThemes always resolve; user overrides are layered on top.
var builtinThemes = []Theme{
	{
		// green-on-dark, matching the launcher's original look
		Name:   "dark",
		Border: "62",
		Text:   "46",
		Accent: "205",
		Muted:  "241",
		Error:  "196",
	},
	{
		Name:   "light",
		Border: "25",
		Text:   "22",
		Accent: "162",
		Muted:  "245",
		Error:  "124",
	},
}

// Styles is the rendered style set the spotlight view draws with.
type Styles struct {
	Box    lipgloss.Style
	Result lipgloss.Style
	Error  lipgloss.Style
	Status lipgloss.Style
	Help   lipgloss.Style
	Accent lipgloss.Style
}

// Styles builds the lipgloss styles for the theme.
func (t Theme) Styles() Styles {
	return Styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),
		Result: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)).Bold(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error)),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)).MarginTop(1),
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Bold(true),
	}
}

// LoadTheme resolves name against the user's theme file and the built-ins,
// falling back to "dark" for unknown names.
func LoadTheme(name string) Theme {
	path := ""
	if dir, err := config.GetConfigDir(); err == nil {
		path = filepath.Join(dir, ThemesFileName)
	}
	return LoadThemeFrom(path, name)
}

// LoadThemeFrom is LoadTheme with an explicit override file path, for
// tests. An unreadable or unparseable file is ignored with a warning; the
// built-ins still apply.
func LoadThemeFrom(path, name string) Theme {
	themes := append([]Theme{}, builtinThemes...)

	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			var file struct {
				Themes []Theme `yaml:"themes"`
			}
			if err := yaml.Unmarshal(data, &file); err != nil {
				log.WithError(err).Warnf("ignoring unparseable theme file %s", path)
			} else {
				themes = append(themes, file.Themes...)
			}
		}
	}

	want := strings.ToLower(strings.TrimSpace(name))
	// later entries win so user overrides shadow built-ins of the same name
	for i := len(themes) - 1; i >= 0; i-- {
		if strings.ToLower(themes[i].Name) == want {
			return themes[i]
		}
	}
	return builtinThemes[0]
}

// ThemeNames lists built-in theme names, sorted, for the configure flow.
func ThemeNames() []string {
	names := make([]string, 0, len(builtinThemes))
	for _, t := range builtinThemes {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}
