package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/akyairhashvil/countdown/internal/models"
)

// File is the optional on-disk configuration.
type File struct {
	DefaultTheme string      `yaml:"default_theme"`
	Duration     int         `yaml:"duration"`
	LogLevel     string      `yaml:"log_level"`
	Themes       []ThemeSpec `yaml:"themes"`
}

// ThemeSpec is one theme entry in the config file.
type ThemeSpec struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	From  string `yaml:"from"`
	To    string `yaml:"to"`
}

// DefaultThemes mirrors the three gradient buttons of the widget.
func DefaultThemes() []models.Theme {
	return []models.Theme{
		{ID: ThemeRedYellow, Label: "Ember", From: "#991B1B", To: "#EAB308"},
		{ID: ThemeBlueGreen, Label: "Lagoon", From: "#1D4ED8", To: "#4ADE80"},
		{ID: ThemePurplePink, Label: "Dusk", From: "#D8B4FE", To: "#831843"},
	}
}

// Default returns the configuration used when no file exists.
func Default() File {
	return File{
		DefaultTheme: DefaultThemeID,
		LogLevel:     DefaultLogLevel,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/<app>/config.yaml, falling back to ~/.config.
func DefaultPath() string {
	base := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME"))
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			return filepath.Join(".", AppName, ConfigFileName)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppName, ConfigFileName)
}

// Load reads the config file at path. A missing file yields Default().
func Load(path string) (File, error) {
	cfg := Default()
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "failed to read config, %q", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.Wrapf(err, "failed to parse config, %q", path)
	}
	if cfg.DefaultTheme == "" {
		cfg.DefaultTheme = DefaultThemeID
		if len(cfg.Themes) > 0 {
			cfg.DefaultTheme = cfg.Themes[0].ID
		}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return Default(), errors.Wrapf(err, "invalid config, %q", path)
	}
	return cfg, nil
}

// Validate checks the theme list and duration.
func (f File) Validate() error {
	if f.Duration < 0 {
		return errors.Errorf("duration must not be negative, got %d", f.Duration)
	}
	seen := make(map[string]bool, len(f.Themes))
	for i, t := range f.Themes {
		switch {
		case strings.TrimSpace(t.ID) == "":
			return errors.Errorf("themes[%d]: empty id", i)
		case t.From == "" || t.To == "":
			return errors.Errorf("themes[%d] %q: from and to colors are required", i, t.ID)
		case seen[t.ID]:
			return errors.Errorf("themes[%d]: duplicate id %q", i, t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}

// ThemeList returns the configured themes, or DefaultThemes when none are set.
func (f File) ThemeList() []models.Theme {
	if len(f.Themes) == 0 {
		return DefaultThemes()
	}
	out := make([]models.Theme, 0, len(f.Themes))
	for _, t := range f.Themes {
		label := t.Label
		if label == "" {
			label = t.ID
		}
		out = append(out, models.Theme{ID: t.ID, Label: label, From: t.From, To: t.To})
	}
	return out
}
