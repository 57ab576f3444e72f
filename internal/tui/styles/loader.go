package styles

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ThemeFile represents a custom theme definition loaded from YAML.
type ThemeFile struct {
	// Name is the theme's display name (e.g., "Solarized Dark")
	Name string `yaml:"name"`
	// Author is the theme creator's name (optional)
	Author string `yaml:"author,omitempty"`
	// Description provides details about the theme (optional)
	Description string `yaml:"description,omitempty"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the color palette
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors contains all color definitions for a theme.
// All colors must be hex format (#RRGGBB or #RGB).
type ThemeColors struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Warning   string `yaml:"warning"`
	Error     string `yaml:"error"`
	Muted     string `yaml:"muted"`
	Surface   string `yaml:"surface"`
	Text      string `yaml:"text"`
	Border    string `yaml:"border"`
}

var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ParseThemeFile parses and validates a YAML theme definition.
func ParseThemeFile(data []byte) (*ThemeFile, error) {
	var tf ThemeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("invalid theme file: %w", err)
	}

	if tf.Name == "" {
		return nil, fmt.Errorf("theme file is missing a name")
	}
	if tf.Version != "1" {
		return nil, fmt.Errorf("unsupported theme file version %q", tf.Version)
	}

	required := map[string]string{
		"primary":   tf.Colors.Primary,
		"secondary": tf.Colors.Secondary,
		"warning":   tf.Colors.Warning,
		"error":     tf.Colors.Error,
		"muted":     tf.Colors.Muted,
		"surface":   tf.Colors.Surface,
		"text":      tf.Colors.Text,
		"border":    tf.Colors.Border,
	}
	for field, value := range required {
		if value == "" {
			return nil, fmt.Errorf("theme %q is missing color %q", tf.Name, field)
		}
		if !hexColorRegex.MatchString(value) {
			return nil, fmt.Errorf("theme %q color %q is not a hex color: %q", tf.Name, field, value)
		}
	}
	return &tf, nil
}

// Palette converts the file's colors to a ColorPalette.
func (tf *ThemeFile) Palette() ColorPalette {
	return ColorPalette{
		Primary:   lipgloss.Color(tf.Colors.Primary),
		Secondary: lipgloss.Color(tf.Colors.Secondary),
		Warning:   lipgloss.Color(tf.Colors.Warning),
		Error:     lipgloss.Color(tf.Colors.Error),
		Muted:     lipgloss.Color(tf.Colors.Muted),
		Surface:   lipgloss.Color(tf.Colors.Surface),
		Text:      lipgloss.Color(tf.Colors.Text),
		Border:    lipgloss.Color(tf.Colors.Border),
	}
}

// LoadCustomThemes reads every *.yaml file in dir and registers each as a
// custom theme keyed by its file name (without extension). A missing dir
// is fine; individual bad files are reported but do not stop the rest.
func LoadCustomThemes(dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read themes directory: %w", err)
	}

	var errs []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", entry.Name(), err))
			continue
		}

		tf, err := ParseThemeFile(data)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", entry.Name(), err))
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".yaml")
		if err := RegisterCustomTheme(name, tf.Palette()); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", entry.Name(), err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("some themes failed to load: %s", strings.Join(errs, "; "))
	}
	return nil
}
