package styles

import (
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available built-in theme names.
const (
	ThemeDefault ThemeName = "default" // Purple/green dark theme
	ThemeMonokai ThemeName = "monokai" // Classic Monokai editor colors
	ThemeDracula ThemeName = "dracula" // Dracula theme colors
	ThemeNord    ThemeName = "nord"    // Nord theme, cool blue-gray
)

// ColorPalette defines the color scheme for a theme.
// All colors should meet WCAG AA contrast requirements (4.5:1 ratio).
type ColorPalette struct {
	// Primary accent color (used for emphasis, active elements)
	Primary lipgloss.Color
	// Secondary accent color (used for secondary emphasis, success states)
	Secondary lipgloss.Color
	// Warning color (used for warnings, attention-needed states)
	Warning lipgloss.Color
	// Error color (used for errors, failures)
	Error lipgloss.Color
	// Muted color (used for de-emphasized text, borders)
	Muted lipgloss.Color
	// Surface color (used for panel backgrounds)
	Surface lipgloss.Color
	// Text color (used for primary text)
	Text lipgloss.Color
	// Border color (used for panel borders)
	Border lipgloss.Color
}

var builtinPalettes = map[ThemeName]ColorPalette{
	ThemeDefault: {
		Primary:   lipgloss.Color("#A78BFA"),
		Secondary: lipgloss.Color("#10B981"),
		Warning:   lipgloss.Color("#F59E0B"),
		Error:     lipgloss.Color("#F87171"),
		Muted:     lipgloss.Color("#9CA3AF"),
		Surface:   lipgloss.Color("#1F2937"),
		Text:      lipgloss.Color("#F9FAFB"),
		Border:    lipgloss.Color("#6B7280"),
	},
	ThemeMonokai: {
		Primary:   lipgloss.Color("#AE81FF"),
		Secondary: lipgloss.Color("#A6E22E"),
		Warning:   lipgloss.Color("#E6DB74"),
		Error:     lipgloss.Color("#F92672"),
		Muted:     lipgloss.Color("#88846F"),
		Surface:   lipgloss.Color("#272822"),
		Text:      lipgloss.Color("#F8F8F2"),
		Border:    lipgloss.Color("#75715E"),
	},
	ThemeDracula: {
		Primary:   lipgloss.Color("#BD93F9"),
		Secondary: lipgloss.Color("#50FA7B"),
		Warning:   lipgloss.Color("#F1FA8C"),
		Error:     lipgloss.Color("#FF5555"),
		Muted:     lipgloss.Color("#6272A4"),
		Surface:   lipgloss.Color("#282A36"),
		Text:      lipgloss.Color("#F8F8F2"),
		Border:    lipgloss.Color("#6272A4"),
	},
	ThemeNord: {
		Primary:   lipgloss.Color("#88C0D0"),
		Secondary: lipgloss.Color("#A3BE8C"),
		Warning:   lipgloss.Color("#EBCB8B"),
		Error:     lipgloss.Color("#BF616A"),
		Muted:     lipgloss.Color("#7A869C"),
		Surface:   lipgloss.Color("#2E3440"),
		Text:      lipgloss.Color("#ECEFF4"),
		Border:    lipgloss.Color("#4C566A"),
	},
}

var (
	themeMu      sync.Mutex
	currentTheme = ThemeDefault
	customThemes = map[string]ColorPalette{}
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeMonokai),
		string(ThemeDracula),
		string(ThemeNord),
	}
}

// CustomThemeNames returns the names of registered custom themes, sorted.
func CustomThemeNames() []string {
	themeMu.Lock()
	defer themeMu.Unlock()

	names := make([]string, 0, len(customThemes))
	for name := range customThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterCustomTheme makes a palette selectable by name. A custom theme
// may not shadow a built-in name.
func RegisterCustomTheme(name string, palette ColorPalette) error {
	if slices.Contains(BuiltinThemes(), name) {
		return fmt.Errorf("theme %q shadows a built-in theme", name)
	}

	themeMu.Lock()
	defer themeMu.Unlock()
	customThemes[name] = palette
	return nil
}

// IsValidTheme checks if a theme name is valid (built-in or custom).
func IsValidTheme(name string) bool {
	if slices.Contains(BuiltinThemes(), name) {
		return true
	}
	themeMu.Lock()
	defer themeMu.Unlock()
	_, ok := customThemes[name]
	return ok
}

// CurrentTheme returns the active theme name.
func CurrentTheme() ThemeName {
	themeMu.Lock()
	defer themeMu.Unlock()
	return currentTheme
}

// SetTheme switches the active theme and rebuilds the exported styles.
func SetTheme(name string) error {
	themeMu.Lock()
	defer themeMu.Unlock()

	if p, ok := builtinPalettes[ThemeName(name)]; ok {
		currentTheme = ThemeName(name)
		applyPalette(p)
		return nil
	}
	if p, ok := customThemes[name]; ok {
		currentTheme = ThemeName(name)
		applyPalette(p)
		return nil
	}
	return fmt.Errorf("unknown theme %q", name)
}
