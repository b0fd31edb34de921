// Package theme decodes the display palette used by the renderer.
package theme

import (
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

//go:embed palette.toml
var defaultPalette string

// StyleSpec describes one palette entry.
type StyleSpec struct {
	Fg        string `toml:"fg"`
	Bold      bool   `toml:"bold"`
	Faint     bool   `toml:"faint"`
	Underline bool   `toml:"underline"`
}

type fileTheme struct {
	Heading   StyleSpec `toml:"heading"`
	Emphasis  StyleSpec `toml:"emphasis"`
	Muted     StyleSpec `toml:"muted"`
	Correct   StyleSpec `toml:"correct"`
	Incorrect StyleSpec `toml:"incorrect"`
	Info      StyleSpec `toml:"info"`
	Warning   StyleSpec `toml:"warning"`
}

// Palette holds the styles consumed by the renderer and result screens.
type Palette struct {
	Heading   lipgloss.Style
	Emphasis  lipgloss.Style
	Muted     lipgloss.Style
	Correct   lipgloss.Style
	Incorrect lipgloss.Style
	Info      lipgloss.Style
	Warning   lipgloss.Style
}

// Default returns the built-in palette.
func Default() (Palette, error) {
	return Load(strings.NewReader(defaultPalette))
}

// Load decodes a TOML palette. Unknown keys are rejected.
func Load(r io.Reader) (Palette, error) {
	var f fileTheme
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return Palette{}, fmt.Errorf("failed to decode palette: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Palette{}, fmt.Errorf("unknown palette keys: %s", strings.Join(keys, ", "))
	}

	var p Palette
	entries := []struct {
		name string
		src  StyleSpec
		dst  *lipgloss.Style
	}{
		{"heading", f.Heading, &p.Heading},
		{"emphasis", f.Emphasis, &p.Emphasis},
		{"muted", f.Muted, &p.Muted},
		{"correct", f.Correct, &p.Correct},
		{"incorrect", f.Incorrect, &p.Incorrect},
		{"info", f.Info, &p.Info},
		{"warning", f.Warning, &p.Warning},
	}
	for _, e := range entries {
		style, err := e.src.Style()
		if err != nil {
			return Palette{}, fmt.Errorf("invalid %s style: %w", e.name, err)
		}
		*e.dst = style
	}
	return p, nil
}

// Style converts the entry into a lipgloss style.
func (s StyleSpec) Style() (lipgloss.Style, error) {
	style := lipgloss.NewStyle()
	if s.Fg != "" {
		if err := validateColor(s.Fg); err != nil {
			return lipgloss.Style{}, err
		}
		style = style.Foreground(lipgloss.Color(s.Fg))
	}
	if s.Bold {
		style = style.Bold(true)
	}
	if s.Faint {
		style = style.Faint(true)
	}
	if s.Underline {
		style = style.Underline(true)
	}
	return style, nil
}

func validateColor(value string) error {
	if strings.HasPrefix(value, "#") {
		hex := value[1:]
		if len(hex) != 6 {
			return fmt.Errorf("color %q must be #rrggbb", value)
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return fmt.Errorf("color %q is not valid hex", value)
		}
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || n > 255 {
		return fmt.Errorf("color %q must be 0-255 or #rrggbb", value)
	}
	return nil
}
