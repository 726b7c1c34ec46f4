package ui

import (
	"fmt"

	"github.com/macropower/termbrot/pkg/render"
	"github.com/macropower/termbrot/pkg/ui/theme"
)

// Config contains TUI-specific configuration.
type Config struct {
	// KeyBinds maps keys to viewport actions.
	KeyBinds *KeyBinds `json:"keyBinds,omitempty" jsonschema:"title=Key Binds"`
	// Title is drawn centered on the top row.
	Title string `json:"title,omitempty" jsonschema:"title=Title"`
	// Theme is empty for the classic colours, or the name of a chroma style.
	Theme string `json:"theme,omitempty" jsonschema:"title=Theme"`
	// Foreground overrides the colour of set cells.
	Foreground string `json:"foreground,omitempty" jsonschema:"title=Foreground"`
	// Background overrides the background of set cells.
	Background string `json:"background,omitempty" jsonschema:"title=Background"`
}

func NewConfig() *Config {
	c := &Config{}
	c.EnsureDefaults()

	return c
}

func (c *Config) EnsureDefaults() {
	if c.KeyBinds == nil {
		c.KeyBinds = NewKeyBinds()
	} else {
		c.KeyBinds.EnsureDefaults()
	}

	if c.Title == "" {
		c.Title = render.DefaultTitle
	}
}

func (c *Config) Validate() error {
	err := theme.Validate(c.Theme)
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	if c.KeyBinds != nil {
		err = c.KeyBinds.Validate()
		if err != nil {
			return fmt.Errorf("ui: %w", err)
		}
	}

	return nil
}

// GetTheme returns the configured theme with colour overrides applied.
func (c *Config) GetTheme() *theme.Theme {
	t := theme.Default
	if c.Theme != "" {
		t = theme.New(c.Theme)
	}

	return t.WithColors(c.Foreground, c.Background)
}
