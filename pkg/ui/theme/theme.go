// Package theme builds the painter styles from either the classic colour
// pair (green on a dark violet) or a named chroma style.
package theme

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/macropower/termbrot/pkg/render"
)

// Colours of the classic pair. The background is the terminal's black
// redefined to RGB (102, 78, 137) on a 0-1000 scale.
const (
	ClassicForeground = "2"
	ClassicBackground = "#1A1423"
)

var ErrUnknownTheme = errors.New("unknown theme")

// Default is the classic theme.
var Default = New("")

// Theme holds the styles a frame is painted with.
type Theme struct {
	SetStyle   lipgloss.Style
	BlankStyle lipgloss.Style
	TitleStyle lipgloss.Style
	Name       string
}

// New returns the theme called name. An empty name selects the classic
// colour pair; "dark", "light" and "auto" are aliases for GitHub styles, and
// any other name is looked up in the chroma style registry. Unknown names
// fall back to chroma's fallback style; use [Validate] to reject them first.
func New(name string) *Theme {
	if name == "" {
		return &Theme{
			SetStyle: lipgloss.NewStyle().
				Foreground(lipgloss.Color(ClassicForeground)).
				Background(lipgloss.Color(ClassicBackground)),
			BlankStyle: lipgloss.NewStyle(),
			TitleStyle: lipgloss.NewStyle(),
		}
	}

	cs := newChromaStyle(name)

	return &Theme{
		Name: name,
		SetStyle: lipgloss.NewStyle().
			Foreground(cs.lipglossFromToken(chroma.NameTag)).
			Background(cs.lipglossFromTokenBg(chroma.Background)),
		BlankStyle: lipgloss.NewStyle().
			Background(cs.lipglossFromTokenBg(chroma.Background)),
		TitleStyle: lipgloss.NewStyle().
			Foreground(cs.lipglossFromTokenWithFactor(chroma.NameTag, 0.2)).
			Bold(true),
	}
}

// WithColors returns a copy of t whose set glyphs use the given foreground
// and background. Empty values keep the theme's colours.
func (t *Theme) WithColors(fg, bg string) *Theme {
	c := *t
	if fg != "" {
		c.SetStyle = c.SetStyle.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		c.SetStyle = c.SetStyle.Background(lipgloss.Color(bg))
	}

	return &c
}

// Styles returns the painter styles of t.
func (t *Theme) Styles() render.Styles {
	return render.Styles{
		Set:   t.SetStyle,
		Blank: t.BlankStyle,
		Title: t.TitleStyle,
	}
}

// Names returns every accepted theme name except the empty classic name.
func Names() []string {
	names := append([]string{"auto", "dark", "light"}, styles.Names()...)
	slices.Sort(names)

	return slices.Compact(names)
}

// Validate returns [ErrUnknownTheme] if name is neither empty, an alias, nor
// a registered chroma style.
func Validate(name string) error {
	if name == "" {
		return nil
	}

	if _, ok := styles.Registry[getStyle(name)]; ok {
		return nil
	}

	// Auto resolves to "" when stdout is not a terminal.
	if name == "auto" {
		return nil
	}

	return fmt.Errorf("%w %q, must be one of: %s", ErrUnknownTheme, name, strings.Join(Names(), ", "))
}

type chromaStyle struct {
	style *chroma.Style
}

func newChromaStyle(theme string) chromaStyle {
	s := styles.Get(getStyle(theme))
	if s == nil {
		s = styles.Fallback
	}

	return chromaStyle{style: s}
}

func (cs chromaStyle) lipglossFromToken(c chroma.TokenType) lipgloss.Color {
	s := cs.style.Get(c)

	return lipgloss.Color(s.Colour.String()) //nolint:misspell // Chroma naming.
}

func (cs chromaStyle) lipglossFromTokenBg(c chroma.TokenType) lipgloss.Color {
	s := cs.style.Get(c)

	return lipgloss.Color(s.Background.String())
}

func (cs chromaStyle) lipglossFromTokenWithFactor(c chroma.TokenType, factor float64) lipgloss.Color {
	s := cs.style.Get(c)

	return lipgloss.Color(s.Colour.BrightenOrDarken(factor).String()) //nolint:misspell // Chroma naming.
}

func getStyle(style string) string {
	switch style {
	case "dark":
		return "github-dark"
	case "light":
		return "github"
	case "auto":
		return getDefaultStyle()
	default:
		return style
	}
}

func getDefaultStyle() string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ""
	}
	if termenv.HasDarkBackground() {
		return "github-dark"
	}

	return "github"
}
