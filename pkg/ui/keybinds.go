package ui

import (
	"github.com/macropower/termbrot/pkg/keys"
	"github.com/macropower/termbrot/pkg/viewport"
)

// KeyBinds holds the viewport controls. Every key that is not bound still
// triggers a repaint.
type KeyBinds struct {
	PanLeft  *keys.KeyBind `json:"panLeft,omitempty"  jsonschema:"title=Pan Left"`
	PanRight *keys.KeyBind `json:"panRight,omitempty" jsonschema:"title=Pan Right"`
	PanUp    *keys.KeyBind `json:"panUp,omitempty"    jsonschema:"title=Pan Up"`
	PanDown  *keys.KeyBind `json:"panDown,omitempty"  jsonschema:"title=Pan Down"`
	ZoomIn   *keys.KeyBind `json:"zoomIn,omitempty"   jsonschema:"title=Zoom In"`
	ZoomOut  *keys.KeyBind `json:"zoomOut,omitempty"  jsonschema:"title=Zoom Out"`
	Quit     *keys.KeyBind `json:"quit,omitempty"     jsonschema:"title=Quit"`
}

func NewKeyBinds() *KeyBinds {
	kb := &KeyBinds{}
	kb.EnsureDefaults()

	return kb
}

func (kb *KeyBinds) EnsureDefaults() {
	keys.SetDefaultBind(&kb.PanLeft, keys.NewBind("pan left", keys.New("a")))
	keys.SetDefaultBind(&kb.PanRight, keys.NewBind("pan right", keys.New("d")))
	keys.SetDefaultBind(&kb.PanUp, keys.NewBind("pan up", keys.New("w")))
	keys.SetDefaultBind(&kb.PanDown, keys.NewBind("pan down", keys.New("s")))
	keys.SetDefaultBind(&kb.ZoomOut, keys.NewBind("zoom out", keys.New("-")))
	keys.SetDefaultBind(&kb.ZoomIn, keys.NewBind("zoom in", keys.New("=")))
	keys.SetDefaultBind(&kb.Quit, keys.NewBind("quit",
		keys.New("q"),
		keys.New("ctrl+c", keys.Hidden()),
	))
}

// GetKeyBinds returns all bindings in help order.
func (kb *KeyBinds) GetKeyBinds() []*keys.KeyBind {
	return []*keys.KeyBind{
		kb.PanLeft,
		kb.PanRight,
		kb.PanUp,
		kb.PanDown,
		kb.ZoomOut,
		kb.ZoomIn,
		kb.Quit,
	}
}

func (kb *KeyBinds) Validate() error {
	return keys.ValidateBinds(kb.GetKeyBinds()...) //nolint:wrapcheck // Already descriptive.
}

// Action returns the viewport action bound to key, or [viewport.ActionNone].
func (kb *KeyBinds) Action(key string) viewport.Action {
	switch {
	case kb.PanLeft.Match(key):
		return viewport.ActionPanLeft
	case kb.PanRight.Match(key):
		return viewport.ActionPanRight
	case kb.PanUp.Match(key):
		return viewport.ActionPanUp
	case kb.PanDown.Match(key):
		return viewport.ActionPanDown
	case kb.ZoomIn.Match(key):
		return viewport.ActionZoomIn
	case kb.ZoomOut.Match(key):
		return viewport.ActionZoomOut
	}

	return viewport.ActionNone
}

// IsQuit reports whether key ends the session.
func (kb *KeyBinds) IsQuit(key string) bool {
	return kb.Quit.Match(key)
}

// Help renders the controls for display outside the TUI.
func (kb *KeyBinds) Help(width int) string {
	return keys.Help(width, kb.GetKeyBinds()...)
}
