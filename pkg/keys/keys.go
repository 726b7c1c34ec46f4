// Package keys defines configurable key bindings and renders them as help
// text.
package keys

import (
	"errors"
	"fmt"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

var ErrDuplicateKey = errors.New("duplicate key binding")

// Key is a single key code, as reported by Bubble Tea's KeyMsg.String.
type Key struct {
	// Code is the key code identifier.
	Code string `json:"code" jsonschema:"title=Code"`
	// Alias is an alternative display name for the key.
	Alias string `json:"alias,omitempty" jsonschema:"title=Alias"`
	// Hidden keeps the key out of help text.
	Hidden bool `json:"hidden,omitempty" jsonschema:"title=Hidden"`
}

type KeyOpt func(k *Key)

func New(code string, opts ...KeyOpt) Key {
	k := Key{Code: code}
	for _, opt := range opts {
		opt(&k)
	}

	return k
}

func Hidden() KeyOpt {
	return func(k *Key) {
		k.Hidden = true
	}
}

func (k Key) String() string {
	if k.Alias != "" {
		return k.Alias
	}

	return k.Code
}

// KeyBind is an action together with the keys that trigger it.
type KeyBind struct {
	// Description says what the binding does.
	Description string `json:"description,omitempty" jsonschema:"title=Description"`
	// Keys trigger the binding.
	Keys []Key `json:"keys,omitempty" jsonschema:"title=Keys"`
}

func NewBind(description string, keys ...Key) KeyBind {
	return KeyBind{
		Description: description,
		Keys:        keys,
	}
}

// String joins the visible keys with "/".
func (kb *KeyBind) String() string {
	keys := make([]string, 0, len(kb.Keys))
	for _, k := range kb.Keys {
		if !k.Hidden {
			keys = append(keys, k.String())
		}
	}

	return strings.Join(keys, "/")
}

// Match reports whether key triggers the binding.
func (kb *KeyBind) Match(key string) bool {
	if kb == nil {
		return false
	}

	for _, k := range kb.Keys {
		if k.Code == key {
			return true
		}
	}

	return false
}

// SetDefaultBind fills a nil or partially configured binding from defaultKb.
func SetDefaultBind(kb **KeyBind, defaultKb KeyBind) {
	if *kb == nil {
		*kb = &defaultKb

		return
	}

	if len((*kb).Keys) == 0 {
		(*kb).Keys = defaultKb.Keys
	}
	if (*kb).Description == "" {
		(*kb).Description = defaultKb.Description
	}
}

// ValidateBinds reports every key code that is bound more than once.
func ValidateBinds(kbs ...*KeyBind) error {
	var errs []error

	seen := map[string]string{}
	for _, kb := range kbs {
		if kb == nil {
			continue
		}

		for _, k := range kb.Keys {
			if prev, ok := seen[k.Code]; ok {
				errs = append(errs, fmt.Errorf("%w: %q is bound to both %q and %q",
					ErrDuplicateKey, k.Code, prev, kb.Description))

				continue
			}

			seen[k.Code] = kb.Description
		}
	}

	return errors.Join(errs...)
}

// Help renders bindings as aligned "keys  description" rows no wider than
// width. Bindings with no visible keys are skipped.
func Help(width int, kbs ...*KeyBind) string {
	keyWidth := 0
	for _, kb := range kbs {
		keyWidth = max(keyWidth, ansi.PrintableRuneWidth(kb.String()))
	}

	descWidth := max(0, width-keyWidth-2)

	rows := make([]string, 0, len(kbs))
	for _, kb := range kbs {
		keys := kb.String()
		if keys == "" {
			continue
		}

		desc := kb.Description
		if ansi.PrintableRuneWidth(desc) > descWidth {
			//nolint:gosec // G115: descWidth is never negative.
			desc = truncate.StringWithTail(desc, uint(descWidth), "…")
		}

		pad := strings.Repeat(" ", keyWidth-ansi.PrintableRuneWidth(keys))
		rows = append(rows, strings.TrimRight(keys+pad+"  "+desc, " "))
	}

	return strings.Join(rows, "\n")
}
