package uitest

// Size represents terminal dimensions.
type Size struct {
	Width  int
	Height int
}

// Terminal sizes used across tests.
var (
	// Tiny leaves a 40×20 grid under the title row.
	Tiny = Size{Width: 40, Height: 21}
	// Compact is the classic 80×24 terminal.
	Compact = Size{Width: 80, Height: 24}
	// Standard is a typical modern terminal.
	Standard = Size{Width: 120, Height: 40}
)
