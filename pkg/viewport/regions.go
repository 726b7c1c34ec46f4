package viewport

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrUnknownRegion = errors.New("unknown region")

// Regions are well-known landmarks of the Mandelbrot set.
var Regions = map[string]Viewport{
	// The whole set, as shown at startup.
	"full": Default,
	// Dense filaments and repeating curls.
	"seahorse-valley": {StartX: -0.8, EndX: -0.7, StartY: 0.05, EndY: 0.15},
	// Large bulb with trunk-like tendrils.
	"elephant-valley": {StartX: -1.85, EndX: -1.75, StartY: -0.10, EndY: -0.02},
	// Small copy of the set with tight spiral arms.
	"spiral-minibrot": {StartX: -0.7435, EndX: -0.7420, StartY: 0.1310, EndY: 0.1325},
	// Threefold symmetric spiral structure.
	"triple-spiral": {StartX: -0.7480, EndX: -0.7450, StartY: 0.0950, EndY: 0.0980},
	// Deep spiral filaments.
	"valley-of-the-dragon": {StartX: -0.7400, EndX: -0.7350, StartY: 0.1800, EndY: 0.1850},
	// Self-similar copy inside a spiral arm.
	"minibrot-in-mini-spiral": {StartX: -1.7390, EndX: -1.7375, StartY: -0.0235, EndY: -0.0220},
}

// RegionNames returns the names of all [Regions], sorted.
func RegionNames() []string {
	names := make([]string, 0, len(Regions))
	for name := range Regions {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Region looks up a landmark by name. Names are case-insensitive.
func Region(name string) (Viewport, error) {
	v, ok := Regions[strings.ToLower(name)]
	if !ok {
		return Viewport{}, fmt.Errorf("%w %q, must be one of: %s",
			ErrUnknownRegion, name, strings.Join(RegionNames(), ", "))
	}

	return v, nil
}

// Config selects the initial viewport. A region takes precedence over the
// individual bounds; bounds that are not set fall back to [Default].
type Config struct {
	// Region is the name of a landmark to start at.
	Region string `json:"region,omitempty" jsonschema:"title=Region"`
	// StartX is the real coordinate of the left edge.
	StartX *float64 `json:"startX,omitempty" jsonschema:"title=Start X"`
	// EndX is the real coordinate of the right edge.
	EndX *float64 `json:"endX,omitempty" jsonschema:"title=End X"`
	// StartY is the imaginary coordinate of the top edge.
	StartY *float64 `json:"startY,omitempty" jsonschema:"title=Start Y"`
	// EndY is the imaginary coordinate of the bottom edge.
	EndY *float64 `json:"endY,omitempty" jsonschema:"title=End Y"`
}

// Resolve returns the initial viewport described by c.
func (c *Config) Resolve() (Viewport, error) {
	if c == nil {
		return Default, nil
	}

	if c.Region != "" {
		return Region(c.Region)
	}

	v := Default
	for _, b := range []struct {
		src *float64
		dst *float64
	}{
		{c.StartX, &v.StartX},
		{c.EndX, &v.EndX},
		{c.StartY, &v.StartY},
		{c.EndY, &v.EndY},
	} {
		if b.src != nil {
			*b.dst = *b.src
		}
	}

	err := v.Validate()
	if err != nil {
		return Viewport{}, err
	}

	return v, nil
}

// NewConfig returns a Config holding the bounds of [Default].
func NewConfig() *Config {
	v := Default

	return &Config{
		StartX: &v.StartX,
		EndX:   &v.EndX,
		StartY: &v.StartY,
		EndY:   &v.EndY,
	}
}

func (c *Config) Validate() error {
	_, err := c.Resolve()
	if err != nil {
		return fmt.Errorf("viewport: %w", err)
	}

	return nil
}
