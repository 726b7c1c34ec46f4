package viewport_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/termbrot/pkg/fractal"
	"github.com/macropower/termbrot/pkg/viewport"
)

const tolerance = 1e-12

func assertViewport(t *testing.T, want, got viewport.Viewport) {
	t.Helper()

	assert.InDelta(t, want.StartX, got.StartX, tolerance, "startX")
	assert.InDelta(t, want.EndX, got.EndX, tolerance, "endX")
	assert.InDelta(t, want.StartY, got.StartY, tolerance, "startY")
	assert.InDelta(t, want.EndY, got.EndY, tolerance, "endY")
}

func TestPixelToComplex(t *testing.T) {
	t.Parallel()

	const (
		w = 40
		h = 20
	)

	vp := viewport.Default

	got := viewport.PixelToComplex(0, 0, w, h, vp.StartX, vp.EndX, vp.StartY, vp.EndY)
	assert.Equal(t, fractal.Complex{Re: vp.StartX, Im: vp.StartY}, got)

	got = viewport.PixelToComplex(w, h, w, h, vp.StartX, vp.EndX, vp.StartY, vp.EndY)
	assert.Equal(t, fractal.Complex{Re: vp.EndX, Im: vp.EndY}, got)

	got = viewport.PixelToComplex(w/2, h/2, w, h, 0, 1, 0, 1)
	assert.Equal(t, fractal.Complex{Re: 0.5, Im: 0.5}, got)

	// The last cell stops one step short of the maximum.
	got = viewport.PixelToComplex(w-1, h-1, w, h, 0, 1, 0, 1)
	assert.InDelta(t, 1-1.0/w, got.Re, tolerance)
	assert.InDelta(t, 1-1.0/h, got.Im, tolerance)

	// Out-of-range pixels extrapolate.
	got = viewport.PixelToComplex(-w, 2*h, w, h, 0, 1, 0, 1)
	assert.Equal(t, fractal.Complex{Re: -1, Im: 2}, got)

	assert.Equal(t,
		viewport.PixelToComplex(3, 7, w, h, vp.StartX, vp.EndX, vp.StartY, vp.EndY),
		vp.PointAt(3, 7, w, h),
	)
}

func TestViewport_Pan(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		action viewport.Action
		want   viewport.Viewport
	}{
		"left": {
			action: viewport.ActionPanLeft,
			want:   viewport.Viewport{StartX: -2.05, EndX: 0.449, StartY: -0.95, EndY: 0.95},
		},
		"right": {
			action: viewport.ActionPanRight,
			want:   viewport.Viewport{StartX: -1.95, EndX: 0.549, StartY: -0.95, EndY: 0.95},
		},
		"up": {
			action: viewport.ActionPanUp,
			want:   viewport.Viewport{StartX: -2, EndX: 0.5, StartY: -0.988, EndY: 0.91124},
		},
		"down": {
			action: viewport.ActionPanDown,
			want:   viewport.Viewport{StartX: -2, EndX: 0.5, StartY: -0.912, EndY: 0.98724},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := viewport.Default.Apply(tc.action)
			assertViewport(t, tc.want, got)

			// The end bound reads the updated start bound, so the span shrinks.
			w0, h0 := viewport.Default.Span()
			w1, h1 := got.Span()
			if tc.action == viewport.ActionPanLeft || tc.action == viewport.ActionPanRight {
				assert.InDelta(t, w0*0.9996, w1, tolerance)
				assert.InDelta(t, h0, h1, tolerance)
			} else {
				assert.InDelta(t, w0, w1, tolerance)
				assert.InDelta(t, h0*0.9996, h1, tolerance)
			}
		})
	}
}

func TestViewport_Zoom(t *testing.T) {
	t.Parallel()

	in := viewport.Default.ZoomIn()
	assertViewport(t, viewport.Viewport{
		StartX: -1.95, EndX: 0.451,
		StartY: -0.912, EndY: 0.91276,
	}, in)

	out := viewport.Default.ZoomOut()
	assertViewport(t, viewport.Viewport{
		StartX: -2.05, EndX: 0.551,
		StartY: -0.988, EndY: 0.98876,
	}, out)

	// Zooming in then out does not restore the original viewport.
	roundTrip := viewport.Default.Apply(viewport.ActionZoomIn).Apply(viewport.ActionZoomOut)
	assertViewport(t, viewport.Viewport{
		StartX: -1.99802, EndX: 0.4999804,
		StartY: -0.9484952, EndY: 0.949985104,
	}, roundTrip)
	assert.Greater(t, math.Abs(roundTrip.StartX-viewport.Default.StartX), 1e-3)
}

func TestViewport_ZoomRepeated(t *testing.T) {
	t.Parallel()

	const n = 10

	vp := viewport.Default
	for range n {
		vp = vp.Apply(viewport.ActionZoomIn)
	}
	for range n {
		vp = vp.Apply(viewport.ActionZoomOut)
	}

	w0, h0 := viewport.Default.Span()
	w1, h1 := vp.Span()

	factor := math.Pow(0.9604*1.0404, n)
	assert.InDelta(t, w0*factor, w1, 1e-9)
	assert.InDelta(t, h0*factor, h1, 1e-9)
	assert.Less(t, w1, w0)
	assert.Less(t, h1, h0)
}

func TestViewport_ApplyNone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, viewport.Default, viewport.Default.Apply(viewport.ActionNone))
	assert.Equal(t, "zoom in", viewport.ActionZoomIn.String())
}

func TestViewport_Validate(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		vp      viewport.Viewport
		wantErr bool
	}{
		"default": {vp: viewport.Default},
		"crossed x": {
			vp:      viewport.Viewport{StartX: 1, EndX: -1, StartY: -1, EndY: 1},
			wantErr: true,
		},
		"zero height": {
			vp:      viewport.Viewport{StartX: -1, EndX: 1, StartY: 0, EndY: 0},
			wantErr: true,
		},
		"nan": {
			vp:      viewport.Viewport{StartX: math.NaN(), EndX: 1, StartY: -1, EndY: 1},
			wantErr: true,
		},
		"inf": {
			vp:      viewport.Viewport{StartX: -1, EndX: 1, StartY: -1, EndY: math.Inf(1)},
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := tc.vp.Validate()
			if tc.wantErr {
				require.ErrorIs(t, err, viewport.ErrInvalidViewport)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestViewport_Center(t *testing.T) {
	t.Parallel()

	c := viewport.Default.Center()
	assert.InDelta(t, -0.75, c.Re, tolerance)
	assert.InDelta(t, 0, c.Im, tolerance)
	assert.Equal(t, "[-2, 0.5] x [-0.95, 0.95]", viewport.Default.String())
}

func TestConfig_Resolve(t *testing.T) {
	t.Parallel()

	ptr := func(f float64) *float64 { return &f }

	tcs := map[string]struct {
		cfg  *viewport.Config
		want viewport.Viewport
		err  error
	}{
		"nil": {
			cfg:  nil,
			want: viewport.Default,
		},
		"empty": {
			cfg:  &viewport.Config{},
			want: viewport.Default,
		},
		"region": {
			cfg:  &viewport.Config{Region: "Seahorse-Valley", StartX: ptr(100)},
			want: viewport.Regions["seahorse-valley"],
		},
		"partial bounds": {
			cfg:  &viewport.Config{StartX: ptr(-1), EndY: ptr(2)},
			want: viewport.Viewport{StartX: -1, EndX: 0.5, StartY: -0.95, EndY: 2},
		},
		"unknown region": {
			cfg: &viewport.Config{Region: "atlantis"},
			err: viewport.ErrUnknownRegion,
		},
		"crossed bounds": {
			cfg: &viewport.Config{StartX: ptr(1)},
			err: viewport.ErrInvalidViewport,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := tc.cfg.Resolve()
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRegions(t *testing.T) {
	t.Parallel()

	names := viewport.RegionNames()
	require.Len(t, names, len(viewport.Regions))
	assert.IsNonDecreasing(t, names)

	for _, name := range names {
		vp, err := viewport.Region(name)
		require.NoError(t, err)
		require.NoError(t, vp.Validate(), name)
	}
}
