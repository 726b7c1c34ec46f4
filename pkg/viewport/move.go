package viewport

// Action is a single viewport mutation bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionPanLeft
	ActionPanRight
	ActionPanUp
	ActionPanDown
	ActionZoomIn
	ActionZoomOut
)

func (a Action) String() string {
	return map[Action]string{
		ActionNone:     "none",
		ActionPanLeft:  "pan left",
		ActionPanRight: "pan right",
		ActionPanUp:    "pan up",
		ActionPanDown:  "pan down",
		ActionZoomIn:   "zoom in",
		ActionZoomOut:  "zoom out",
	}[a]
}

// Apply returns the viewport after performing a. [ActionNone] returns v
// unchanged.
func (v Viewport) Apply(a Action) Viewport {
	switch a {
	case ActionPanLeft:
		return v.PanLeft()
	case ActionPanRight:
		return v.PanRight()
	case ActionPanUp:
		return v.PanUp()
	case ActionPanDown:
		return v.PanDown()
	case ActionZoomIn:
		return v.ZoomIn()
	case ActionZoomOut:
		return v.ZoomOut()
	}

	return v
}

// In all of the steps below the end bound is computed from the start bound
// that was assigned on the line before it. A pan therefore also shrinks the
// span by 0.04%, and a zoom in followed by a zoom out does not restore the
// original viewport.

// PanLeft moves the viewport toward the negative real axis.
func (v Viewport) PanLeft() Viewport {
	v.StartX += Step * (v.StartX - v.EndX)
	v.EndX += Step * (v.StartX - v.EndX)

	return v
}

// PanRight moves the viewport toward the positive real axis.
func (v Viewport) PanRight() Viewport {
	v.StartX += Step * (v.EndX - v.StartX)
	v.EndX += Step * (v.EndX - v.StartX)

	return v
}

// PanUp moves the viewport toward the negative imaginary axis, which is the
// top of the screen.
func (v Viewport) PanUp() Viewport {
	v.StartY += Step * (v.StartY - v.EndY)
	v.EndY += Step * (v.StartY - v.EndY)

	return v
}

// PanDown moves the viewport toward the positive imaginary axis.
func (v Viewport) PanDown() Viewport {
	v.StartY += Step * (v.EndY - v.StartY)
	v.EndY += Step * (v.EndY - v.StartY)

	return v
}

// ZoomIn moves every bound inward, magnifying the image.
func (v Viewport) ZoomIn() Viewport {
	v.StartX += (v.EndX - v.StartX) * Step
	v.EndX -= (v.EndX - v.StartX) * Step
	v.StartY += (v.EndY - v.StartY) * Step
	v.EndY -= (v.EndY - v.StartY) * Step

	return v
}

// ZoomOut moves every bound outward.
func (v Viewport) ZoomOut() Viewport {
	v.StartX -= (v.EndX - v.StartX) * Step
	v.EndX += (v.EndX - v.StartX) * Step
	v.StartY -= (v.EndY - v.StartY) * Step
	v.EndY += (v.EndY - v.StartY) * Step

	return v
}
