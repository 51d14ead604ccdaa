package envgraph

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to the renderer.
type Color struct {
	R, G, B, A float64
}

// Default colors for the graph's visual elements.
var (
	ColorLine    = Color{0.85, 0.85, 0.85, 1}
	ColorNode    = Color{0.3, 0.7, 0.9, 1}
	ColorSustain = Color{0.95, 0.75, 0.2, 1}
	ColorRelease = Color{0.55, 0.55, 0.6, 1}
)

// toRGBA converts to a premultiplied-alpha color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R * c.A * 255),
		G: uint8(c.G * c.A * 255),
		B: uint8(c.B * c.A * 255),
		A: uint8(c.A * 255),
	}
}

// Point is an integer 2D point. It is used both for node values in logical
// data space and for positions in device pixel space; the Mapper converts
// between the two.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p + q componentwise.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q componentwise.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Rect is an axis-aligned rectangle in device pixels. The coordinate system
// has its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// State identifies the interaction controller's current mode.
type State uint8

const (
	StateIdle            State = iota // no drag session active
	StateDragging                     // a node is being dragged inside the viewport
	StateDraggingOutside              // button held, pointer outside the viewport
)

// String returns a short name for the state, used by the debug overlay.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "drag"
	case StateDraggingOutside:
		return "drag-out"
	default:
		return "?"
	}
}

// MenuAction is the choice a host resolves a node context menu with.
// The controller raises the menu on a secondary click over a node and applies
// the returned action to the graph.
type MenuAction uint8

const (
	MenuNone         MenuAction = iota // dismiss without changes
	MenuSetSustain                     // mark the clicked node as the sustain point
	MenuClearSustain                   // clear the sustain marker
	MenuRemoveNode                     // remove the clicked node
)

// NoNode is the sentinel index meaning "no node" (failed hit test, no drag
// session, no sustain marker).
const NoNode = -1

// clamp restricts v into [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// abs returns the absolute value of v.
func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
