package envgraph

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// defaultDoubleClickTicks is the maximum number of update ticks between two
// presses for the second to count as a double click (~333ms at 60 TPS).
const defaultDoubleClickTicks = 20

// Config configures a new Widget. Zero values are replaced by defaults.
type Config struct {
	// Bounds is the widget's rectangle on the screen. Default 640x480 at
	// the origin.
	Bounds Rect
	// MaxNodes is the node capacity (minimum 2). Default 16.
	MaxNodes int
	// NodeRadius is the node radius in pixels. Default 5.
	NodeRadius int
	// ScaleX and ScaleY are device pixels per logical unit. Default 1.
	ScaleX, ScaleY int
	// MinY and MaxY clamp every node's vertical value. Default [0, 100].
	MinY, MaxY int
	// Origin is the logical position of the first node.
	Origin Point
	// Extent is the X value of the default last node. Default Origin.X + 100.
	Extent int
	// Colors for the graph's visual elements. A fully transparent color
	// selects the package default. Background is not painted when left
	// transparent.
	LineColor, NodeColor, SustainColor, ReleaseColor Color
	BackgroundColor                                  Color
	// DoubleClickTicks is the double-click detection window in update
	// ticks. Default 20.
	DoubleClickTicks int
}

// Widget is the envelope graph as an Ebitengine component: it polls pointer
// input in Update, routes events through the interaction controller, and
// paints the polyline and nodes in Draw. Host games call Update once per
// tick and Draw once per frame, exactly like any other Ebitengine element.
type Widget struct {
	graph  *Graph
	mapper Mapper
	view   *Viewport
	ctrl   *Controller

	bounds     Rect
	background Color
	lineColor  Color
	nodeColor  Color
	sustColor  Color
	relColor   Color

	onChanged func()

	// Pointer edge detection and double-click timing.
	tick          int
	dcTicks       int
	prevLeft      bool
	prevRight     bool
	prevPos       Point
	lastPressTick int
	lastPressPos  Point

	injectQueue []syntheticPointerEvent
	runner      *ScriptRunner
	debug       bool
}

// New creates a widget with its store, mapper, viewport, and controller
// wired together.
func New(cfg Config) *Widget {
	if cfg.Bounds.Width <= 0 {
		cfg.Bounds.Width = 640
	}
	if cfg.Bounds.Height <= 0 {
		cfg.Bounds.Height = 480
	}
	if cfg.LineColor.A == 0 {
		cfg.LineColor = ColorLine
	}
	if cfg.NodeColor.A == 0 {
		cfg.NodeColor = ColorNode
	}
	if cfg.SustainColor.A == 0 {
		cfg.SustainColor = ColorSustain
	}
	if cfg.ReleaseColor.A == 0 {
		cfg.ReleaseColor = ColorRelease
	}
	if cfg.DoubleClickTicks <= 0 {
		cfg.DoubleClickTicks = defaultDoubleClickTicks
	}

	g := NewGraph(GraphConfig{
		MaxNodes: cfg.MaxNodes,
		MinY:     cfg.MinY,
		MaxY:     cfg.MaxY,
		Origin:   cfg.Origin,
		Extent:   cfg.Extent,
	})
	m := NewMapper(cfg.ScaleX, cfg.ScaleY, cfg.NodeRadius)
	m.OriginX = m.Radius
	m.OriginY = m.Radius + g.MaxHeight()*m.ScaleY
	v := NewViewport(Rect{Width: cfg.Bounds.Width, Height: cfg.Bounds.Height})

	w := &Widget{
		graph:         g,
		mapper:        m,
		view:          v,
		ctrl:          NewController(g, m, v),
		bounds:        cfg.Bounds,
		background:    cfg.BackgroundColor,
		lineColor:     cfg.LineColor,
		nodeColor:     cfg.NodeColor,
		sustColor:     cfg.SustainColor,
		relColor:      cfg.ReleaseColor,
		dcTicks:       cfg.DoubleClickTicks,
		lastPressTick: -1 << 30,
	}
	g.OnChange(w.graphChanged)
	w.layoutContent()
	return w
}

// Graph returns the node store.
func (w *Widget) Graph() *Graph {
	return w.graph
}

// Controller returns the interaction controller.
func (w *Widget) Controller() *Controller {
	return w.ctrl
}

// Viewport returns the scrollable viewport.
func (w *Widget) Viewport() *Viewport {
	return w.view
}

// Mapper returns the coordinate mapper.
func (w *Widget) Mapper() Mapper {
	return w.mapper
}

// Bounds returns the widget's screen rectangle.
func (w *Widget) Bounds() Rect {
	return w.bounds
}

// OnChanged registers the host's change listener. It fires once per
// committed mutation unless updates are inhibited on the graph.
func (w *Widget) OnChanged(fn func()) {
	w.onChanged = fn
}

// OnNodeMenu registers the host's context-menu resolver for secondary
// clicks over a node.
func (w *Widget) OnNodeMenu(fn func(index int) MenuAction) {
	w.ctrl.OnNodeMenu(fn)
}

// SetDebug toggles the stats overlay drawn in the widget's top-left corner.
func (w *Widget) SetDebug(enabled bool) {
	w.debug = enabled
}

// graphChanged keeps the scrollable content sized to the graph and forwards
// the notification to the host.
func (w *Widget) graphChanged() {
	w.layoutContent()
	if w.onChanged != nil {
		w.onChanged()
	}
}

// layoutContent recomputes the virtual content size from the last node's X
// and the vertical bounds.
func (w *Widget) layoutContent() {
	last, _ := w.graph.Node(w.graph.NodeCount() - 1)
	cw, ch := w.mapper.ContentSize(last.X, w.graph.MinHeight(), w.graph.MaxHeight())
	w.view.SetContentSize(cw, ch)
}

// Resize changes the widget's visible size. Scroll parameters are
// recomputed; no node's logical value changes.
func (w *Widget) Resize(width, height int) {
	w.bounds.Width = width
	w.bounds.Height = height
	w.view.SetViewSize(width, height)
}

// SetBounds moves and resizes the widget on screen.
func (w *Widget) SetBounds(r Rect) {
	w.bounds = r
	w.view.SetViewSize(r.Width, r.Height)
}

// SetMaxHeight changes the vertical upper bound and rebuilds the mapper so
// the tallest value still maps inside the content.
func (w *Widget) SetMaxHeight(h int) {
	w.graph.SetMaxHeight(h)
	w.mapper.OriginY = w.mapper.Radius + w.graph.MaxHeight()*w.mapper.ScaleY
	w.ctrl.setMapper(w.mapper)
	w.layoutContent()
}

// Clear abandons any drag session and resets the store to its default
// two-node state.
func (w *Widget) Clear() {
	w.ctrl.Cancel()
	w.graph.Clear()
}

// Cancel abandons any drag session in place, e.g. when the host window
// loses focus or pointer capture.
func (w *Widget) Cancel() {
	w.ctrl.Cancel()
}

// Update advances scroll animations and processes one frame of pointer
// input. Injected events take priority; real mouse polling is skipped on
// frames that consume one.
func (w *Widget) Update() {
	w.tick++
	dt := float32(1.0 / float64(ebiten.TPS()))
	w.view.Update(dt)

	if w.runner != nil {
		w.runner.step(w)
	}
	if w.processInjected() {
		return
	}
	mx, my := ebiten.CursorPosition()
	local := Point{mx - w.bounds.X, my - w.bounds.Y}
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	w.processPointer(local, left, right)
}

// processPointer performs press/release edge detection and double-click
// pairing, then dispatches to the controller. Coordinates are widget-local
// device pixels.
func (w *Widget) processPointer(pos Point, left, right bool) {
	switch {
	case left && !w.prevLeft:
		if w.tick-w.lastPressTick <= w.dcTicks &&
			abs(pos.X-w.lastPressPos.X) <= w.mapper.Radius &&
			abs(pos.Y-w.lastPressPos.Y) <= w.mapper.Radius {
			// Second press of a pair: dispatch as a double click and
			// swallow the press so a third quick press starts over.
			w.ctrl.DoubleClick(pos)
			w.lastPressTick = -1 << 30
		} else {
			w.ctrl.Press(pos)
			w.lastPressTick = w.tick
			w.lastPressPos = pos
		}
	case !left && w.prevLeft:
		w.ctrl.Release(pos)
	case left:
		if pos != w.prevPos {
			w.ctrl.Move(pos)
		}
	}

	if right && !w.prevRight {
		w.ctrl.SecondaryClick(pos)
	}

	w.prevLeft = left
	w.prevRight = right
	w.prevPos = pos
}
