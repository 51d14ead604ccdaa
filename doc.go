// Package envgraph is a draggable-node envelope editor widget for
// [Ebitengine].
//
// The widget renders an ordered sequence of nodes joined by straight line
// segments (the classic attack/decay/sustain/release envelope shape) and
// lets the user drag nodes, add nodes by double-clicking, and mark or
// remove nodes through a context menu raised on secondary click.
//
// # Quick start
//
// Create a [Widget] and call [Widget.Update] and [Widget.Draw] from your
// [ebiten.Game]:
//
//	widget := envgraph.New(envgraph.Config{
//		Bounds:   envgraph.Rect{X: 20, Y: 20, Width: 600, Height: 300},
//		MaxNodes: 8,
//		ScaleX:   4, ScaleY: 2,
//	})
//	widget.OnChanged(func() {
//		// query widget.Graph() for the new envelope shape
//	})
//
//	type Game struct{ widget *envgraph.Widget }
//
//	func (g *Game) Update() error              { g.widget.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)       { g.widget.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Structure
//
// Three cooperating pieces sit behind the widget and are usable on their
// own: [Graph] owns the ordered node sequence and its invariants (bounds,
// minimum count, strict x-ordering, sustain marker); [Mapper] converts
// between logical data space and device pixels; [Controller] is the pointer
// state machine that turns press/move/release events into store mutations.
// [Viewport] provides the scrollable view, including auto-scroll while a
// drag leaves the visible area.
//
// All mutation is synchronous and single-threaded on the game loop; the
// store fires one no-payload change notification per committed mutation,
// suppressible via [Graph.InhibitUpdates] for bulk loads.
//
// For automated testing, pointer events can be injected with
// [Widget.InjectDrag] and friends, or sequenced from a JSON script via
// [LoadScript].
//
// [Ebitengine]: https://ebitengine.org
package envgraph
