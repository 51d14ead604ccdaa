package envgraph

// Controller is the pointer-driven state machine that mediates between raw
// pointer events and the node store. It owns the ephemeral drag session:
// the dragged node index, the pointer's offset from the node center at press
// time, and the accumulated offset while the pointer is outside the
// viewport. Session state exists only between a press and the matching
// release.
//
// All clamping of drag targets (endpoint X pinning, neighbor gaps, vertical
// bounds) lives in Graph.SetNode; the controller only converts coordinates
// and routes events.
type Controller struct {
	graph  *Graph
	mapper Mapper
	view   *Viewport

	state          State
	dragNode       int
	clickOffset    Point
	lastPointer    Point
	externalOffset Point

	// onNodeMenu resolves the context choice raised by a secondary click
	// over a node. Nil means secondary clicks are ignored.
	onNodeMenu func(index int) MenuAction
}

// NewController creates a controller over the given store, mapper, and
// viewport.
func NewController(g *Graph, m Mapper, v *Viewport) *Controller {
	return &Controller{
		graph:    g,
		mapper:   m,
		view:     v,
		dragNode: NoNode,
	}
}

// OnNodeMenu registers the context-menu resolver invoked on a secondary
// click over a node. The returned action is applied to the graph
// synchronously.
func (c *Controller) OnNodeMenu(fn func(index int) MenuAction) {
	c.onNodeMenu = fn
}

// State returns the controller's current state.
func (c *Controller) State() State {
	return c.state
}

// DragNode returns the index of the node being dragged, or NoNode.
func (c *Controller) DragNode() int {
	return c.dragNode
}

// ExternalOffset returns the offset accumulated while the pointer was held
// outside the viewport during the current drag session.
func (c *Controller) ExternalOffset() Point {
	return c.externalOffset
}

// setMapper swaps the coordinate mapper. Used by the widget on resize and
// bound changes.
func (c *Controller) setMapper(m Mapper) {
	c.mapper = m
}

// hitNode returns the index of the first node whose hit region contains the
// device point pos, iterating in index order so ties resolve to the lowest
// index. Returns NoNode when nothing is hit.
func (c *Controller) hitNode(pos Point) int {
	scroll := c.view.Offset()
	for i := 0; i < c.graph.NodeCount(); i++ {
		n, _ := c.graph.Node(i)
		if c.mapper.Hits(pos, c.mapper.ToDevice(n, scroll)) {
			return i
		}
	}
	return NoNode
}

// Press starts a drag session when pos hits a node. A press over empty
// space stays in Idle; node addition is reserved for DoubleClick.
func (c *Controller) Press(pos Point) {
	c.lastPointer = pos
	if c.state != StateIdle {
		return
	}
	idx := c.hitNode(pos)
	if idx == NoNode {
		return
	}
	n, _ := c.graph.Node(idx)
	center := c.mapper.ToDevice(n, c.view.Offset())
	c.dragNode = idx
	c.clickOffset = pos.Sub(center)
	c.externalOffset = Point{}
	c.state = StateDragging
}

// Move advances an active drag session: the drag target is derived from the
// pointer minus the press-time click offset, converted to logical space,
// and applied through Graph.SetNode, which clamps it. A change notification
// fires on every applied move for live feedback.
//
// When the pointer leaves the viewport the session enters
// StateDraggingOutside: the viewport auto-scrolls one step toward the
// pointer per move and the drag target is clamped to the nearest in-view
// position.
func (c *Controller) Move(pos Point) {
	c.lastPointer = pos
	if c.state == StateIdle {
		return
	}
	if c.dragNode < 0 || c.dragNode >= c.graph.NodeCount() {
		// The store was mutated under the session (e.g. programmatic
		// removal); abandon in place.
		c.Cancel()
		return
	}
	c.applyDrag(pos)
}

// Release commits the drag in place and clears the session. The final
// position is whatever the last applied move produced; there is no rollback
// path.
func (c *Controller) Release(pos Point) {
	c.lastPointer = pos
	if c.state == StateIdle {
		return
	}
	if c.dragNode >= 0 && c.dragNode < c.graph.NodeCount() {
		c.applyDrag(pos)
	}
	c.dragNode = NoNode
	c.clickOffset = Point{}
	c.externalOffset = Point{}
	c.state = StateIdle
}

// applyDrag converts pos into a clamped logical value for the dragged node.
func (c *Controller) applyDrag(pos Point) {
	if c.view.Contains(pos) {
		c.state = StateDragging
		c.externalOffset = Point{}
	} else {
		c.state = StateDraggingOutside
		inside := c.view.ClampToView(pos)
		c.externalOffset = c.externalOffset.Add(pos.Sub(inside))
		c.view.ScrollToward(pos)
		pos = inside
	}
	target := pos.Sub(c.clickOffset)
	c.graph.SetNode(c.dragNode, c.mapper.ToLogical(target, c.view.Offset()))
}

// DoubleClick adds a node at the pointer position when addition is enabled.
// A double click landing on an existing node's hit region is a no-op: the
// press would start a drag, not an add, and equal-X insertion is rejected
// by the store anyway.
func (c *Controller) DoubleClick(pos Point) {
	c.lastPointer = pos
	if c.state != StateIdle {
		return
	}
	if !c.graph.CanAdd() {
		return
	}
	if c.hitNode(pos) != NoNode {
		return
	}
	c.graph.AddNode(c.mapper.ToLogical(pos, c.view.Offset()))
}

// SecondaryClick raises the node context menu when pos hits a node and
// applies the resolved action. No session state changes.
func (c *Controller) SecondaryClick(pos Point) {
	c.lastPointer = pos
	if c.state != StateIdle || c.onNodeMenu == nil {
		return
	}
	idx := c.hitNode(pos)
	if idx == NoNode {
		return
	}
	switch c.onNodeMenu(idx) {
	case MenuSetSustain:
		c.graph.SetSustain(idx)
	case MenuClearSustain:
		c.graph.ClearSustain()
	case MenuRemoveNode:
		c.graph.RemoveNode(idx)
	}
}

// Cancel abandons the drag session without further mutation. The last
// applied position stands; there is no undo buffer.
func (c *Controller) Cancel() {
	c.dragNode = NoNode
	c.clickOffset = Point{}
	c.externalOffset = Point{}
	c.state = StateIdle
}
