package envgraph

// Default store parameters used when GraphConfig fields are zero.
const (
	defaultMaxNodes  = 16
	defaultMaxHeight = 100
	defaultExtent    = 100

	// minGapX is the minimum horizontal distance kept between neighboring
	// nodes when a node is repositioned.
	minGapX = 1
)

// GraphConfig configures a new Graph. Zero values are replaced by defaults.
type GraphConfig struct {
	// MaxNodes is the node capacity (minimum 2). Default 16.
	MaxNodes int
	// MinY and MaxY clamp every node's vertical value. Default [0, 100].
	MinY, MaxY int
	// Origin is the logical position of the first node. Its X stays fixed
	// for the lifetime of the graph.
	Origin Point
	// Extent is the X value of the default last node. Default Origin.X + 100.
	Extent int
}

// Graph is the node store: an ordered sequence of nodes sorted by strictly
// ascending X, with an optional sustain marker. It always holds at least two
// nodes; the first and last are non-removable and their X values are fixed.
//
// Graph is not safe for concurrent use. All mutation is expected to happen
// on the game loop goroutine, matching the single-threaded event model of
// the widget.
type Graph struct {
	nodes   []Point
	locked  []bool // parallel to nodes: true blocks removal of an interior node
	sustain int    // index of the sustain node, NoNode when unset

	maxNodes   int
	minY, maxY int
	origin     Point
	extent     int

	allowAdd bool
	inhibit  bool
	onChange func()
}

// NewGraph creates a store holding the two default endpoint nodes.
func NewGraph(cfg GraphConfig) *Graph {
	if cfg.MaxNodes < 2 {
		cfg.MaxNodes = defaultMaxNodes
	}
	if cfg.MinY == 0 && cfg.MaxY == 0 {
		cfg.MaxY = defaultMaxHeight
	}
	if cfg.MaxY < cfg.MinY {
		cfg.MinY, cfg.MaxY = cfg.MaxY, cfg.MinY
	}
	if cfg.Extent <= cfg.Origin.X {
		cfg.Extent = cfg.Origin.X + defaultExtent
	}
	g := &Graph{
		sustain:  NoNode,
		maxNodes: cfg.MaxNodes,
		minY:     cfg.MinY,
		maxY:     cfg.MaxY,
		origin:   cfg.Origin,
		extent:   cfg.Extent,
		allowAdd: true,
	}
	g.reset()
	return g
}

// reset installs the default two-node state without notifying.
func (g *Graph) reset() {
	y := clamp(g.origin.Y, g.minY, g.maxY)
	g.nodes = []Point{{g.origin.X, y}, {g.extent, y}}
	g.locked = []bool{false, false}
	g.sustain = NoNode
}

// notify fires the change callback unless updates are inhibited.
func (g *Graph) notify() {
	if !g.inhibit && g.onChange != nil {
		g.onChange()
	}
}

// OnChange registers the single outbound change callback. It carries no
// payload; listeners query the graph for current state.
func (g *Graph) OnChange(fn func()) {
	g.onChange = fn
}

// InhibitUpdates suppresses change notifications while set. Mutations still
// apply; used for bulk programmatic loads.
func (g *Graph) InhibitUpdates(inhibit bool) {
	g.inhibit = inhibit
}

// AddNode inserts a node at its horizontal position, keeping the sequence
// sorted by ascending X. Returns the insertion index.
//
// Fails when the graph is at capacity, when the X value lies left of the
// first node, or when an existing node already occupies the same X (equal-X
// insertion is rejected rather than merged).
func (g *Graph) AddNode(p Point) (int, bool) {
	if len(g.nodes) >= g.maxNodes {
		return NoNode, false
	}
	if p.X < g.nodes[0].X {
		return NoNode, false
	}
	p.Y = clamp(p.Y, g.minY, g.maxY)

	idx := len(g.nodes)
	for i, n := range g.nodes {
		if n.X == p.X {
			return NoNode, false
		}
		if n.X > p.X {
			idx = i
			break
		}
	}

	g.nodes = append(g.nodes, Point{})
	copy(g.nodes[idx+1:], g.nodes[idx:])
	g.nodes[idx] = p
	g.locked = append(g.locked, false)
	copy(g.locked[idx+1:], g.locked[idx:])
	g.locked[idx] = false

	// Keep the sustain marker tracking the same node.
	if g.sustain != NoNode && g.sustain >= idx {
		g.sustain++
	}
	g.notify()
	return idx, true
}

// RemoveNode removes the node at index. Fails when the index is out of
// range, when the node is an endpoint or locked, or when removal would drop
// the count below two.
func (g *Graph) RemoveNode(index int) bool {
	if index < 0 || index >= len(g.nodes) {
		return false
	}
	if len(g.nodes) <= 2 {
		return false
	}
	if index == 0 || index == len(g.nodes)-1 {
		return false
	}
	if g.locked[index] {
		return false
	}

	copy(g.nodes[index:], g.nodes[index+1:])
	g.nodes = g.nodes[:len(g.nodes)-1]
	copy(g.locked[index:], g.locked[index+1:])
	g.locked = g.locked[:len(g.locked)-1]

	if g.sustain == index {
		g.sustain = NoNode
	} else if g.sustain > index {
		g.sustain--
	}
	g.notify()
	return true
}

// Clear resets the graph to the default two-node state and clears the
// sustain marker.
func (g *Graph) Clear() {
	g.reset()
	g.notify()
}

// SetNode repositions the node at index. The Y value is clamped into
// [MinHeight, MaxHeight]. The X value of an endpoint is pinned; an interior
// node's X is clamped to stay strictly between its neighbors with a minimum
// one-unit gap. This is the constraint applied on every drag move.
func (g *Graph) SetNode(index int, p Point) bool {
	if index < 0 || index >= len(g.nodes) {
		return false
	}
	p.Y = clamp(p.Y, g.minY, g.maxY)
	if index == 0 || index == len(g.nodes)-1 {
		p.X = g.nodes[index].X
	} else {
		p.X = clamp(p.X, g.nodes[index-1].X+minGapX, g.nodes[index+1].X-minGapX)
	}
	g.nodes[index] = p
	g.notify()
	return true
}

// SetSustain marks the node at index as the sustain point. Pass NoNode to
// clear the marker. Fails on any other out-of-range index.
func (g *Graph) SetSustain(index int) bool {
	if index != NoNode && (index < 0 || index >= len(g.nodes)) {
		return false
	}
	g.sustain = index
	g.notify()
	return true
}

// ClearSustain clears the sustain marker.
func (g *Graph) ClearSustain() {
	g.SetSustain(NoNode)
}

// SetMaxNodes changes the node capacity (floored at 2). Existing nodes are
// retained even when they exceed the new bound; further additions fail until
// removals bring the count under it.
func (g *Graph) SetMaxNodes(n int) {
	if n < 2 {
		n = 2
	}
	g.maxNodes = n
}

// AllowAddNodes sets whether user interaction may add nodes. Programmatic
// AddNode calls are not gated by this flag.
func (g *Graph) AllowAddNodes(allow bool) {
	g.allowAdd = allow
}

// CanAdd reports whether user interaction may add nodes.
func (g *Graph) CanAdd() bool {
	return g.allowAdd
}

// SetRemovable marks an interior node as removable or locked. Endpoints are
// always protected regardless of this flag.
func (g *Graph) SetRemovable(index int, removable bool) bool {
	if index < 0 || index >= len(g.nodes) {
		return false
	}
	g.locked[index] = !removable
	return true
}

// Removable reports whether RemoveNode can currently remove the node at
// index.
func (g *Graph) Removable(index int) bool {
	if index <= 0 || index >= len(g.nodes)-1 {
		return false
	}
	return !g.locked[index] && len(g.nodes) > 2
}

// SetMaxHeight raises or lowers the vertical upper bound. Existing nodes are
// re-clamped; a notification fires only if any node moved.
func (g *Graph) SetMaxHeight(h int) {
	if h < g.minY {
		h = g.minY
	}
	g.maxY = h
	g.reclampY()
}

// SetMinHeight raises or lowers the vertical lower bound. Existing nodes are
// re-clamped; a notification fires only if any node moved.
func (g *Graph) SetMinHeight(h int) {
	if h > g.maxY {
		h = g.maxY
	}
	g.minY = h
	g.reclampY()
}

func (g *Graph) reclampY() {
	changed := false
	for i, n := range g.nodes {
		y := clamp(n.Y, g.minY, g.maxY)
		if y != n.Y {
			g.nodes[i].Y = y
			changed = true
		}
	}
	if changed {
		g.notify()
	}
}

// SetOrigin moves the first node's baseline. Its X is clamped to stay at
// least one unit left of the second node.
func (g *Graph) SetOrigin(p Point) {
	if p.X > g.nodes[1].X-minGapX {
		p.X = g.nodes[1].X - minGapX
	}
	p.Y = clamp(p.Y, g.minY, g.maxY)
	g.origin = p
	g.nodes[0] = p
	g.notify()
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// MaxNodes returns the node capacity.
func (g *Graph) MaxNodes() int {
	return g.maxNodes
}

// Node returns the node at index.
func (g *Graph) Node(index int) (Point, bool) {
	if index < 0 || index >= len(g.nodes) {
		return Point{}, false
	}
	return g.nodes[index], true
}

// Nodes returns a copy of the node sequence.
func (g *Graph) Nodes() []Point {
	out := make([]Point, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Sustain returns the sustain node index, or NoNode when unset.
func (g *Graph) Sustain() int {
	return g.sustain
}

// MaxHeight returns the vertical upper bound.
func (g *Graph) MaxHeight() int {
	return g.maxY
}

// MinHeight returns the vertical lower bound.
func (g *Graph) MinHeight() int {
	return g.minY
}

// Origin returns the first node's baseline.
func (g *Graph) Origin() Point {
	return g.origin
}
