package envgraph

// Mapper converts between logical data space and device pixel space. The
// two operations are exact inverses for any logical point: ToLogical of
// ToDevice returns the original node value.
//
// Logical Y grows upward; device Y grows downward, so the Y axis flips
// around OriginY. The scroll offset shifts device coordinates so the same
// logical point stays anchored to its content position while the viewport
// pans.
type Mapper struct {
	// ScaleX and ScaleY are device pixels per logical unit (minimum 1).
	ScaleX, ScaleY int
	// OriginX and OriginY are the device pixel of logical (0, 0) at zero
	// scroll offset.
	OriginX, OriginY int
	// Radius is the node radius in pixels. Hit targets are squares of
	// half-width Radius centered on the mapped node (a deliberate
	// simplification; the rendered node is a circle).
	Radius int
}

// NewMapper creates a mapper, replacing non-positive scales and radius with
// 1 pixel per unit and a 5 pixel radius.
func NewMapper(scaleX, scaleY, radius int) Mapper {
	if scaleX < 1 {
		scaleX = 1
	}
	if scaleY < 1 {
		scaleY = 1
	}
	if radius < 1 {
		radius = 5
	}
	return Mapper{ScaleX: scaleX, ScaleY: scaleY, Radius: radius}
}

// ToDevice maps a logical node value to its device pixel center under the
// given scroll offset.
func (m Mapper) ToDevice(p Point, scroll Point) Point {
	return Point{
		X: m.OriginX + p.X*m.ScaleX - scroll.X,
		Y: m.OriginY - p.Y*m.ScaleY - scroll.Y,
	}
}

// ToLogical maps a device pixel point back to a logical node value under the
// given scroll offset. Inverse of ToDevice; for raw pointer positions the
// result truncates to the enclosing logical unit.
func (m Mapper) ToLogical(d Point, scroll Point) Point {
	return Point{
		X: (d.X + scroll.X - m.OriginX) / m.ScaleX,
		Y: (m.OriginY - d.Y - scroll.Y) / m.ScaleY,
	}
}

// Hits reports whether the device point d falls within the square hit
// region around a node's device center.
func (m Mapper) Hits(d, center Point) bool {
	return abs(d.X-center.X) <= m.Radius && abs(d.Y-center.Y) <= m.Radius
}

// ContentSize returns the device pixel size of the scrollable content that
// holds logical X in [0, extent] and logical Y in [minY, maxY], with a node
// radius margin on the far edges.
func (m Mapper) ContentSize(extent, minY, maxY int) (w, h int) {
	w = m.OriginX + extent*m.ScaleX + m.Radius
	h = m.OriginY - minY*m.ScaleY + m.Radius
	return w, h
}
