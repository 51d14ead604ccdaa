package envgraph

import (
	"encoding/json"
	"fmt"
)

// Preset is a serializable snapshot of the graph's node sequence and
// sustain marker. The library never touches the filesystem; a host
// persistence layer stores and retrieves the encoded bytes.
type Preset struct {
	Nodes   []Point `json:"nodes"`
	Sustain int     `json:"sustain"` // NoNode when unset
}

// presetJSON mirrors Preset with an optional sustain field so that absent
// values decode to NoNode rather than index 0.
type presetJSON struct {
	Nodes   []Point `json:"nodes"`
	Sustain *int    `json:"sustain,omitempty"`
}

// Preset returns a snapshot of the current graph state.
func (g *Graph) Preset() Preset {
	return Preset{Nodes: g.Nodes(), Sustain: g.sustain}
}

// ApplyPreset replaces the graph's contents with the preset, validating it
// against the store's invariants first. The load happens as one bulk update
// and fires a single change notification (none while updates are
// inhibited). Y values are clamped into the current vertical bounds.
func (g *Graph) ApplyPreset(p Preset) error {
	if len(p.Nodes) < 2 {
		return fmt.Errorf("apply preset: need at least 2 nodes, got %d", len(p.Nodes))
	}
	if len(p.Nodes) > g.maxNodes {
		return fmt.Errorf("apply preset: %d nodes exceeds capacity %d", len(p.Nodes), g.maxNodes)
	}
	for i := 1; i < len(p.Nodes); i++ {
		if p.Nodes[i].X <= p.Nodes[i-1].X {
			return fmt.Errorf("apply preset: nodes not strictly ascending at index %d", i)
		}
	}
	if p.Sustain != NoNode && (p.Sustain < 0 || p.Sustain >= len(p.Nodes)) {
		return fmt.Errorf("apply preset: sustain index %d out of range", p.Sustain)
	}

	nodes := make([]Point, len(p.Nodes))
	for i, n := range p.Nodes {
		n.Y = clamp(n.Y, g.minY, g.maxY)
		nodes[i] = n
	}
	g.nodes = nodes
	g.locked = make([]bool, len(nodes))
	g.sustain = p.Sustain
	g.origin = nodes[0]
	g.notify()
	return nil
}

// EncodePreset encodes a preset to JSON bytes.
func EncodePreset(p Preset) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode preset: %w", err)
	}
	return data, nil
}

// DecodePreset decodes JSON bytes into a preset. A missing sustain field
// decodes to NoNode. The result is not validated; ApplyPreset does that.
func DecodePreset(data []byte) (Preset, error) {
	var aux presetJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return Preset{}, fmt.Errorf("decode preset: %w", err)
	}
	p := Preset{Nodes: aux.Nodes, Sustain: NoNode}
	if aux.Sustain != nil {
		p.Sustain = *aux.Sustain
	}
	return p, nil
}
