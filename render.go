package envgraph

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// lineWidth is the stroke width of graph segments in pixels.
const lineWidth = 2

// Draw paints the widget into its bounds on screen, clipped so scrolled
// content never bleeds outside. Segments at or after the sustain node use
// the release color; the sustain node itself uses the sustain color.
func (w *Widget) Draw(screen *ebiten.Image) {
	clip := screen.SubImage(image.Rect(
		w.bounds.X, w.bounds.Y,
		w.bounds.X+w.bounds.Width, w.bounds.Y+w.bounds.Height,
	)).(*ebiten.Image)

	if w.background.A > 0 {
		clip.Fill(w.background.toRGBA())
	}

	scroll := w.view.Offset()
	off := Point{w.bounds.X, w.bounds.Y}
	sustain := w.graph.Sustain()
	count := w.graph.NodeCount()

	prev := Point{}
	for i := 0; i < count; i++ {
		n, _ := w.graph.Node(i)
		p := w.mapper.ToDevice(n, scroll).Add(off)
		if i > 0 {
			col := w.lineColor
			if sustain != NoNode && i-1 >= sustain {
				col = w.relColor
			}
			vector.StrokeLine(clip,
				float32(prev.X), float32(prev.Y),
				float32(p.X), float32(p.Y),
				lineWidth, col.toRGBA(), true)
		}
		prev = p
	}

	radius := float32(w.mapper.Radius)
	for i := 0; i < count; i++ {
		n, _ := w.graph.Node(i)
		p := w.mapper.ToDevice(n, scroll).Add(off)
		col := w.nodeColor
		if i == sustain {
			col = w.sustColor
		}
		vector.DrawFilledCircle(clip,
			float32(p.X), float32(p.Y), radius, col.toRGBA(), true)
	}

	if w.debug {
		w.drawOverlay(screen)
	}
}
