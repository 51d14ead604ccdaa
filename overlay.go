package envgraph

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawOverlay prints FPS/TPS, node count, and the controller state in the
// widget's top-left corner. Enabled via SetDebug.
func (w *Widget) drawOverlay(screen *ebiten.Image) {
	scroll := w.view.Offset()
	msg := fmt.Sprintf("FPS: %.1f TPS: %.1f\nnodes: %d/%d sustain: %d\nstate: %s scroll: %d,%d",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		w.graph.NodeCount(), w.graph.MaxNodes(), w.graph.Sustain(),
		w.ctrl.State(), scroll.X, scroll.Y)
	ebitenutil.DebugPrintAt(screen, msg, w.bounds.X+4, w.bounds.Y+4)
}
