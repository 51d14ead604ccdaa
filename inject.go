package envgraph

// syntheticPointerEvent is a single injected pointer event. Screen
// coordinates are used and converted to widget-local coordinates exactly
// like real mouse input.
type syntheticPointerEvent struct {
	x, y    int
	pressed bool
	button  MouseButton
}

// InjectPress queues a left-button press at the given screen coordinates.
// The event is consumed on the next Update call.
func (w *Widget) InjectPress(x, y int) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{
		x: x, y: y, pressed: true, button: MouseButtonLeft,
	})
}

// InjectMove queues a pointer move with the left button held down. Use
// between InjectPress and InjectRelease to simulate a drag.
func (w *Widget) InjectMove(x, y int) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{
		x: x, y: y, pressed: true, button: MouseButtonLeft,
	})
}

// InjectRelease queues a left-button release at the given screen
// coordinates.
func (w *Widget) InjectRelease(x, y int) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{
		x: x, y: y, pressed: false, button: MouseButtonLeft,
	})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two updates.
func (w *Widget) InjectClick(x, y int) {
	w.InjectPress(x, y)
	w.InjectRelease(x, y)
}

// InjectDoubleClick queues two click pairs at the same screen coordinates.
// The second press lands inside the double-click window and dispatches as a
// double click. Consumes four updates.
func (w *Widget) InjectDoubleClick(x, y int) {
	w.InjectClick(x, y)
	w.InjectClick(x, y)
}

// InjectSecondaryClick queues a right-button press and release at the given
// screen coordinates. Consumes two updates.
func (w *Widget) InjectSecondaryClick(x, y int) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{
		x: x, y: y, pressed: true, button: MouseButtonRight,
	})
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{
		x: x, y: y, pressed: false, button: MouseButtonRight,
	})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves, and release at (toX, toY). The sequence consumes
// `frames` updates; the minimum is 2 (press + release).
func (w *Widget) InjectDrag(fromX, fromY, toX, toY, frames int) {
	if frames < 2 {
		frames = 2
	}
	w.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		x := fromX + (toX-fromX)*i/(steps+1)
		y := fromY + (toY-fromY)*i/(steps+1)
		w.InjectMove(x, y)
	}
	w.InjectRelease(toX, toY)
}

// processInjected pops one event from the inject queue and feeds it through
// the same edge-detection path as real input. Returns true if an event was
// consumed, in which case real mouse polling is skipped this frame.
func (w *Widget) processInjected() bool {
	if len(w.injectQueue) == 0 {
		return false
	}
	evt := w.injectQueue[0]
	copy(w.injectQueue, w.injectQueue[1:])
	w.injectQueue = w.injectQueue[:len(w.injectQueue)-1]

	local := Point{evt.x - w.bounds.X, evt.y - w.bounds.Y}
	left, right := w.prevLeft, w.prevRight
	switch evt.button {
	case MouseButtonLeft:
		left = evt.pressed
	case MouseButtonRight:
		right = evt.pressed
	}
	w.processPointer(local, left, right)
	return true
}
