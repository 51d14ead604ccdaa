package envgraph

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollRate is the number of pixels the viewport advances per update while
// auto-scrolling toward a pointer held outside its bounds.
const scrollRate = 10

// scrollAnim holds active scroll-to tweens for viewport X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Viewport is the scrollable view onto the graph's content. It owns the
// current scroll offset, clamped so the visible area never leaves the
// content, and supports stepwise auto-scroll (used while a drag leaves the
// view) and animated scroll-to.
type Viewport struct {
	view     Rect
	contentW int
	contentH int
	offsetX  int
	offsetY  int

	scrollTween *scrollAnim
}

// NewViewport creates a viewport with the given visible rectangle. Content
// size starts equal to the view size (nothing to scroll).
func NewViewport(view Rect) *Viewport {
	return &Viewport{
		view:     view,
		contentW: view.Width,
		contentH: view.Height,
	}
}

// View returns the visible rectangle.
func (v *Viewport) View() Rect {
	return v.view
}

// SetViewSize resizes the visible area, re-clamping the scroll offset.
// Content is untouched.
func (v *Viewport) SetViewSize(w, h int) {
	v.view.Width = w
	v.view.Height = h
	v.clampOffset()
}

// SetContentSize sets the virtual content size, re-clamping the scroll
// offset.
func (v *Viewport) SetContentSize(w, h int) {
	v.contentW = w
	v.contentH = h
	v.clampOffset()
}

// ContentSize returns the virtual content size.
func (v *Viewport) ContentSize() (w, h int) {
	return v.contentW, v.contentH
}

// Offset returns the current scroll offset.
func (v *Viewport) Offset() Point {
	return Point{v.offsetX, v.offsetY}
}

// SetOffset scrolls to the given offset, clamped to the content bounds.
// Cancels any running scroll animation.
func (v *Viewport) SetOffset(x, y int) {
	v.scrollTween = nil
	v.offsetX = x
	v.offsetY = y
	v.clampOffset()
}

// Contains reports whether the device point p lies inside the visible area.
func (v *Viewport) Contains(p Point) bool {
	return v.view.Contains(p.X, p.Y)
}

// ClampToView returns p moved to the nearest point inside the visible area.
func (v *Viewport) ClampToView(p Point) Point {
	return Point{
		X: clamp(p.X, v.view.X, v.view.X+v.view.Width),
		Y: clamp(p.Y, v.view.Y, v.view.Y+v.view.Height),
	}
}

// ScrollToward advances the scroll offset one step toward a pointer outside
// the visible area. No-op for axes where the pointer is inside. Cancels any
// running scroll animation.
func (v *Viewport) ScrollToward(p Point) {
	v.scrollTween = nil
	if p.X < v.view.X {
		v.offsetX -= scrollRate
	} else if p.X > v.view.X+v.view.Width {
		v.offsetX += scrollRate
	}
	if p.Y < v.view.Y {
		v.offsetY -= scrollRate
	} else if p.Y > v.view.Y+v.view.Height {
		v.offsetY += scrollRate
	}
	v.clampOffset()
}

// ScrollTo animates the scroll offset to (x, y) over duration seconds.
func (v *Viewport) ScrollTo(x, y int, duration float32, easeFn ease.TweenFunc) {
	x = clamp(x, 0, v.maxOffsetX())
	y = clamp(y, 0, v.maxOffsetY())
	v.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(v.offsetX), float32(x), duration, easeFn),
		tweenY: gween.New(float32(v.offsetY), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a scroll animation is running.
func (v *Viewport) Scrolling() bool {
	return v.scrollTween != nil
}

// Update advances any running scroll animation by dt seconds.
func (v *Viewport) Update(dt float32) {
	if v.scrollTween == nil {
		return
	}
	if !v.scrollTween.doneX {
		val, done := v.scrollTween.tweenX.Update(dt)
		v.offsetX = int(val + 0.5)
		v.scrollTween.doneX = done
	}
	if !v.scrollTween.doneY {
		val, done := v.scrollTween.tweenY.Update(dt)
		v.offsetY = int(val + 0.5)
		v.scrollTween.doneY = done
	}
	if v.scrollTween != nil && v.scrollTween.doneX && v.scrollTween.doneY {
		v.scrollTween = nil
	}
	v.clampOffset()
}

func (v *Viewport) maxOffsetX() int {
	m := v.contentW - v.view.Width
	if m < 0 {
		m = 0
	}
	return m
}

func (v *Viewport) maxOffsetY() int {
	m := v.contentH - v.view.Height
	if m < 0 {
		m = 0
	}
	return m
}

func (v *Viewport) clampOffset() {
	v.offsetX = clamp(v.offsetX, 0, v.maxOffsetX())
	v.offsetY = clamp(v.offsetY, 0, v.maxOffsetY())
}
