package envgraph

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestViewportOffsetClamp(t *testing.T) {
	v := NewViewport(Rect{Width: 200, Height: 100})
	v.SetContentSize(410, 210)

	v.SetOffset(1000, 1000)
	if got := v.Offset(); got != (Point{210, 110}) {
		t.Errorf("Offset = %v, want clamped to (210,110)", got)
	}
	v.SetOffset(-50, -50)
	if got := v.Offset(); got != (Point{0, 0}) {
		t.Errorf("Offset = %v, want clamped to (0,0)", got)
	}
}

func TestViewportContentSmallerThanView(t *testing.T) {
	v := NewViewport(Rect{Width: 200, Height: 100})
	v.SetContentSize(50, 50)
	v.SetOffset(30, 30)
	if got := v.Offset(); got != (Point{0, 0}) {
		t.Errorf("Offset = %v, want (0,0) when content fits", got)
	}
}

func TestViewportContains(t *testing.T) {
	v := NewViewport(Rect{X: 10, Y: 20, Width: 200, Height: 100})

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Point{100, 60}, true},
		{"top-left corner", Point{10, 20}, true},
		{"bottom-right corner", Point{210, 120}, true},
		{"left of view", Point{5, 60}, false},
		{"below view", Point{100, 150}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestViewportClampToView(t *testing.T) {
	v := NewViewport(Rect{Width: 200, Height: 100})
	if got := v.ClampToView(Point{300, -20}); got != (Point{200, 0}) {
		t.Errorf("ClampToView = %v, want (200,0)", got)
	}
	if got := v.ClampToView(Point{50, 60}); got != (Point{50, 60}) {
		t.Errorf("ClampToView of inside point = %v, want unchanged", got)
	}
}

func TestScrollToward(t *testing.T) {
	v := NewViewport(Rect{Width: 200, Height: 100})
	v.SetContentSize(410, 210)

	v.ScrollToward(Point{250, 50}) // right of view
	if got := v.Offset(); got != (Point{scrollRate, 0}) {
		t.Errorf("Offset = %v, want (%d,0)", got, scrollRate)
	}
	v.ScrollToward(Point{250, 150}) // right of and below view
	if got := v.Offset(); got != (Point{2 * scrollRate, scrollRate}) {
		t.Errorf("Offset = %v, want (%d,%d)", got, 2*scrollRate, scrollRate)
	}
	v.ScrollToward(Point{100, 50}) // inside: no movement
	if got := v.Offset(); got != (Point{2 * scrollRate, scrollRate}) {
		t.Errorf("Offset = %v, want unchanged", got)
	}
}

func TestScrollTowardClampsAtContentEdge(t *testing.T) {
	v := NewViewport(Rect{Width: 200, Height: 100})
	v.SetContentSize(410, 210)

	for i := 0; i < 100; i++ {
		v.ScrollToward(Point{500, 500})
	}
	if got := v.Offset(); got != (Point{210, 110}) {
		t.Errorf("Offset = %v, want clamped to (210,110)", got)
	}

	for i := 0; i < 100; i++ {
		v.ScrollToward(Point{-10, -10})
	}
	if got := v.Offset(); got != (Point{0, 0}) {
		t.Errorf("Offset = %v, want clamped to (0,0)", got)
	}
}

func TestScrollToAnimates(t *testing.T) {
	v := NewViewport(Rect{Width: 200, Height: 100})
	v.SetContentSize(410, 210)

	v.ScrollTo(100, 50, 1.0, ease.Linear)
	if !v.Scrolling() {
		t.Fatal("Scrolling should be true after ScrollTo")
	}

	v.Update(0.5)
	mid := v.Offset()
	if mid.X <= 0 || mid.X >= 100 {
		t.Errorf("mid-scroll X = %d, want between 0 and 100", mid.X)
	}

	v.Update(1.0) // past the end
	if got := v.Offset(); got != (Point{100, 50}) {
		t.Errorf("Offset = %v after animation, want (100,50)", got)
	}
	if v.Scrolling() {
		t.Error("Scrolling should be false after the animation completes")
	}
}

func TestScrollToClampsTarget(t *testing.T) {
	v := NewViewport(Rect{Width: 200, Height: 100})
	v.SetContentSize(410, 210)

	v.ScrollTo(9999, 9999, 0.1, ease.Linear)
	v.Update(1.0)
	if got := v.Offset(); got != (Point{210, 110}) {
		t.Errorf("Offset = %v, want target clamped to (210,110)", got)
	}
}

func TestSetOffsetCancelsScroll(t *testing.T) {
	v := NewViewport(Rect{Width: 200, Height: 100})
	v.SetContentSize(410, 210)

	v.ScrollTo(200, 100, 1.0, ease.Linear)
	v.SetOffset(10, 10)
	if v.Scrolling() {
		t.Error("SetOffset should cancel a running scroll animation")
	}
	v.Update(0.5)
	if got := v.Offset(); got != (Point{10, 10}) {
		t.Errorf("Offset = %v, want (10,10)", got)
	}
}

func TestResizeReclampsOffset(t *testing.T) {
	v := NewViewport(Rect{Width: 200, Height: 100})
	v.SetContentSize(410, 210)
	v.SetOffset(210, 110)

	v.SetViewSize(400, 200)
	if got := v.Offset(); got != (Point{10, 10}) {
		t.Errorf("Offset = %v after growing the view, want (10,10)", got)
	}
}
