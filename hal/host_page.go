package hal

import "sync"

// hostPage simulates a document one surface tall sitting below the hero, so
// the page can scroll by at most one surface height.
type hostPage struct {
	fb *hostFramebuffer

	mu sync.Mutex
	y  float64
}

func newHostPage(fb *hostFramebuffer) *hostPage {
	return &hostPage{fb: fb}
}

func (p *hostPage) maxScroll() float64 { return float64(p.fb.Height()) }

func (p *hostPage) ScrollY() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.y
}

func (p *hostPage) ScrollBy(dy float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.y = clampScroll(p.y+dy, p.maxScroll())
}

func (p *hostPage) ScrollTo(y float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.y = clampScroll(y, p.maxScroll())
}

func (p *hostPage) clamp() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.y = clampScroll(p.y, p.maxScroll())
}

func clampScroll(y, limit float64) float64 {
	if y < 0 || y != y {
		return 0
	}
	if y > limit {
		return limit
	}
	return y
}
