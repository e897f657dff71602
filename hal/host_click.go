package hal

// Double click/tap window, in host ticks and device pixels.
const (
	doubleClickTicks = 18
	doubleClickSlop  = 8
)

// clickTracker detects a second press close to the first in time and space.
type clickTracker struct {
	armed bool
	tick  uint64
	x, y  float64
}

// click records a press and reports whether it completes a double click.
func (c *clickTracker) click(x, y float64, tick uint64) bool {
	if c.armed && tick-c.tick <= doubleClickTicks &&
		abs(x-c.x) <= doubleClickSlop && abs(y-c.y) <= doubleClickSlop {
		c.armed = false
		return true
	}
	c.armed = true
	c.tick = tick
	c.x, c.y = x, y
	return false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
