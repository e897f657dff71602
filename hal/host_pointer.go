//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// wheelLine converts ebiten wheel offsets to device pixels.
const wheelLine = 100

type hostPointer struct {
	tick   uint64
	lastX  int
	lastY  int
	clicks clickTracker

	touching bool
	touch    ebiten.TouchID
	touchX   int
	touchY   int
	touches  []ebiten.TouchID
}

func (p *hostPointer) poll(in *hostInput) {
	p.tick++

	x, y := ebiten.CursorPosition()
	if x != p.lastX || y != p.lastY {
		p.lastX, p.lastY = x, y
		in.push(Event{Kind: EventPointerMove, X: float64(x), Y: float64(y)})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.push(Event{Kind: EventPointerDown, X: float64(x), Y: float64(y)})
		if p.clicks.click(float64(x), float64(y), p.tick) {
			in.push(Event{Kind: EventReset})
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		in.push(Event{Kind: EventPointerUp, X: float64(x), Y: float64(y)})
	}
	if _, yoff := ebiten.Wheel(); yoff != 0 {
		in.push(Event{Kind: EventWheel, X: float64(x), Y: float64(y), DeltaY: -yoff * wheelLine})
	}

	p.pollTouch(in)

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.push(Event{Kind: EventReset})
	}
}

// pollTouch tracks the first active touch as the pointer.
func (p *hostPointer) pollTouch(in *hostInput) {
	if !p.touching {
		p.touches = inpututil.AppendJustPressedTouchIDs(p.touches[:0])
		if len(p.touches) == 0 {
			return
		}
		p.touching = true
		p.touch = p.touches[0]
		p.touchX, p.touchY = ebiten.TouchPosition(p.touch)
		tx, ty := float64(p.touchX), float64(p.touchY)
		in.push(Event{Kind: EventPointerDown, X: tx, Y: ty})
		if p.clicks.click(tx, ty, p.tick) {
			in.push(Event{Kind: EventReset})
		}
		return
	}

	if inpututil.IsTouchJustReleased(p.touch) {
		p.touching = false
		in.push(Event{Kind: EventPointerUp, X: float64(p.touchX), Y: float64(p.touchY)})
		return
	}
	x, y := ebiten.TouchPosition(p.touch)
	if x != p.touchX || y != p.touchY {
		p.touchX, p.touchY = x, y
		in.push(Event{Kind: EventPointerMove, X: float64(x), Y: float64(y)})
	}
}
