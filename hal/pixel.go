package hal

import "fmt"

// luma is the Rec. 601 luma of an 8-bit RGB color.
func luma(r, g, b uint8) uint8 {
	return uint8((299*uint32(r) + 587*uint32(g) + 114*uint32(b)) / 1000)
}

// quantize drops the low bits of each channel so nearby colors share a style.
func quantize(r, g, b uint8) (uint8, uint8, uint8) {
	const mask = 0xF0
	return r&mask | r>>4, g&mask | g>>4, b&mask | b>>4
}

func hexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
