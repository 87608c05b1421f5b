package render

import "github.com/0xnurrabby/Bonsai/pkg/rng"

// addNoiseRGBA perturbs each pixel's RGB channels by a value in [-amp, amp],
// leaving alpha alone. This is the textured-paper pass; it runs on the raw
// buffer so the cost stays one read and one write per frame.
func addNoiseRGBA(buf []byte, amp int, rnd *rng.Stream) {
	if amp <= 0 {
		return
	}
	span := 2*amp + 1
	for base := 0; base+3 < len(buf); base += 4 {
		n := rnd.IntN(span) - amp
		buf[base+0] = clampByte(int(buf[base+0]) + n)
		buf[base+1] = clampByte(int(buf[base+1]) + n)
		buf[base+2] = clampByte(int(buf[base+2]) + n)
	}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
