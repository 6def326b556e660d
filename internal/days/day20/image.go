package day20

import "strings"

// image is a square bitmap. Tiles, the assembled picture, and the sea
// monster search all operate on it.
type image struct {
	size int
	bits []bool
}

func newImage(size int) image {
	return image{size: size, bits: make([]bool, size*size)}
}

func parseImage(lines []string) (image, bool) {
	size := len(lines)
	im := newImage(size)
	for y, line := range lines {
		if len(line) != size {
			return image{}, false
		}
		for x := 0; x < size; x++ {
			switch line[x] {
			case '#':
				im.set(x, y, true)
			case '.':
			default:
				return image{}, false
			}
		}
	}
	return im, true
}

func (im image) at(x, y int) bool {
	return im.bits[y*im.size+x]
}

func (im image) set(x, y int, v bool) {
	im.bits[y*im.size+x] = v
}

func (im image) String() string {
	var b strings.Builder
	for y := 0; y < im.size; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < im.size; x++ {
			if im.at(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

func (im image) popCount() int {
	n := 0
	for _, b := range im.bits {
		if b {
			n++
		}
	}
	return n
}

// rotate returns the image turned 90 degrees clockwise.
func (im image) rotate() image {
	out := newImage(im.size)
	for y := 0; y < im.size; y++ {
		for x := 0; x < im.size; x++ {
			out.set(x, y, im.at(y, im.size-1-x))
		}
	}
	return out
}

// flip returns the image mirrored horizontally.
func (im image) flip() image {
	out := newImage(im.size)
	for y := 0; y < im.size; y++ {
		for x := 0; x < im.size; x++ {
			out.set(x, y, im.at(im.size-1-x, y))
		}
	}
	return out
}

// orientations returns the eight rotations and reflections.
func (im image) orientations() []image {
	out := make([]image, 0, 8)
	for _, start := range []image{im, im.flip()} {
		o := start
		for i := 0; i < 4; i++ {
			out = append(out, o)
			o = o.rotate()
		}
	}
	return out
}

// Edge values read top-to-bottom or left-to-right, first pixel in the
// high bit.

func (im image) edgeTop() uint {
	var v uint
	for x := 0; x < im.size; x++ {
		v <<= 1
		if im.at(x, 0) {
			v |= 1
		}
	}
	return v
}

func (im image) edgeBottom() uint {
	var v uint
	for x := 0; x < im.size; x++ {
		v <<= 1
		if im.at(x, im.size-1) {
			v |= 1
		}
	}
	return v
}

func (im image) edgeLeft() uint {
	var v uint
	for y := 0; y < im.size; y++ {
		v <<= 1
		if im.at(0, y) {
			v |= 1
		}
	}
	return v
}

func (im image) edgeRight() uint {
	var v uint
	for y := 0; y < im.size; y++ {
		v <<= 1
		if im.at(im.size-1, y) {
			v |= 1
		}
	}
	return v
}

func reverseBits(v uint, width int) uint {
	var out uint
	for i := 0; i < width; i++ {
		out = out<<1 | v&1
		v >>= 1
	}
	return out
}

// canonical folds an edge value together with its reverse so that an
// edge matches regardless of reading direction.
func canonical(v uint, width int) uint {
	if r := reverseBits(v, width); r < v {
		return r
	}
	return v
}
