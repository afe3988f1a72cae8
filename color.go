package avada

import "fmt"

// Color is a terminal color. The zero value represents the default foreground
// or background color of the terminal
type Color uint64

const (
	system Color = 1 << 32
	rgb    Color = 1 << 33
)

// ColorKind identifies which variant a Color holds
type ColorKind int

const (
	// KindDefault is the terminal's default foreground or background
	KindDefault ColorKind = iota
	// KindSystem is one of the 8 indexed system colors
	KindSystem
	// KindRGB is a truecolor value with an alpha channel
	KindRGB
)

const (
	Default Color = 0

	Black   = system | 0
	Red     = system | 1
	Green   = system | 2
	Yellow  = system | 3
	Blue    = system | 4
	Magenta = system | 5
	Cyan    = system | 6
	White   = system | 7

	// Transparent blends to whatever is beneath it
	Transparent = rgb
)

// Kind reports the variant held by c
func (c Color) Kind() ColorKind {
	switch {
	case c&rgb != 0:
		return KindRGB
	case c&system != 0:
		return KindSystem
	default:
		return KindDefault
	}
}

// RGBA returns the channels of an RGB color. The result is meaningless for
// other kinds
func (c Color) RGBA() (r uint8, g uint8, b uint8, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Index returns the system color index (0-7). The result is meaningless for
// other kinds
func (c Color) Index() uint8 {
	return uint8(c & 0x07)
}

func (c Color) String() string {
	switch c.Kind() {
	case KindDefault:
		return "default"
	case KindSystem:
		return fmt.Sprintf("system(%d)", c.Index())
	case KindRGB:
		r, g, b, a := c.RGBA()
		return fmt.Sprintf("rgba(%d,%d,%d,%d)", r, g, b, a)
	default:
		panic("avada: unknown color kind")
	}
}

// RGBColor returns an opaque truecolor
func RGBColor(r uint8, g uint8, b uint8) Color {
	return RGBAColor(r, g, b, 255)
}

// RGBAColor returns a truecolor with an alpha channel. Colors with an alpha
// less than 255 are composited onto the background when rendered
func RGBAColor(r uint8, g uint8, b uint8, a uint8) Color {
	color := Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
	return color | rgb
}

// HexColor creates an opaque RGB color from a hex value, ie 0xRRGGBB
func HexColor(v uint32) Color {
	return RGBColor(uint8(v>>16), uint8(v>>8), uint8(v))
}

// SystemColor returns one of the 8 indexed terminal colors. Index must be
// less than 8
func SystemColor(index uint8) Color {
	if index > 7 {
		panic(fmt.Sprintf("avada: system color index out of range: %d", index))
	}
	return system | Color(index)
}

// Blend composites src over dst. System and default colors are opaque and
// always win as a source. An RGB source is only partially blended onto an RGB
// destination; over an indexed destination it either vanishes (alpha 0) or
// replaces it
func Blend(src Color, dst Color) Color {
	switch src.Kind() {
	case KindDefault, KindSystem:
		return src
	case KindRGB:
	}
	sr, sg, sb, sa := src.RGBA()
	switch sa {
	case 0:
		return dst
	case 255:
		return src
	}
	switch dst.Kind() {
	case KindDefault, KindSystem:
		return src
	case KindRGB:
	}
	dr, dg, db, da := dst.RGBA()
	a := int(sa) + int(da)*(255-int(sa))/255
	return RGBAColor(
		blendChannel(sr, dr, sa, da, a),
		blendChannel(sg, dg, sa, da, a),
		blendChannel(sb, db, sa, da, a),
		clamp255(a),
	)
}

func blendChannel(src uint8, dst uint8, srcA uint8, dstA uint8, outA int) uint8 {
	s, d, sa, da := int(src), int(dst), int(srcA), int(dstA)
	return clamp255((s*sa + d*da*(255-sa)/255) / outA)
}

func clamp255(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}

// nearestSystem maps an RGB color to the closest of the 8 system colors. Used
// when the terminal can't display truecolor
func nearestSystem(c Color) Color {
	r, g, b, _ := c.RGBA()
	// Each channel is either on or off in the basic palette
	var idx uint8
	if r >= 128 {
		idx |= 1
	}
	if g >= 128 {
		idx |= 2
	}
	if b >= 128 {
		idx |= 4
	}
	return SystemColor(idx)
}
