package gridpaper

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

type colorKind int

const (
	colorUnset colorKind = iota
	colorString
	colorTriple
	colorNone
)

// ColorSpec is a color argument as the caller supplied it: either a string
// (a CSS color name, "#rgb", "#rrggbb", "#rrggbbaa" or "rgb(r, g, b)"), an
// explicit RGB channel triple, or the explicit absence of a color.
//
// The zero value means "not specified". Resolve normalizes any of the
// variants to a single color.NRGBA.
type ColorSpec struct {
	kind   colorKind
	name   string
	triple []int
}

// Named returns a ColorSpec for a color string such as "black" or "#336699".
func Named(s string) ColorSpec {
	return ColorSpec{kind: colorString, name: s}
}

// RGB returns a ColorSpec for an explicit channel triple. Channels are
// checked against [0,255] when the spec is resolved, not here.
func RGB(r, g, b int) ColorSpec {
	return ColorSpec{kind: colorTriple, triple: []int{r, g, b}}
}

// Channels returns a ColorSpec for a channel list of arbitrary length, as
// decoded from JSON. Anything other than three channels is rejected on
// Resolve.
func Channels(ch []int) ColorSpec {
	return ColorSpec{kind: colorTriple, triple: append([]int(nil), ch...)}
}

// NoColor is the explicit "none" color. It is only meaningful for the
// background, where it selects a transparent canvas.
var NoColor = ColorSpec{kind: colorNone}

// IsSet reports whether the spec carries any value, including NoColor.
func (c ColorSpec) IsSet() bool {
	return c.kind != colorUnset
}

// IsNone reports whether the spec selects no color at all, either via
// NoColor or a "none"/"transparent" string.
func (c ColorSpec) IsNone() bool {
	if c.kind == colorNone {
		return true
	}
	if c.kind == colorString {
		s := strings.ToLower(strings.TrimSpace(c.name))
		return s == "none" || s == "transparent"
	}
	return false
}

func (c ColorSpec) String() string {
	switch c.kind {
	case colorString:
		return c.name
	case colorTriple:
		parts := make([]string, len(c.triple))
		for i, v := range c.triple {
			parts[i] = strconv.Itoa(v)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case colorNone:
		return "none"
	default:
		return "unset"
	}
}

// Resolve validates the spec and converts it to a color. The param name is
// used in the returned error. A NoColor spec resolves to fully transparent
// black; callers that do not accept transparency must check IsNone first.
func (c ColorSpec) Resolve(param string) (color.NRGBA, error) {
	switch c.kind {
	case colorString:
		col, err := ParseColor(c.name)
		if err != nil {
			return color.NRGBA{}, valueErr(param, c.name, "is an unknown color")
		}
		return col, nil
	case colorTriple:
		if len(c.triple) != 3 {
			return color.NRGBA{}, valueErr(param, c.String(), "must have exactly 3 channels")
		}
		for _, v := range c.triple {
			if v < 0 || v > 255 {
				return color.NRGBA{}, valueErr(param, c.String(), "channels must be in the range 0-255")
			}
		}
		return color.NRGBA{R: uint8(c.triple[0]), G: uint8(c.triple[1]), B: uint8(c.triple[2]), A: 255}, nil
	case colorNone:
		return color.NRGBA{}, nil
	default:
		return color.NRGBA{}, valueErr(param, nil, "is not set")
	}
}

// ParseColor converts a color string to a color. Names are matched
// case-insensitively against the SVG 1.1 palette; "none" and "transparent"
// give a fully transparent color.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if s == "none" || s == "transparent" {
		return color.NRGBA{}, nil
	}

	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}, nil
	}

	switch {
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGBFunc(s)
	}
	return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
}

// parseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func parseHexColor(s string) (color.NRGBA, error) {
	if len(s) == 9 {
		val, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return color.NRGBA{R: uint8(val >> 24), G: uint8(val >> 16), B: uint8(val >> 8), A: uint8(val)}, nil
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// parseRGBFunc parses the CSS functional notation "rgb(r, g, b)".
func parseRGBFunc(s string) (color.NRGBA, error) {
	fields := strings.Split(strings.TrimSuffix(strings.TrimPrefix(s, "rgb("), ")"), ",")
	if len(fields) != 3 {
		return color.NRGBA{}, fmt.Errorf("invalid rgb() color %q", s)
	}
	var ch [3]uint8
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || v < 0 || v > 255 {
			return color.NRGBA{}, fmt.Errorf("invalid rgb() channel %q in %q", f, s)
		}
		ch[i] = uint8(v)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}, nil
}

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGBAColor represents an RGBA color with 8-bit components including alpha.
// An alpha of 0 is fully transparent.
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// HSLColor represents a color in HSL space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex  string    `json:"hex"` // "#rrggbb", alpha excluded
	RGB  RGBColor  `json:"rgb"`
	RGBA RGBAColor `json:"rgba"`
	HSL  HSLColor  `json:"hsl"`
}

// SampleColor returns the color at (x, y). Grid images are stored
// non-premultiplied, so the RGB channels of a transparent pixel are reported
// as stored rather than as zero.
//
// Returns an error if the coordinates are outside the image bounds.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	nc := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	cf := colorful.Color{R: float64(nc.R) / 255, G: float64(nc.G) / 255, B: float64(nc.B) / 255}
	h, s, l := cf.Hsl()
	if math.IsNaN(h) {
		h = 0
	}

	return &ColorResult{
		Hex:  cf.Hex(),
		RGB:  RGBColor{R: nc.R, G: nc.G, B: nc.B},
		RGBA: RGBAColor{R: nc.R, G: nc.G, B: nc.B, A: nc.A},
		HSL:  HSLColor{H: int(math.Round(h)) % 360, S: int(math.Round(s * 100)), L: int(math.Round(l * 100))},
	}, nil
}
