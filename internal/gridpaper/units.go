package gridpaper

import (
	"math"
	"strings"
)

// CMPerInch is the number of centimetres in an inch.
const CMPerInch = 2.54

// Unit is the physical unit that cell sizes are given in.
type Unit string

const (
	Inch       Unit = "in"
	Centimeter Unit = "cm"
	Pixel      Unit = "px"
)

// ParseUnit accepts the short unit names and their spelled-out forms,
// case-insensitively.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in", "inch", "inches":
		return Inch, nil
	case "cm", "centimeter", "centimeters", "centimetre", "centimetres":
		return Centimeter, nil
	case "px", "pixel", "pixels":
		return Pixel, nil
	}
	return "", valueErr("unit", s, "must be either 'in', 'cm', or 'px'")
}

// CellPixels converts a cell size in u to pixels. For physical units the
// resolution is dots per unit; pixel sizes are used as-is.
func (u Unit) CellPixels(size, resolution int) int {
	if u == Pixel {
		return size
	}
	return size * resolution
}

// DPI returns the dots-per-inch written to output metadata for a resolution
// given in dots per u. Pixel grids carry the resolution unchanged.
func (u Unit) DPI(resolution int) float64 {
	if u == Centimeter {
		return float64(resolution) * CMPerInch
	}
	return float64(resolution)
}

// pixelsPerMeter converts a DPI to the integer density stored in a PNG pHYs
// chunk.
func pixelsPerMeter(dpi float64) uint32 {
	return uint32(math.Round(dpi * 100 / CMPerInch))
}

// LineStyle names how grid lines are drawn. Only Solid is rasterized;
// the other styles are accepted and drawn solid.
type LineStyle string

const (
	Solid  LineStyle = "solid"
	Dotted LineStyle = "dotted"
	Dashed LineStyle = "dashed"
	Double LineStyle = "double"
)

// ParseLineStyle validates a style name for the given parameter.
func ParseLineStyle(param, s string) (LineStyle, error) {
	switch LineStyle(strings.ToLower(strings.TrimSpace(s))) {
	case Solid:
		return Solid, nil
	case Dotted:
		return Dotted, nil
	case Dashed:
		return Dashed, nil
	case Double:
		return Double, nil
	}
	return "", valueErr(param, s, "must be 'dotted', 'solid', 'double', or 'dashed'")
}

// Format is an output file format.
type Format string

const (
	PNG Format = "png"
	PDF Format = "pdf"
)

// ParseFormat accepts "png" or "pdf", with or without a leading dot.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".") {
	case "png":
		return PNG, nil
	case "pdf":
		return PDF, nil
	}
	return "", valueErr("format", s, "must be either 'png' or 'pdf'")
}

// MimeType returns the media type of files in format f.
func (f Format) MimeType() string {
	if f == PDF {
		return "application/pdf"
	}
	return "image/png"
}
