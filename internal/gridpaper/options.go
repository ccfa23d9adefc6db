package gridpaper

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"
)

// MaxCanvasPixels bounds the canvas area so that a typo such as 10000 rows
// of 10-inch cells fails validation instead of exhausting memory.
const MaxCanvasPixels = 1 << 28

// Options is the caller-facing grid configuration. Start from NewOptions
// and override fields; the zero value is not valid because its counts and
// sizes are zero.
//
// Pointer fields are optional. A nil Major* field inherits the matching
// primary value when the options are resolved.
type Options struct {
	// Filename is the output path. nil means no file; a blank string is
	// rejected.
	Filename *string

	// Format is "png" or "pdf". Empty infers it from the Filename
	// extension, falling back to png.
	Format string

	Cols       int
	Rows       int
	CellWidth  int // In Unit
	CellHeight int // In Unit
	Unit       string
	Resolution int // Dots per Unit, or DPI for pixel grids

	// Background may be NoColor (or "none") for a transparent canvas.
	// Leaving it unset also gives a transparent canvas.
	Background ColorSpec
	Style      string
	Thickness  int
	Color      ColorSpec

	// MajorInterval sets both major intervals; the directional fields
	// override it.
	MajorInterval           *int
	MajorHorizontalInterval *int
	MajorVerticalInterval   *int
	MajorStyle              *string
	MajorThickness          *int
	MajorColor              *ColorSpec
}

// NewOptions returns the default configuration: a 20x80 grid of one-inch
// cells at 72 dpi, solid 1px black lines on a transparent background.
func NewOptions() Options {
	return Options{
		Cols:       20,
		Rows:       80,
		CellWidth:  1,
		CellHeight: 1,
		Unit:       string(Inch),
		Resolution: 72,
		Style:      string(Solid),
		Thickness:  1,
		Color:      Named("black"),
	}
}

// MajorGrid is the resolved secondary grid configuration. An interval of 0
// means no major lines in that direction.
type MajorGrid struct {
	HorizontalInterval int
	VerticalInterval   int
	Style              LineStyle
	Thickness          int
	Color              color.NRGBA
}

// Enabled reports whether any major interval was configured.
func (m MajorGrid) Enabled() bool {
	return m.HorizontalInterval > 0 || m.VerticalInterval > 0
}

// GridSpec is a fully validated grid with sizes converted to pixels.
type GridSpec struct {
	Cols        int
	Rows        int
	CellWidth   int // Pixels
	CellHeight  int // Pixels
	Thickness   int // Pixels
	LineColor   color.NRGBA
	Background  color.NRGBA
	Transparent bool
	Style       LineStyle
	Unit        Unit
	Resolution  int
	DPI         float64
	Major       MajorGrid

	// Filename is empty when no output file was requested.
	Filename string
	Format   Format
}

// Width returns the canvas width in pixels.
func (s *GridSpec) Width() int {
	return s.Cols*s.CellWidth + s.Thickness
}

// Height returns the canvas height in pixels.
func (s *GridSpec) Height() int {
	return s.Rows*s.CellHeight + s.Thickness
}

// Resolve validates every option and returns the resolved grid. Validation
// is complete before anything is drawn; the first invalid argument is
// reported as a *TypeError or *ValueError.
func (o Options) Resolve() (*GridSpec, error) {
	spec := &GridSpec{}

	if o.Filename != nil {
		if strings.TrimSpace(*o.Filename) == "" {
			return nil, valueErr("filename", nil, "cannot be blank")
		}
		spec.Filename = *o.Filename
	}

	majorThickness := o.Thickness
	if o.MajorThickness != nil {
		majorThickness = *o.MajorThickness
	}
	for _, p := range []struct {
		name string
		v    int
	}{
		{"cols", o.Cols},
		{"rows", o.Rows},
		{"width", o.CellWidth},
		{"height", o.CellHeight},
		{"resolution", o.Resolution},
		{"thickness", o.Thickness},
		{"majorThickness", majorThickness},
	} {
		if p.v < 1 {
			return nil, valueErr(p.name, p.v, "must be a positive, nonzero integer")
		}
	}

	unit, err := ParseUnit(o.Unit)
	if err != nil {
		return nil, err
	}
	spec.Unit = unit
	spec.Resolution = o.Resolution
	spec.DPI = unit.DPI(o.Resolution)

	if err := o.resolveColors(spec); err != nil {
		return nil, err
	}

	majorStyle := o.Style
	if o.MajorStyle != nil {
		majorStyle = *o.MajorStyle
	}
	if spec.Style, err = ParseLineStyle("style", o.Style); err != nil {
		return nil, err
	}
	if spec.Major.Style, err = ParseLineStyle("majorStyle", majorStyle); err != nil {
		return nil, err
	}

	if err := o.resolveIntervals(&spec.Major); err != nil {
		return nil, err
	}

	if spec.Format, err = o.resolveFormat(); err != nil {
		return nil, err
	}

	if !canvasFits(unit, o) {
		return nil, valueErr("cols", fmt.Sprintf("%d cols x %d rows", o.Cols, o.Rows),
			fmt.Sprintf("with the given cell size must fit in %d pixels", MaxCanvasPixels))
	}

	spec.Cols = o.Cols
	spec.Rows = o.Rows
	spec.CellWidth = unit.CellPixels(o.CellWidth, o.Resolution)
	spec.CellHeight = unit.CellPixels(o.CellHeight, o.Resolution)
	spec.Thickness = o.Thickness
	spec.Major.Thickness = majorThickness

	return spec, nil
}

// canvasFits reports whether the canvas stays within MaxCanvasPixels. Every
// product is checked by division first so oversized inputs cannot overflow.
func canvasFits(unit Unit, o Options) bool {
	fits := func(a, b int) bool { return a <= MaxCanvasPixels/b }

	cw, ch := o.CellWidth, o.CellHeight
	if unit != Pixel {
		if !fits(cw, o.Resolution) || !fits(ch, o.Resolution) {
			return false
		}
		cw, ch = cw*o.Resolution, ch*o.Resolution
	}
	if !fits(o.Cols, cw) || !fits(o.Rows, ch) || o.Thickness > MaxCanvasPixels {
		return false
	}
	w := o.Cols*cw + o.Thickness
	h := o.Rows*ch + o.Thickness
	return fits(w, h)
}

func (o Options) resolveColors(spec *GridSpec) error {
	switch {
	case !o.Background.IsSet(), o.Background.IsNone():
		spec.Transparent = true
	default:
		bg, err := o.Background.Resolve("background")
		if err != nil {
			return err
		}
		spec.Background = bg
		spec.Transparent = bg.A == 0
	}

	lineSpec := o.Color
	if !lineSpec.IsSet() {
		lineSpec = Named("black")
	}
	if lineSpec.IsNone() {
		return valueErr("color", lineSpec.String(), "cannot be none")
	}
	line, err := lineSpec.Resolve("color")
	if err != nil {
		return err
	}
	spec.LineColor = line

	majorSpec := lineSpec
	if o.MajorColor != nil && o.MajorColor.IsSet() {
		majorSpec = *o.MajorColor
	}
	if majorSpec.IsNone() {
		return valueErr("majorColor", majorSpec.String(), "cannot be none")
	}
	major, err := majorSpec.Resolve("majorColor")
	if err != nil {
		return err
	}
	spec.Major.Color = major
	return nil
}

func (o Options) resolveIntervals(m *MajorGrid) error {
	if o.MajorInterval != nil {
		if *o.MajorInterval < 1 {
			return valueErr("majorInterval", *o.MajorInterval, "must be a positive, nonzero integer")
		}
		m.HorizontalInterval = *o.MajorInterval
		m.VerticalInterval = *o.MajorInterval
	}
	if o.MajorHorizontalInterval != nil {
		if *o.MajorHorizontalInterval < 1 {
			return valueErr("majorHorizontalInterval", *o.MajorHorizontalInterval, "must be a positive, nonzero integer")
		}
		m.HorizontalInterval = *o.MajorHorizontalInterval
	}
	if o.MajorVerticalInterval != nil {
		if *o.MajorVerticalInterval < 1 {
			return valueErr("majorVerticalInterval", *o.MajorVerticalInterval, "must be a positive, nonzero integer")
		}
		m.VerticalInterval = *o.MajorVerticalInterval
	}
	return nil
}

// resolveFormat reconciles the explicit format with the filename extension.
func (o Options) resolveFormat() (Format, error) {
	var fromExt Format
	if o.Filename != nil {
		if ext := filepath.Ext(*o.Filename); ext != "" {
			f, err := ParseFormat(ext)
			if err != nil {
				return "", valueErr("filename", *o.Filename, "must end in .png or .pdf")
			}
			fromExt = f
		}
	}

	if o.Format == "" {
		if fromExt != "" {
			return fromExt, nil
		}
		return PNG, nil
	}

	f, err := ParseFormat(o.Format)
	if err != nil {
		return "", err
	}
	if fromExt != "" && fromExt != f {
		return "", valueErr("format", o.Format, fmt.Sprintf("does not match the filename extension %q", filepath.Ext(*o.Filename)))
	}
	return f, nil
}

// DefaultFilename returns the name used when a file is written without an
// explicit filename, e.g. "grid_10x10.png".
func DefaultFilename(cols, rows int, f Format) string {
	return fmt.Sprintf("grid_%dx%d.%s", cols, rows, f)
}
