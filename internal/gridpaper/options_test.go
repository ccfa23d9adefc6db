package gridpaper

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func intPtr(v int) *int { return &v }

func strPtr(s string) *string { return &s }

func colorPtr(c ColorSpec) *ColorSpec { return &c }

func pixelOptions(cols, rows, size int) Options {
	opts := NewOptions()
	opts.Cols = cols
	opts.Rows = rows
	opts.CellWidth = size
	opts.CellHeight = size
	opts.Unit = "px"
	return opts
}

func TestResolve_Defaults(t *testing.T) {
	spec, err := NewOptions().Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := &GridSpec{
		Cols:        20,
		Rows:        80,
		CellWidth:   72,
		CellHeight:  72,
		Thickness:   1,
		LineColor:   color.NRGBA{0, 0, 0, 255},
		Transparent: true,
		Style:       Solid,
		Unit:        Inch,
		Resolution:  72,
		DPI:         72,
		Major: MajorGrid{
			Style:     Solid,
			Thickness: 1,
			Color:     color.NRGBA{0, 0, 0, 255},
		},
		Format: PNG,
	}
	if diff := cmp.Diff(want, spec); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_CanvasSize(t *testing.T) {
	tests := []struct {
		name       string
		opts       func() Options
		wantWidth  int
		wantHeight int
	}{
		{
			"10x10 px cells of 40",
			func() Options { return pixelOptions(10, 10, 40) },
			401, 401,
		},
		{
			"thick lines",
			func() Options {
				o := pixelOptions(3, 2, 20)
				o.Thickness = 5
				return o
			},
			65, 45,
		},
		{
			"inch cells",
			func() Options {
				o := NewOptions()
				o.Cols, o.Rows, o.Resolution = 2, 3, 100
				return o
			},
			201, 301,
		},
		{
			"centimetre cells",
			func() Options {
				o := NewOptions()
				o.Cols, o.Rows, o.Unit, o.Resolution = 4, 4, "cm", 10
				o.CellWidth = 2
				return o
			},
			81, 41,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := tt.opts().Resolve()
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if spec.Width() != tt.wantWidth || spec.Height() != tt.wantHeight {
				t.Errorf("canvas: got %dx%d, want %dx%d", spec.Width(), spec.Height(), tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestResolve_DPI(t *testing.T) {
	tests := []struct {
		unit string
		res  int
		want float64
	}{
		{"in", 300, 300},
		{"inch", 72, 72},
		{"cm", 100, 254},
		{"centimeter", 72, 72 * 2.54},
		{"px", 96, 96},
	}

	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			opts := NewOptions()
			opts.Unit = tt.unit
			opts.Resolution = tt.res
			opts.Cols, opts.Rows = 2, 2
			spec, err := opts.Resolve()
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if math.Abs(spec.DPI-tt.want) > 1e-9 {
				t.Errorf("DPI: got %v, want %v", spec.DPI, tt.want)
			}
		})
	}
}

func TestResolve_NonPositiveIntegers(t *testing.T) {
	tests := []struct {
		param string
		set   func(o *Options)
	}{
		{"cols", func(o *Options) { o.Cols = 0 }},
		{"rows", func(o *Options) { o.Rows = -3 }},
		{"width", func(o *Options) { o.CellWidth = 0 }},
		{"height", func(o *Options) { o.CellHeight = -1 }},
		{"resolution", func(o *Options) { o.Resolution = 0 }},
		{"thickness", func(o *Options) { o.Thickness = 0 }},
		{"majorThickness", func(o *Options) { o.MajorThickness = intPtr(0) }},
		{"majorInterval", func(o *Options) { o.MajorInterval = intPtr(0) }},
		{"majorHorizontalInterval", func(o *Options) { o.MajorHorizontalInterval = intPtr(-2) }},
		{"majorVerticalInterval", func(o *Options) { o.MajorVerticalInterval = intPtr(0) }},
	}

	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			opts := pixelOptions(4, 4, 10)
			tt.set(&opts)

			_, err := opts.Resolve()
			var ve *ValueError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValueError, got %T (%v)", err, err)
			}
			if ve.Param != tt.param {
				t.Errorf("Param: got %s, want %s", ve.Param, tt.param)
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Error("error does not match ErrInvalidArgument")
			}
		})
	}
}

func TestResolve_BlankFilename(t *testing.T) {
	for _, name := range []string{"", "   "} {
		opts := pixelOptions(2, 2, 10)
		opts.Filename = strPtr(name)

		_, err := opts.Resolve()
		var ve *ValueError
		if !errors.As(err, &ve) || ve.Param != "filename" {
			t.Fatalf("filename %q: expected filename ValueError, got %v", name, err)
		}
		if got := err.Error(); got != "filename arg cannot be blank" {
			t.Errorf("message: got %q", got)
		}
	}
}

func TestResolve_UnknownEnums(t *testing.T) {
	tests := []struct {
		param string
		set   func(o *Options)
	}{
		{"unit", func(o *Options) { o.Unit = "furlong" }},
		{"style", func(o *Options) { o.Style = "wavy" }},
		{"majorStyle", func(o *Options) { o.MajorStyle = strPtr("zigzag") }},
		{"format", func(o *Options) { o.Format = "gif" }},
		{"color", func(o *Options) { o.Color = Named("notacolor") }},
		{"background", func(o *Options) { o.Background = Named("#12") }},
		{"majorColor", func(o *Options) { o.MajorColor = colorPtr(RGB(0, 300, 0)) }},
		{"color", func(o *Options) { o.Color = NoColor }},
	}

	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			opts := pixelOptions(2, 2, 10)
			tt.set(&opts)

			_, err := opts.Resolve()
			var ve *ValueError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValueError, got %T (%v)", err, err)
			}
			if ve.Param != tt.param {
				t.Errorf("Param: got %s, want %s", ve.Param, tt.param)
			}
		})
	}
}

func TestResolve_CaseInsensitiveEnums(t *testing.T) {
	opts := pixelOptions(2, 2, 10)
	opts.Unit = "PX"
	opts.Style = "Dashed"
	opts.Format = ".PDF"

	spec, err := opts.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if spec.Unit != Pixel || spec.Style != Dashed || spec.Format != PDF {
		t.Errorf("got unit=%s style=%s format=%s", spec.Unit, spec.Style, spec.Format)
	}
}

func TestResolve_MajorInheritance(t *testing.T) {
	opts := pixelOptions(10, 10, 10)
	opts.Color = RGB(10, 20, 30)
	opts.Style = "dotted"
	opts.Thickness = 2

	spec, err := opts.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := MajorGrid{
		Style:     Dotted,
		Thickness: 2,
		Color:     color.NRGBA{10, 20, 30, 255},
	}
	if diff := cmp.Diff(want, spec.Major); diff != "" {
		t.Errorf("inherited major grid mismatch (-want +got):\n%s", diff)
	}
	if spec.Major.Enabled() {
		t.Error("major grid should be disabled without an interval")
	}
}

func TestResolve_MajorOverrides(t *testing.T) {
	opts := pixelOptions(10, 10, 10)
	opts.MajorInterval = intPtr(5)
	opts.MajorVerticalInterval = intPtr(2)
	opts.MajorStyle = strPtr("double")
	opts.MajorThickness = intPtr(3)
	opts.MajorColor = colorPtr(Named("red"))

	spec, err := opts.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := MajorGrid{
		HorizontalInterval: 5,
		VerticalInterval:   2,
		Style:              Double,
		Thickness:          3,
		Color:              color.NRGBA{255, 0, 0, 255},
	}
	if diff := cmp.Diff(want, spec.Major); diff != "" {
		t.Errorf("major grid mismatch (-want +got):\n%s", diff)
	}
	if spec.Thickness != 1 {
		t.Errorf("primary thickness changed: got %d", spec.Thickness)
	}
}

func TestResolve_Format(t *testing.T) {
	tests := []struct {
		name     string
		filename *string
		format   string
		want     Format
		wantErr  string
	}{
		{"default", nil, "", PNG, ""},
		{"explicit pdf", nil, "pdf", PDF, ""},
		{"from extension", strPtr("out/grid.PDF"), "", PDF, ""},
		{"matching", strPtr("grid.png"), "png", PNG, ""},
		{"no extension", strPtr("grid"), "pdf", PDF, ""},
		{"mismatch", strPtr("grid.png"), "pdf", "", "format"},
		{"bad extension", strPtr("grid.jpg"), "", "", "filename"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := pixelOptions(2, 2, 10)
			opts.Filename = tt.filename
			opts.Format = tt.format

			spec, err := opts.Resolve()
			if tt.wantErr != "" {
				var ve *ValueError
				if !errors.As(err, &ve) || ve.Param != tt.wantErr {
					t.Fatalf("expected %s ValueError, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if spec.Format != tt.want {
				t.Errorf("Format: got %s, want %s", spec.Format, tt.want)
			}
		})
	}
}

func TestResolve_CanvasTooLarge(t *testing.T) {
	opts := NewOptions()
	opts.Cols, opts.Rows = 1000, 1000
	opts.CellWidth, opts.CellHeight = 10, 10
	opts.Resolution = 600

	_, err := opts.Resolve()
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for oversized canvas, got %v", err)
	}

	opts.Cols = math.MaxInt / 2
	if _, err := opts.Resolve(); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for overflowing canvas, got %v", err)
	}
}

func TestDefaultFilename(t *testing.T) {
	if got := DefaultFilename(10, 12, PDF); got != "grid_10x12.pdf" {
		t.Errorf("DefaultFilename: got %s", got)
	}
}
