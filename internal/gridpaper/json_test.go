package gridpaper

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOptionsFromJSON(t *testing.T) {
	raw := json.RawMessage(`{
		"filename": "paper.pdf",
		"cols": 10, "rows": 12,
		"width": 5, "height": 5, "unit": "cm", "resolution": 40,
		"background": "none",
		"style": "dashed", "thickness": 2, "color": [0, 0, 255],
		"major_interval": 5, "major_color": "#ff0000",
		"major_thickness": null
	}`)

	opts, err := OptionsFromJSON(raw)
	if err != nil {
		t.Fatalf("OptionsFromJSON failed: %v", err)
	}

	if opts.Filename == nil || *opts.Filename != "paper.pdf" {
		t.Errorf("Filename: got %v", opts.Filename)
	}
	if opts.Cols != 10 || opts.Rows != 12 || opts.CellWidth != 5 || opts.Resolution != 40 {
		t.Errorf("ints: got cols=%d rows=%d width=%d resolution=%d", opts.Cols, opts.Rows, opts.CellWidth, opts.Resolution)
	}
	if !opts.Background.IsNone() {
		t.Errorf("Background: got %s, want none", opts.Background)
	}
	if opts.Color.String() != "(0, 0, 255)" {
		t.Errorf("Color: got %s", opts.Color)
	}
	if opts.MajorThickness != nil {
		t.Errorf("MajorThickness: null should leave it unset, got %d", *opts.MajorThickness)
	}

	spec, err := opts.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if spec.Format != PDF || !spec.Transparent || spec.Major.Thickness != 2 {
		t.Errorf("spec: format=%s transparent=%v majorThickness=%d", spec.Format, spec.Transparent, spec.Major.Thickness)
	}
}

func TestOptionsFromJSON_Empty(t *testing.T) {
	for _, raw := range []string{"", "{}"} {
		opts, err := OptionsFromJSON(json.RawMessage(raw))
		if err != nil {
			t.Fatalf("OptionsFromJSON(%q) failed: %v", raw, err)
		}
		if diff := cmp.Diff(NewOptions(), opts, cmp.AllowUnexported(ColorSpec{})); diff != "" {
			t.Errorf("OptionsFromJSON(%q) mismatch (-want +got):\n%s", raw, diff)
		}
	}
}

func TestOptionsFromJSON_TypeErrors(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		param string
	}{
		{"string count", `{"cols": "ten"}`, "cols"},
		{"quoted number", `{"rows": "10"}`, "rows"},
		{"fractional", `{"width": 1.5}`, "width"},
		{"float-valued int", `{"thickness": 2.0}`, "thickness"},
		{"bool", `{"resolution": true}`, "resolution"},
		{"number filename", `{"filename": 7}`, "filename"},
		{"number unit", `{"unit": 2}`, "unit"},
		{"object color", `{"color": {"r": 1}}`, "color"},
		{"number color", `{"background": 255}`, "background"},
		{"string channel", `{"major_color": [1, "2", 3]}`, "major_color[1]"},
		{"array style", `{"major_style": ["solid"]}`, "major_style"},
		{"not an object", `[1, 2]`, "arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OptionsFromJSON(json.RawMessage(tt.raw))
			var te *TypeError
			if !errors.As(err, &te) {
				t.Fatalf("expected *TypeError, got %T (%v)", err, err)
			}
			if te.Param != tt.param {
				t.Errorf("Param: got %s, want %s", te.Param, tt.param)
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Error("error does not match ErrInvalidArgument")
			}
		})
	}
}

func TestOptionsFromJSON_ValueErrors(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		param string
	}{
		{"unknown key", `{"colour": "red"}`, "colour"},
		{"huge int", `{"cols": 99999999999999999999999}`, "cols"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OptionsFromJSON(json.RawMessage(tt.raw))
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

func TestOptionsFromJSON_TypeErrorMessage(t *testing.T) {
	_, err := OptionsFromJSON(json.RawMessage(`{"cols": "ten"}`))
	if err == nil {
		t.Fatal("expected error")
	}
	if got, want := err.Error(), "cols arg must be an integer, not string"; got != want {
		t.Errorf("message: got %q, want %q", got, want)
	}
}
