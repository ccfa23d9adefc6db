package gridpaper

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// SaveResult describes a grid file that was written to disk.
type SaveResult struct {
	Path     string  `json:"path"`
	Format   Format  `json:"format"`
	MimeType string  `json:"mime_type"`
	Width    int     `json:"width"`  // Pixels
	Height   int     `json:"height"` // Pixels
	DPI      float64 `json:"dpi"`
	Cols     int     `json:"cols"`
	Rows     int     `json:"rows"`
}

// Save validates opts and writes the grid with SaveSpec.
func Save(opts Options, dir string) (*SaveResult, error) {
	spec, err := opts.Resolve()
	if err != nil {
		return nil, err
	}
	return SaveSpec(spec, dir)
}

// SaveSpec draws a resolved grid and writes it to spec.Filename, or to
// DefaultFilename when no filename is given. The path is resolved with
// OutputPath, so a non-empty dir confines the output to that directory.
func SaveSpec(spec *GridSpec, dir string) (*SaveResult, error) {
	name := spec.Filename
	if name == "" {
		name = DefaultFilename(spec.Cols, spec.Rows, spec.Format)
	}
	path, err := OutputPath(dir, name)
	if err != nil {
		return nil, err
	}
	if err := WriteFile(path, spec); err != nil {
		return nil, err
	}

	return &SaveResult{
		Path:     path,
		Format:   spec.Format,
		MimeType: spec.Format.MimeType(),
		Width:    spec.Width(),
		Height:   spec.Height(),
		DPI:      spec.DPI,
		Cols:     spec.Cols,
		Rows:     spec.Rows,
	}, nil
}

// OutputPath resolves name against dir. An empty dir means the working
// directory and accepts any path. Otherwise relative names are joined to
// dir, and the result, relative or absolute, must lie inside dir.
func OutputPath(dir, name string) (string, error) {
	if dir == "" {
		return name, nil
	}
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", valueErr("filename", name, "must stay inside the output directory")
	}
	return path, nil
}

// WriteFile writes a resolved grid to path in spec.Format.
func WriteFile(path string, spec *GridSpec) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	switch spec.Format {
	case PDF:
		return WritePDF(path, spec)
	default:
		if err := imgio.Save(path, Rasterize(spec), PNGEncoder(spec.DPI)); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		return nil
	}
}

// Encode writes a resolved grid to w in spec.Format. img is used for PNG
// output when non-nil, avoiding a second rasterization.
func Encode(w io.Writer, spec *GridSpec, img image.Image) error {
	if spec.Format == PDF {
		return EncodePDF(w, spec)
	}
	if img == nil {
		img = Rasterize(spec)
	}
	return EncodePNG(w, img, spec.DPI)
}

// GridResult carries an in-memory grid encoded as base64.
type GridResult struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	DPI         float64 `json:"dpi"`
	Transparent bool    `json:"transparent"`
	ImageBase64 string  `json:"image_base64"`
	MimeType    string  `json:"mime_type"`
}

// EncodeBase64 renders spec and returns it base64-encoded in spec.Format.
func EncodeBase64(spec *GridSpec) (*GridResult, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, spec, nil); err != nil {
		return nil, err
	}
	return &GridResult{
		Width:       spec.Width(),
		Height:      spec.Height(),
		DPI:         spec.DPI,
		Transparent: spec.Transparent,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    spec.Format.MimeType(),
	}, nil
}
