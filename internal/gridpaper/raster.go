package gridpaper

import (
	"image"
	"image/color"
	"log"

	"github.com/disintegration/imaging"
)

// ForEachLine calls fn with every line rectangle of spec in canvas pixel
// coordinates, without collecting them.
//
// Each cell contributes its left border (Thickness wide, one cell high) and
// its top border (one cell wide, Thickness high). The right and bottom edges
// of the grid are the left and top borders of a virtual extra column and row,
// which is why the canvas is Thickness wider and taller than the cells. The
// last rectangle closes the bottom-right corner. Rectangles may extend past
// the canvas when Thickness exceeds a cell.
func ForEachLine(spec *GridSpec, fn func(image.Rectangle)) {
	t, cw, ch := spec.Thickness, spec.CellWidth, spec.CellHeight

	for col := 0; col <= spec.Cols; col++ {
		for row := 0; row <= spec.Rows; row++ {
			x, y := col*cw, row*ch
			if row < spec.Rows {
				fn(image.Rect(x, y, x+t, y+ch))
			}
			if col < spec.Cols {
				fn(image.Rect(x, y, x+cw, y+t))
			}
		}
	}

	w, h := spec.Width(), spec.Height()
	fn(image.Rect(w-t, h-t, w, h))
}

// lineStrips calls fn with one full-height rectangle per column boundary and
// one full-width rectangle per row boundary. Their union is the same area
// ForEachLine covers, in Cols+Rows+2 rectangles instead of one or two per
// cell.
func lineStrips(spec *GridSpec, fn func(image.Rectangle)) {
	t, w, h := spec.Thickness, spec.Width(), spec.Height()
	for col := 0; col <= spec.Cols; col++ {
		x := col * spec.CellWidth
		fn(image.Rect(x, 0, x+t, h))
	}
	for row := 0; row <= spec.Rows; row++ {
		y := row * spec.CellHeight
		fn(image.Rect(0, y, w, y+t))
	}
}

// Rasterize draws spec onto a new canvas of spec.Width() x spec.Height()
// pixels. Rectangles are clipped to the canvas, so lines thicker than a cell
// simply merge. Apart from the canvas itself nothing is allocated per line.
func Rasterize(spec *GridSpec) *image.NRGBA {
	canvas := imaging.New(spec.Width(), spec.Height(), spec.Background)

	if spec.Style != Solid {
		log.Printf("gridpaper: %s lines are drawn solid", spec.Style)
	}
	if spec.Major.Enabled() {
		log.Printf("gridpaper: major grid every %dx%d cells is resolved but not drawn",
			spec.Major.VerticalInterval, spec.Major.HorizontalInterval)
	}

	ForEachLine(spec, func(r image.Rectangle) {
		fillRect(canvas, r, spec.LineColor)
	})
	return canvas
}

// fillRect sets every pixel of r, clipped to img, to c.
func fillRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	px := [4]uint8{c.R, c.G, c.B, c.A}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := img.Pix[img.PixOffset(r.Min.X, y):img.PixOffset(r.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			copy(row[i:i+4], px[:])
		}
	}
}

// Render validates opts and returns the grid as an in-memory image. The
// Filename option is validated but nothing is written; use Save for that.
func Render(opts Options) (*image.NRGBA, *GridSpec, error) {
	spec, err := opts.Resolve()
	if err != nil {
		return nil, nil, err
	}
	return Rasterize(spec), spec, nil
}
