package gridpaper

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

// pointsPerInch is the PDF user-space unit.
const pointsPerInch = 72.0

// WritePDF writes spec as a single vector page to the named file. The page
// is sized so that one grid pixel is 1/DPI inch, matching the PNG output
// when printed.
func WritePDF(fileName string, spec *GridSpec) error {
	page, err := document.CreateSinglePage(fileName, pdfPageSize(spec), pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("create %s: %w", fileName, err)
	}
	return drawPDF(page, spec)
}

// EncodePDF writes spec as a single vector page to w.
func EncodePDF(w io.Writer, spec *GridSpec) error {
	page, err := document.WriteSinglePage(w, pdfPageSize(spec), pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("failed to start PDF: %w", err)
	}
	return drawPDF(page, spec)
}

func pdfPageSize(spec *GridSpec) *pdf.Rectangle {
	scale := pointsPerInch / spec.DPI
	return &pdf.Rectangle{
		URx: float64(spec.Width()) * scale,
		URy: float64(spec.Height()) * scale,
	}
}

func drawPDF(page *document.Page, spec *GridSpec) error {
	scale := pointsPerInch / spec.DPI
	height := float64(spec.Height())

	// PDF user space grows upwards, so rows are flipped.
	pathRect := func(r image.Rectangle) {
		page.Rectangle(
			float64(r.Min.X)*scale,
			(height-float64(r.Max.Y))*scale,
			float64(r.Dx())*scale,
			float64(r.Dy())*scale)
	}

	if !spec.Transparent {
		page.SetFillColor(deviceRGB(spec.Background))
		pathRect(image.Rect(0, 0, spec.Width(), spec.Height()))
		page.Fill()
	}

	// Whole strips keep the content stream proportional to cols+rows
	// rather than to the number of cells.
	bounds := image.Rect(0, 0, spec.Width(), spec.Height())
	page.SetFillColor(deviceRGB(spec.LineColor))
	lineStrips(spec, func(r image.Rectangle) {
		pathRect(r.Intersect(bounds))
	})
	page.Fill()

	if err := page.Close(); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// deviceRGB converts c to the PDF DeviceRGB space. Alpha is dropped.
func deviceRGB(c color.NRGBA) pdfcolor.Color {
	return pdfcolor.DeviceRGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}
