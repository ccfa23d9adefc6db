// Package gridpaper renders printable graph paper as PNG or PDF.
//
// A grid is described by Options: column and row counts, the cell size in
// inches, centimetres or pixels, the resolution, line thickness, style and
// color, and a background color. Options.Resolve validates everything up
// front and produces a GridSpec in pixels; nothing is drawn from invalid
// input.
//
// # Geometry
//
// Every cell draws its own left and top border. A grid of C x R cells of
// W x H pixels with lines T pixels thick is therefore C*W+T pixels wide and
// R*H+T pixels tall: the extra T holds the right and bottom borders, which
// belong to a virtual column and row past the last cell. Coordinates follow
// image conventions, with (0,0) at the top-left corner.
//
// # Resolution
//
// For inch and centimetre grids the resolution is dots per unit, so a 1 cm
// cell at resolution 40 is 40 pixels wide. Output files record the density
// in dots per inch: the resolution itself for inches and pixels, and
// resolution*2.54 for centimetres. PNG files carry it in a pHYs chunk; PDF
// pages are sized so that the grid prints at the same physical size.
//
// # Errors
//
// Rejected arguments are reported as *TypeError (a value of the wrong kind,
// such as a string count decoded from JSON) or *ValueError (a disallowed
// value such as a zero size, an unknown color or a blank filename). Both
// name the offending parameter and match ErrInvalidArgument.
//
// # Line styles and major grids
//
// Dotted, dashed and double styles and the major (secondary) grid settings
// are validated and resolved, with unset major settings inheriting the
// primary ones, but every line is currently drawn solid and the major grid
// is not drawn.
package gridpaper
