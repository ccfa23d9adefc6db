package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/gridpaper-mcp/internal/gridpaper"
	"github.com/ironsheep/gridpaper-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("gridpaper-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		case "render":
			if err := runRender(os.Args[2:]); err != nil {
				if errors.Is(err, flag.ErrHelp) {
					return
				}
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				if errors.Is(err, gridpaper.ErrInvalidArgument) {
					os.Exit(2)
				}
				os.Exit(1)
			}
			return
		}
	}

	cfg := server.ConfigFromEnv(Version)
	if cfg.Debug {
		log.Printf("Grid paper MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printUsage() {
	fmt.Println("gridpaper-mcp - MCP server that generates printable graph paper")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  gridpaper-mcp                  Run the MCP server on stdin/stdout")
	fmt.Println("  gridpaper-mcp render [flags]   Write one grid to a file")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Run 'gridpaper-mcp render -h' for the render flags.")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Printf("  %s=debug    Enable debug logging\n", server.EnvLogLevel)
	fmt.Printf("  %s=<dir>   Directory for relative output paths\n", server.EnvOutputDir)
	fmt.Println()
	fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}

// runRender parses render flags into grid options and writes the file.
func runRender(args []string) error {
	fs := flag.NewFlagSet("gridpaper-mcp render", flag.ContinueOnError)

	opts := gridpaper.NewOptions()
	var (
		output         string
		background     string
		lineColor      string
		majorInterval  int
		majorH         int
		majorV         int
		majorStyle     string
		majorThickness int
		majorColor     string
	)

	fs.StringVar(&output, "o", "", "Output file path (.png or .pdf); default grid_<cols>x<rows>.<format>")
	fs.StringVar(&output, "output", "", "Output file path (.png or .pdf)")
	fs.StringVar(&opts.Format, "format", "", "Output format: png or pdf (default from the file extension)")
	fs.IntVar(&opts.Cols, "cols", opts.Cols, "Number of columns")
	fs.IntVar(&opts.Rows, "rows", opts.Rows, "Number of rows")
	fs.IntVar(&opts.CellWidth, "width", opts.CellWidth, "Cell width in unit")
	fs.IntVar(&opts.CellHeight, "height", opts.CellHeight, "Cell height in unit")
	fs.StringVar(&opts.Unit, "unit", opts.Unit, "Unit of width and height: in, cm or px")
	fs.IntVar(&opts.Resolution, "resolution", opts.Resolution, "Dots per unit (dots per inch for px)")
	fs.StringVar(&background, "background", "none", "Background color: name, hex, r,g,b or none")
	fs.StringVar(&opts.Style, "style", opts.Style, "Line style: solid, dotted, dashed or double")
	fs.IntVar(&opts.Thickness, "thickness", opts.Thickness, "Line thickness in pixels")
	fs.StringVar(&lineColor, "color", "black", "Line color: name, hex or r,g,b")
	fs.IntVar(&majorInterval, "major-interval", 0, "Cells between major lines in both directions")
	fs.IntVar(&majorH, "major-horizontal-interval", 0, "Cells between horizontal major lines")
	fs.IntVar(&majorV, "major-vertical-interval", 0, "Cells between vertical major lines")
	fs.StringVar(&majorStyle, "major-style", "", "Major line style (default: style)")
	fs.IntVar(&majorThickness, "major-thickness", 0, "Major line thickness in pixels (default: thickness)")
	fs.StringVar(&majorColor, "major-color", "", "Major line color (default: color)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	opts.Background = colorFlag(background)
	opts.Color = colorFlag(lineColor)

	// Only flags given on the command line override the inherited values.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o", "output":
			opts.Filename = &output
		case "major-interval":
			opts.MajorInterval = &majorInterval
		case "major-horizontal-interval":
			opts.MajorHorizontalInterval = &majorH
		case "major-vertical-interval":
			opts.MajorVerticalInterval = &majorV
		case "major-style":
			opts.MajorStyle = &majorStyle
		case "major-thickness":
			opts.MajorThickness = &majorThickness
		case "major-color":
			c := colorFlag(majorColor)
			opts.MajorColor = &c
		}
	})

	res, err := gridpaper.Save(opts, "")
	if err != nil {
		return err
	}
	fmt.Printf("%s: %dx%d px at %.2f dpi\n", res.Path, res.Width, res.Height, res.DPI)
	return nil
}

// colorFlag reads "r,g,b" as a channel triple and anything else as a color
// name or hex string.
func colorFlag(s string) gridpaper.ColorSpec {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return gridpaper.Named(s)
	}
	ch := make([]int, 0, 3)
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return gridpaper.Named(s)
		}
		ch = append(ch, n)
	}
	return gridpaper.Channels(ch)
}
