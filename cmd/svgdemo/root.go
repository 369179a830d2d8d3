package main

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/svgwriter/logging"
	"github.com/benoitkugler/svgwriter/scene"
	"github.com/benoitkugler/svgwriter/svgdoc"
	"github.com/benoitkugler/svgwriter/svgdraw"
	"github.com/benoitkugler/svgwriter/svgpdf"
	"github.com/benoitkugler/svgwriter/svgpdf/alt"
	"github.com/benoitkugler/svgwriter/svgraster"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var version = "dev"

var errUnknownFormat = errors.New("unknown output format")

type renderOptions struct {
	configPath string
	format     string
	outPath    string
	background string
	pdfEngine  string
}

// PDF engines
const (
	engineGofpdf = "gofpdf"
	engineNative = "native"
)

// NewRootCmd builds the svgdemo command tree.
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "svgdemo",
		Short: "Render pictures as SVG, PNG or PDF",
		Long: `svgdemo builds a picture from a scene file (or the built-in demo)
and writes it as an SVG document, a PNG image or a PDF page.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newRenderCmd(), newVersionCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "svgdemo version %s\n", version)
		},
	}
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene",
		Long: `Render a scene file (.yaml, .yml or .toml), or the demo picture
when --config is omitted. The output format defaults to the extension
of --out, then to svg. Output goes to stdout when --out is omitted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "scene file (default is the demo picture)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg, png or pdf")
	cmd.Flags().StringVarP(&opts.outPath, "out", "o", "", "output file (default is stdout)")
	cmd.Flags().StringVar(&opts.background, "background", "", "background color for png output")
	cmd.Flags().StringVar(&opts.pdfEngine, "pdf-engine", engineGofpdf, "pdf writer: gofpdf or native")
	return cmd
}

func (opts renderOptions) resolveFormat() (string, error) {
	format := strings.ToLower(opts.format)
	if format == "" {
		format = strings.ToLower(strings.TrimPrefix(filepath.Ext(opts.outPath), "."))
	}
	if format == "" {
		format = "svg"
	}
	switch format {
	case "svg", "png", "pdf":
	default:
		return "", fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
	if opts.pdfEngine != "" && opts.pdfEngine != engineGofpdf && opts.pdfEngine != engineNative {
		return "", fmt.Errorf("%w: pdf engine %q", errUnknownFormat, opts.pdfEngine)
	}
	return format, nil
}

func runRender(stdout io.Writer, opts renderOptions) error {
	logger := logging.GetLogger("render")
	defer logging.LogOperationStart(logger, "render")()

	format, err := opts.resolveFormat()
	if err != nil {
		return err
	}

	cfg := scene.Default()
	if opts.configPath != "" {
		if cfg, err = scene.Load(opts.configPath); err != nil {
			return err
		}
	}
	doc, err := cfg.Build()
	if err != nil {
		return err
	}
	width, height := canvasSize(doc, cfg)
	logger.Info().Str("format", format).Float64("width", width).Float64("height", height).
		Int("objects", doc.Len()).Msg("Rendering")

	bg, err := backgroundColor(opts.background)
	if err != nil {
		return err
	}
	write := func(out io.Writer) error {
		switch format {
		case "png":
			return svgraster.WritePNG(doc, int(math.Ceil(width)), int(math.Ceil(height)), bg, out)
		case "pdf":
			if opts.pdfEngine == engineNative {
				return alt.RenderDocument(doc, width, height, out)
			}
			return svgpdf.RenderDocument(doc, width, height, out)
		default:
			return doc.Render(out)
		}
	}

	if opts.outPath == "" {
		return write(stdout)
	}
	return writeFile(opts.outPath, write)
}

// writeFile creates path and fills it with write. The file is
// removed when anything fails.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	err = write(f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing output: %w", cerr)
	}
	if err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// canvasSize returns the configured size, where zero dimensions
// are replaced by the extent of the painted content.
func canvasSize(doc *svgdoc.Document, cfg scene.Config) (width, height float64) {
	width, height = cfg.Width, cfg.Height
	if width > 0 && height > 0 {
		return width, height
	}
	bounds, ok := svgdraw.DocumentBounds(doc)
	if !ok {
		bounds = svgdraw.Bounds{W: 1, H: 1}
	}
	if width <= 0 {
		width = math.Max(1, math.Ceil(bounds.X+bounds.W))
	}
	if height <= 0 {
		height = math.Max(1, math.Ceil(bounds.Y+bounds.H))
	}
	return width, height
}

// backgroundColor returns nil for an empty token.
func backgroundColor(token string) (color.Color, error) {
	if token == "" {
		return nil, nil
	}
	c, ok, err := svgdraw.ResolveColor(svgdoc.NamedColor(token))
	if err != nil || !ok {
		return nil, err
	}
	return c, nil
}
