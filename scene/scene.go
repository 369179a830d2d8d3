// Package scene describes pictures in YAML or TOML files and
// turns them into svgdoc documents.
package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/svgwriter/logging"
	"github.com/benoitkugler/svgwriter/shapes"
	"github.com/benoitkugler/svgwriter/svgdoc"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownShape      = errors.New("unknown shape kind")
	ErrInvalidShape      = errors.New("invalid shape")
	ErrUnsupportedFormat = errors.New("unsupported scene format")
)

// Shape kinds.
const (
	KindTriangle = "triangle"
	KindStar     = "star"
	KindSnowman  = "snowman"
	KindLabel    = "label"
)

// defaultFontSize applies to labels without font_size.
const defaultFontSize = 12

// Config is a picture: a canvas size and an ordered list of shapes.
// A zero Width or Height means the canvas fits the content.
type Config struct {
	Width  float64       `yaml:"width" toml:"width"`
	Height float64       `yaml:"height" toml:"height"`
	Shapes []ShapeConfig `yaml:"shapes" toml:"shapes"`
}

type Point struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

func (p Point) svg() svgdoc.Point { return svgdoc.Point{X: p.X, Y: p.Y} }

// ShapeConfig holds the union of the fields of every kind;
// only the ones relevant for Kind are read.
type ShapeConfig struct {
	Kind string `yaml:"kind" toml:"kind"`

	// triangle
	Points []Point `yaml:"points,omitempty" toml:"points,omitempty"`

	// star, snowman (head center), label (position)
	Center Point `yaml:"center,omitempty" toml:"center,omitempty"`
	// star (outer), snowman (head)
	Radius      float64 `yaml:"radius,omitempty" toml:"radius,omitempty"`
	InnerRadius float64 `yaml:"inner_radius,omitempty" toml:"inner_radius,omitempty"`
	Rays        int     `yaml:"rays,omitempty" toml:"rays,omitempty"`

	// label
	Text       string `yaml:"text,omitempty" toml:"text,omitempty"`
	FontSize   uint32 `yaml:"font_size,omitempty" toml:"font_size,omitempty"`
	FontFamily string `yaml:"font_family,omitempty" toml:"font_family,omitempty"`
	FontWeight string `yaml:"font_weight,omitempty" toml:"font_weight,omitempty"`
	Fill       string `yaml:"fill,omitempty" toml:"fill,omitempty"`
	Stroke     string `yaml:"stroke,omitempty" toml:"stroke,omitempty"`
	Underlay   string `yaml:"underlay,omitempty" toml:"underlay,omitempty"`
}

// Default returns the demo picture: a triangle, a star, a snowman
// and a greeting.
func Default() Config {
	return Config{
		Width:  200,
		Height: 200,
		Shapes: []ShapeConfig{
			{Kind: KindTriangle, Points: []Point{{100, 20}, {120, 50}, {80, 40}}},
			{Kind: KindStar, Center: Point{50, 20}, Radius: 10, InnerRadius: 4, Rays: 5},
			{Kind: KindSnowman, Center: Point{30, 20}, Radius: 10},
			{
				Kind: KindLabel, Center: Point{10, 100}, Text: "Happy New Year!",
				FontSize: 12, FontFamily: "Verdana", Fill: "red", Underlay: "yellow",
			},
		},
	}
}

// Load reads a scene file, whose format is given by its extension.
func Load(path string) (Config, error) {
	logger := logging.GetLogger("scene")
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading scene: %w", err)
	}
	cfg, err := Parse(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return Config{}, fmt.Errorf("loading %s: %w", path, err)
	}
	logger.Info().Str("path", path).Int("shapes", len(cfg.Shapes)).Msg("Scene loaded")
	return cfg, nil
}

// Parse decodes a scene; format is "yaml", "yml" or "toml".
func Parse(data []byte, format string) (Config, error) {
	var cfg Config
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing yaml scene: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing toml scene: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return cfg, nil
}

// Drawables converts the shapes, in order.
func (c Config) Drawables() ([]svgdoc.Drawable, error) {
	out := make([]svgdoc.Drawable, 0, len(c.Shapes))
	for i, s := range c.Shapes {
		d, err := s.Drawable()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// Build returns a new document with every shape drawn.
func (c Config) Build() (*svgdoc.Document, error) {
	logger := logging.GetLogger("scene")
	defer logging.LogOperationStart(logger, "build")()

	drawables, err := c.Drawables()
	if err != nil {
		return nil, err
	}
	doc := new(svgdoc.Document)
	shapes.DrawPicture(doc, drawables...)
	logger.Debug().Int("objects", doc.Len()).Msg("Document built")
	return doc, nil
}

func (s ShapeConfig) Drawable() (svgdoc.Drawable, error) {
	switch strings.ToLower(s.Kind) {
	case KindTriangle:
		if len(s.Points) != 3 {
			return nil, fmt.Errorf("%w: triangle needs 3 points, got %d", ErrInvalidShape, len(s.Points))
		}
		return shapes.Triangle{P1: s.Points[0].svg(), P2: s.Points[1].svg(), P3: s.Points[2].svg()}, nil
	case KindStar:
		if s.Rays < 1 {
			return nil, fmt.Errorf("%w: star needs at least one ray", ErrInvalidShape)
		}
		return shapes.Star{Center: s.Center.svg(), OuterRadius: s.Radius, InnerRadius: s.InnerRadius, Rays: s.Rays}, nil
	case KindSnowman:
		if s.Radius <= 0 {
			return nil, fmt.Errorf("%w: snowman radius must be positive", ErrInvalidShape)
		}
		return shapes.Snowman{Head: s.Center.svg(), HeadRadius: s.Radius}, nil
	case KindLabel:
		size := s.FontSize
		if size == 0 {
			size = defaultFontSize
		}
		text := svgdoc.NewText().
			SetPosition(s.Center.svg()).
			SetFontSize(size).
			SetFontFamily(s.FontFamily).
			SetFontWeight(s.FontWeight).
			SetData(s.Text).
			SetFillColor(color(s.Fill)).
			SetStrokeColor(color(s.Stroke))
		return shapes.Label{Text: text, Underlay: color(s.Underlay)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShape, s.Kind)
}

// color returns nil for an empty token.
func color(token string) svgdoc.Color {
	if token == "" {
		return nil
	}
	return svgdoc.NamedColor(token)
}
