package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/triagemap/pkg/cache"
	"github.com/matzehuels/triagemap/pkg/diagram"
	"github.com/matzehuels/triagemap/pkg/diagram/sink"
	"github.com/matzehuels/triagemap/pkg/diagram/styles"
	"github.com/matzehuels/triagemap/pkg/errors"
	"github.com/matzehuels/triagemap/pkg/render/nodelink"
)

// Runner encapsulates rendering with caching.
// Both CLI and serve use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store render results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Close releases the runner's cache resources.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// Render produces all requested artifacts for the scene, consulting the
// cache per format. The SVG is rendered at most once per call and reused
// for PNG/PDF conversion on cache misses.
func (r *Runner) Render(ctx context.Context, scene *diagram.Scene, opts Options) (map[string][]byte, CacheInfo, error) {
	info := CacheInfo{PerFormat: make(map[string]bool)}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, info, fmt.Errorf("invalid options: %w", err)
	}
	if err := scene.Validate(); err != nil {
		return nil, info, err
	}

	sceneData, err := diagram.MarshalScene(scene)
	if err != nil {
		return nil, info, fmt.Errorf("hash scene: %w", err)
	}
	sceneHash := cache.Hash(sceneData)

	artifacts := make(map[string][]byte, len(opts.Formats))

	// svgBytes is rendered lazily: only when a raster format misses.
	var svgBytes []byte

	start := time.Now()
	for _, format := range opts.Formats {
		key := cache.ArtifactKey(sceneHash, cache.ArtifactKeyOpts{
			Format: format,
			Style:  opts.Style,
			Legend: opts.Legend,
			Hover:  opts.Hover,
			Scale:  scaleFor(format, opts.Scale),
		})

		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			r.Logger.Debug("artifact cache hit", "format", format)
			artifacts[format] = data
			info.PerFormat[format] = true
			continue
		}
		info.PerFormat[format] = false

		data, err := r.renderFormat(scene, format, opts, &svgBytes)
		if err != nil {
			return nil, info, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data

		if err := r.Cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
			r.Logger.Debug("artifact cache write failed", "format", format, "err", err)
		}
	}

	info.Hit = true
	for _, hit := range info.PerFormat {
		if !hit {
			info.Hit = false
			break
		}
	}

	r.Logger.Info("rendered composition",
		"formats", opts.Formats,
		"style", opts.Style,
		"cached", info.Hit,
		"duration", time.Since(start).Round(time.Millisecond))

	return artifacts, info, nil
}

// renderFormat renders one artifact, reusing *svgCache across formats that
// share the SVG render.
func (r *Runner) renderFormat(scene *diagram.Scene, format string, opts Options, svgCache *[]byte) ([]byte, error) {
	switch format {
	case FormatSVG:
		return r.renderSVG(scene, opts, svgCache)
	case FormatPNG:
		svg, err := r.renderSVG(scene, opts, svgCache)
		if err != nil {
			return nil, err
		}
		return pngFromSVG(svg, opts.Scale)
	case FormatPDF:
		svg, err := r.renderSVG(scene, opts, svgCache)
		if err != nil {
			return nil, err
		}
		return pdfFromSVG(svg)
	case FormatJSON:
		return sink.RenderJSON(scene)
	case FormatDOT:
		return []byte(nodelink.ToDOT(scene, nodelink.Options{})), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
	}
}

func (r *Runner) renderSVG(scene *diagram.Scene, opts Options, svgCache *[]byte) ([]byte, error) {
	if *svgCache != nil {
		return *svgCache, nil
	}
	svg, err := sink.RenderSVG(scene, svgOptions(opts)...)
	if err != nil {
		return nil, err
	}
	*svgCache = svg
	return svg, nil
}

// svgOptions translates pipeline options into sink options.
func svgOptions(opts Options) []sink.SVGOption {
	var out []sink.SVGOption
	out = append(out, sink.WithStyle(StyleFor(opts.Style)))
	if opts.Legend {
		out = append(out, sink.WithLegend())
	}
	if opts.Hover {
		out = append(out, sink.WithHover())
	}
	return out
}

// StyleFor maps a style name to its implementation. Names are validated
// upstream; unknown names fall back to the default style.
func StyleFor(name string) styles.Style {
	switch name {
	case StyleWireframe:
		return styles.Wireframe{}
	default:
		return styles.Clinical{}
	}
}

// scaleFor returns the scale component of the cache key. Only PNG output
// depends on scale; other formats must share keys across scale values.
func scaleFor(format string, scale float64) float64 {
	if format == FormatPNG {
		return scale
	}
	return 0
}
