package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/triagemap/pkg/errors"
	"github.com/matzehuels/triagemap/pkg/flow"
	"github.com/matzehuels/triagemap/pkg/pipeline"
)

// renderCommand creates the render command for generating diagram artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		configPath string
		noCache    bool
		style      string
		legend     bool
		hover      bool
		scale      float64
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the pipeline diagram",
		Long: `Render the Pre-KTAS retriage pipeline diagram.

The composition is built in, so there is no input file: render produces
the diagram directly in the requested formats. SVG is the native format;
PNG and PDF are converted from it via rsvg-convert.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}

			opts := cfg.Options()
			if cmd.Flags().Changed("format") || len(opts.Formats) == 0 {
				opts.Formats = parseFormats(formatsStr)
			}
			if cmd.Flags().Changed("style") {
				opts.Style = style
			}
			if cmd.Flags().Changed("legend") {
				opts.Legend = legend
			}
			if cmd.Flags().Changed("hover") {
				opts.Hover = hover
			}
			if cmd.Flags().Changed("scale") {
				opts.Scale = scale
			}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}

			return c.runRender(cmd, cfg, opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot (comma-separated)")
	cmd.Flags().StringVar(&style, "style", pipeline.DefaultStyle, "visual style: clinical (default), wireframe")
	cmd.Flags().BoolVar(&legend, "legend", false, "append the category legend panel")
	cmd.Flags().BoolVar(&hover, "hover", false, "embed hover highlighting (SVG only)")
	cmd.Flags().Float64Var(&scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.config/triagemap/config.toml)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runRender renders the composition and writes the requested artifacts.
func (c *CLI) runRender(cmd *cobra.Command, cfg *Config, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(cmd, cfg, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	scene := flow.Compose()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(cmd.Context(), "Rendering diagram...")
	spinner.Start()

	artifacts, info, err := runner.Render(cmd.Context(), scene, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %d artifact(s)", len(artifacts)))

	if err := writeArtifacts(artifacts, opts.Formats, output); err != nil {
		return err
	}

	printStats(len(scene.Nodes), len(scene.Connectors), info.Hit)
	if !opts.Legend {
		printNextStep("Add the category legend", "triagemap render --legend")
	}
	return nil
}

// =============================================================================
// Artifact Output
// =============================================================================

// defaultBase is the output base path used when --output is not given.
const defaultBase = "triagemap"

// writeArtifacts writes each rendered artifact to disk. With a single
// format the output path is used verbatim (stdout when "-"); with
// multiple formats it is treated as a base path and the format extension
// is appended.
func writeArtifacts(artifacts map[string][]byte, formats []string, output string) error {
	if len(formats) == 1 {
		format := formats[0]
		path := output
		if path == "" {
			path = defaultBase + "." + format
		}
		return writeArtifact(artifacts[format], path)
	}

	base := basePath(output)
	for _, format := range formats {
		if err := writeArtifact(artifacts[format], base+"."+format); err != nil {
			return err
		}
	}
	return nil
}

// writeArtifact writes one artifact to path, printing the file line.
// A path of "-" writes to stdout without decoration.
func writeArtifact(data []byte, path string) error {
	if err := apperrors.ValidateOutputPath(path); err != nil {
		return err
	}
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if path != "-" {
		printFile(path)
	}
	return nil
}

// basePath strips a known format extension from output, so that
// "--output diagram.svg --format svg,png" produces diagram.svg and
// diagram.png rather than diagram.svg.png.
func basePath(output string) string {
	if output == "" {
		return defaultBase
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is "-", it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
