package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/triagemap/pkg/diagram"
	"github.com/matzehuels/triagemap/pkg/flow"
	"github.com/matzehuels/triagemap/pkg/render/nodelink"
)

// exportCommand creates the export command for the scene description.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		output   string
		dot      bool
		svg      bool
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the scene description as JSON, DOT, or node-link SVG",
		Long: `Export the pipeline composition as a machine-readable scene.

By default the scene is written as JSON: every node with its category and
geometry, every connector with its path, and every label. With --dot the
composition is exported as a Graphviz digraph instead, which lets external
tooling compute its own layout of the same topology. With --svg that
Graphviz layout is rendered to SVG directly, as a computed-layout
alternative to the hand-placed diagram.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := exportScene(flow.Compose(), dot, svg, detailed)
			if err != nil {
				return err
			}

			if output == "" {
				output = "-"
			}
			if err := writeArtifact(data, output); err != nil {
				return err
			}
			if output != "-" {
				printSuccess("Exported scene")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&dot, "dot", false, "export as Graphviz DOT instead of JSON")
	cmd.Flags().BoolVar(&svg, "svg", false, "render the Graphviz layout to SVG")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include subtitles in DOT node labels")

	return cmd
}

// exportScene serializes the scene in the requested form. --svg runs the
// DOT export through Graphviz for a computed node-link layout; --dot emits
// the digraph text; the default is the scene JSON.
func exportScene(scene *diagram.Scene, dot, svg, detailed bool) ([]byte, error) {
	switch {
	case svg:
		d := nodelink.ToDOT(scene, nodelink.Options{Detailed: detailed})
		return nodelink.RenderSVG(d)
	case dot:
		return []byte(nodelink.ToDOT(scene, nodelink.Options{Detailed: detailed})), nil
	default:
		data, err := diagram.MarshalScene(scene)
		if err != nil {
			return nil, fmt.Errorf("marshal scene: %w", err)
		}
		return data, nil
	}
}
