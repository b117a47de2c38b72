// Package converter orchestrates the full pipeline: a Graphviz SVG
// rendering in, a draw.io file out.
package converter

import (
	"fmt"
	"io"
	"strings"

	"github.com/khushaljethava/graphviz2drawio/internal/logger"
	"github.com/khushaljethava/graphviz2drawio/pkg/graph"
	"github.com/khushaljethava/graphviz2drawio/pkg/mxgraph"
	"github.com/khushaljethava/graphviz2drawio/pkg/svg"
)

// Options controls one conversion
type Options struct {
	// Compressed selects draw.io's compressed diagram encoding
	Compressed bool
	// GraphAttrs are graph-level default attributes inherited by
	// every node and edge that does not set them explicitly
	GraphAttrs []graph.Attr
}

// Convert reads a Graphviz SVG document and returns the equivalent
// draw.io file contents
func Convert(r io.Reader, opts Options) ([]byte, error) {
	doc, err := svg.NewDocument(r)
	if err != nil {
		return nil, err
	}
	g, err := BuildGraph(doc, opts.GraphAttrs)
	if err != nil {
		return nil, err
	}
	if opts.Compressed {
		return mxgraph.EmitCompressed(g)
	}
	return mxgraph.Emit(g)
}

// ConvertString converts an SVG document held in a string
func ConvertString(content string, opts Options) ([]byte, error) {
	return Convert(strings.NewReader(content), opts)
}

// BuildGraph walks every node and edge group of the document and
// aggregates the reconstructed entities. A group that cannot be
// reconstructed fails the whole build; skipping bad entities is the
// caller's policy to implement, not this package's.
func BuildGraph(doc *svg.Document, defaults []graph.Attr) (*graph.Graph, error) {
	transform := graph.IdentityTransform()
	name := ""
	gid := ""
	if root := doc.Root(); root != nil {
		if attr, ok := root.Attr("transform"); ok {
			transform = graph.ParseTransform(attr)
		}
		if title, ok := svg.GetTitle(root); ok {
			name = title
		}
		gid = svg.ID(root)
	}

	g := graph.NewGraph(name)
	nodes := graph.NewNodeFactory(gid, transform)
	edges := graph.NewEdgeFactory(gid, transform)

	for _, group := range doc.Groups("node") {
		n, err := nodes.FromSVG(group)
		if err != nil {
			return nil, fmt.Errorf("failed to reconstruct node: %w", err)
		}
		n.EnrichFromGraph(defaults)
		g.Nodes = append(g.Nodes, n)
	}

	for _, group := range doc.Groups("edge") {
		e, err := edges.FromSVG(group)
		if err != nil {
			return nil, fmt.Errorf("failed to reconstruct edge: %w", err)
		}
		e.EnrichFromGraph(defaults)
		g.Edges = append(g.Edges, e)
	}

	logger.Debug("reconstructed graph:", len(g.Nodes), "nodes,", len(g.Edges), "edges")
	return g, nil
}
