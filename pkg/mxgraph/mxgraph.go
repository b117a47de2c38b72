// Package mxgraph serialises a reconstructed graph into the draw.io
// (mxGraph) file format. Nodes become vertex mxCells, edges become
// edge mxCells whose connector style depends on whether the source
// geometry was straight or curved.
package mxgraph

import (
	"encoding/xml"
	"fmt"

	"github.com/google/uuid"

	"github.com/khushaljethava/graphviz2drawio/pkg/graph"
)

const fileHost = "graphviz2drawio"

type mxFile struct {
	XMLName xml.Name  `xml:"mxfile"`
	Host    string    `xml:"host,attr"`
	Diagram mxDiagram `xml:"diagram"`
}

type mxDiagram struct {
	ID      string        `xml:"id,attr"`
	Name    string        `xml:"name,attr"`
	Model   *mxGraphModel `xml:"mxGraphModel,omitempty"`
	Content string        `xml:",chardata"`
}

type mxGraphModel struct {
	Dx       int    `xml:"dx,attr"`
	Dy       int    `xml:"dy,attr"`
	Grid     int    `xml:"grid,attr"`
	GridSize int    `xml:"gridSize,attr"`
	Page     int    `xml:"page,attr"`
	Root     mxRoot `xml:"root"`
}

type mxRoot struct {
	Cells []mxCell `xml:"mxCell"`
}

type mxCell struct {
	ID       string      `xml:"id,attr"`
	Value    string      `xml:"value,attr,omitempty"`
	Style    string      `xml:"style,attr,omitempty"`
	Parent   string      `xml:"parent,attr,omitempty"`
	Source   string      `xml:"source,attr,omitempty"`
	Target   string      `xml:"target,attr,omitempty"`
	Vertex   string      `xml:"vertex,attr,omitempty"`
	Edge     string      `xml:"edge,attr,omitempty"`
	Geometry *mxGeometry `xml:"mxGeometry,omitempty"`
}

type mxGeometry struct {
	X        float64  `xml:"x,attr,omitempty"`
	Y        float64  `xml:"y,attr,omitempty"`
	Width    float64  `xml:"width,attr,omitempty"`
	Height   float64  `xml:"height,attr,omitempty"`
	Relative string   `xml:"relative,attr,omitempty"`
	As       string   `xml:"as,attr"`
	Points   *mxArray `xml:"Array,omitempty"`
}

type mxArray struct {
	As     string    `xml:"as,attr"`
	Points []mxPoint `xml:"mxPoint"`
}

type mxPoint struct {
	X float64 `xml:"x,attr"`
	Y float64 `xml:"y,attr"`
}

// Emit serialises the graph into a plain (uncompressed) .drawio file
func Emit(g *graph.Graph) ([]byte, error) {
	file := mxFile{
		Host: fileHost,
		Diagram: mxDiagram{
			ID:    uuid.NewString(),
			Name:  diagramName(g),
			Model: buildModel(g),
		},
	}
	out, err := xml.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialise mxgraph model: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// EmitCompressed serialises the graph with the diagram body in
// draw.io's compressed encoding (base64 over raw deflate)
func EmitCompressed(g *graph.Graph) ([]byte, error) {
	model, err := xml.Marshal(buildModel(g))
	if err != nil {
		return nil, fmt.Errorf("failed to serialise mxgraph model: %w", err)
	}
	content, err := compress(model)
	if err != nil {
		return nil, err
	}
	file := mxFile{
		Host: fileHost,
		Diagram: mxDiagram{
			ID:      uuid.NewString(),
			Name:    diagramName(g),
			Content: content,
		},
	}
	out, err := xml.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialise mxfile: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

func diagramName(g *graph.Graph) string {
	if g.Name != "" {
		return g.Name
	}
	return "Page-1"
}

func buildModel(g *graph.Graph) *mxGraphModel {
	cells := []mxCell{
		{ID: "0"},
		{ID: "1", Parent: "0"},
	}

	// node titles map onto cell ids for edge endpoint resolution
	cellIDs := map[string]string{}
	for _, n := range g.Nodes {
		id := n.SID
		if id == "" {
			id = n.Name
		}
		cellIDs[n.Name] = id
		cells = append(cells, mxCell{
			ID:     id,
			Value:  nodeValue(n),
			Style:  nodeStyle(n),
			Parent: "1",
			Vertex: "1",
			Geometry: &mxGeometry{
				X:      n.Rect.X,
				Y:      n.Rect.Y,
				Width:  n.Rect.Width,
				Height: n.Rect.Height,
				As:     "geometry",
			},
		})
	}

	for _, e := range g.Edges {
		cells = append(cells, edgeCell(e, cellIDs))
	}

	return &mxGraphModel{
		Dx:       800,
		Dy:       600,
		Grid:     0,
		GridSize: 10,
		Page:     1,
		Root:     mxRoot{Cells: cells},
	}
}

func nodeValue(n *graph.Node) string {
	if len(n.Labels) > 0 {
		return joinLabels(n.Labels)
	}
	return n.Name
}

// nodeStyle maps the rendered shape and the inherited graph attributes
// onto a draw.io style string
func nodeStyle(n *graph.Node) string {
	style := "rounded=0;whiteSpace=wrap;html=1;"
	if n.Shape == "ellipse" {
		style = "ellipse;whiteSpace=wrap;html=1;"
	}
	if v, ok := n.Attr("fillcolor"); ok {
		style += fmt.Sprintf("fillColor=%v;", v)
	}
	if v, ok := n.Attr("color"); ok {
		style += fmt.Sprintf("strokeColor=%v;", v)
	}
	if v, ok := n.Attr("fontcolor"); ok {
		style += fmt.Sprintf("fontColor=%v;", v)
	}
	return style
}

// edgeCell builds the connector cell for one edge. Straight source
// geometry becomes an orthogonal connector; a cubic becomes a curved
// connector with waypoints sampled along the Bézier so draw.io's
// simpler primitive follows the original shape.
func edgeCell(e *graph.Edge, cellIDs map[string]string) mxCell {
	style := "edgeStyle=orthogonalEdgeStyle;rounded=0;html=1;"
	geo := &mxGeometry{Relative: "1", As: "geometry"}

	if c := e.Curve; c != nil {
		if c.IsBezier {
			style = "curved=1;html=1;"
			pts := []mxPoint{}
			for _, t := range []float64{0.25, 0.5, 0.75} {
				p := c.Position(t)
				pts = append(pts, mxPoint{X: p.X, Y: p.Y})
			}
			geo.Points = &mxArray{As: "points", Points: pts}
		} else if len(c.Points) > 2 {
			// anchors are the route itself, so connect them directly
			// instead of letting the orthogonal router reroute them
			style = "rounded=0;html=1;"
			pts := []mxPoint{}
			for _, p := range c.Points[1 : len(c.Points)-1] {
				pts = append(pts, mxPoint{X: p.X, Y: p.Y})
			}
			geo.Points = &mxArray{As: "points", Points: pts}
		}
	}

	if v, ok := e.Attr("color"); ok {
		style += fmt.Sprintf("strokeColor=%v;", v)
	}

	id := e.SID
	if id == "" {
		id = fmt.Sprintf("%s-%s", e.From, e.To)
	}
	return mxCell{
		ID:       id,
		Value:    joinLabels(e.Labels),
		Style:    style,
		Parent:   "1",
		Source:   cellIDs[e.From],
		Target:   cellIDs[e.To],
		Edge:     "1",
		Geometry: geo,
	}
}

func joinLabels(labels []string) string {
	ret := ""
	for i, l := range labels {
		if i > 0 {
			ret += "\n"
		}
		ret += l
	}
	return ret
}
