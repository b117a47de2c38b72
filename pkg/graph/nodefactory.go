package graph

import (
	"math"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/khushaljethava/graphviz2drawio/pkg/geometry"
	"github.com/khushaljethava/graphviz2drawio/pkg/svg"
)

///////////////////////////////////////////////////////////////////////////////
/// NODE FACTORY
///////////////////////////////////////////////////////////////////////////////

// NodeFactory reconstructs one Node from one <g class="node"> group.
// Graphviz draws a node as an ellipse or polygon plus its label text;
// the bounding rectangle of that shape becomes the node geometry.
type NodeFactory struct {
	gid       string
	transform Transform
}

func NewNodeFactory(gid string, transform Transform) *NodeFactory {
	return &NodeFactory{gid: gid, transform: transform}
}

// FromSVG builds the Node described by the given group element,
// failing with a MissingTitleError when the group has no title
func (f *NodeFactory) FromSVG(g *goquery.Selection) (*Node, error) {
	title, ok := svg.GetTitle(g)
	if !ok {
		return nil, &MissingTitleError{ElementID: svg.ID(g)}
	}

	labels := svg.GetTexts(g)

	shape := "rect"
	var rect Rect
	if ellipse := svg.GetFirst(g, "ellipse"); ellipse != nil {
		shape = "ellipse"
		cx := attrFloat(ellipse, "cx")
		cy := attrFloat(ellipse, "cy")
		rx := attrFloat(ellipse, "rx")
		ry := attrFloat(ellipse, "ry")
		tl := f.transform.Apply(geometry.NewPoint(cx-rx, cy-ry))
		br := f.transform.Apply(geometry.NewPoint(cx+rx, cy+ry))
		rect = rectFromCorners(tl, br)
	} else if polygon := svg.GetFirst(g, "polygon"); polygon != nil {
		shape = "polygon"
		points, exists := polygon.Attr("points")
		if exists {
			rect = f.polygonBounds(points)
		}
	}

	return NewNode(svg.ID(g), f.gid, title, shape, rect, labels), nil
}

// polygonBounds computes the bounding rectangle of a polygon points
// attribute such as "27,-36 -0.25,-36 -0.25,-0.25 27,-0.25"
func (f *NodeFactory) polygonBounds(points string) Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	seen := false
	for _, pair := range strings.Fields(points) {
		xy := strings.SplitN(pair, ",", 2)
		if len(xy) != 2 {
			continue
		}
		x, errX := strconv.ParseFloat(xy[0], 64)
		y, errY := strconv.ParseFloat(xy[1], 64)
		if errX != nil || errY != nil {
			continue
		}
		p := f.transform.Apply(geometry.NewPoint(x, y))
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
		seen = true
	}
	if !seen {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func rectFromCorners(a, b geometry.Point) Rect {
	x := math.Min(a.X, b.X)
	y := math.Min(a.Y, b.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  math.Abs(b.X - a.X),
		Height: math.Abs(b.Y - a.Y),
	}
}

func attrFloat(s *goquery.Selection, name string) float64 {
	v, exists := s.Attr(name)
	if !exists {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}
