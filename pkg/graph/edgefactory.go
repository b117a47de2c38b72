package graph

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/khushaljethava/graphviz2drawio/internal/logger"
	"github.com/khushaljethava/graphviz2drawio/pkg/geometry"
	"github.com/khushaljethava/graphviz2drawio/pkg/svg"
)

///////////////////////////////////////////////////////////////////////////////
/// EDGE FACTORY
///////////////////////////////////////////////////////////////////////////////

// EdgeFactory reconstructs one Edge from one <g class="edge"> group.
// The group's title carries the endpoint identities, its <text>
// children the labels, and its <path> the connector geometry.
type EdgeFactory struct {
	gid    string
	curves *CurveFactory
}

func NewEdgeFactory(gid string, transform Transform) *EdgeFactory {
	return &EdgeFactory{
		gid:    gid,
		curves: NewCurveFactory(transform),
	}
}

// FromSVG builds the Edge described by the given group element.
// It fails with a MissingTitleError when the group has no title and a
// MalformedTitleError when the title does not name exactly two
// endpoints; there is no geometric fallback for either.
func (f *EdgeFactory) FromSVG(g *goquery.Selection) (*Edge, error) {
	title, ok := svg.GetTitle(g)
	if !ok {
		return nil, &MissingTitleError{ElementID: svg.ID(g)}
	}

	// an undirected separator names the same endpoint pair
	parts := strings.Split(strings.ReplaceAll(title, "--", "->"), "->")
	if len(parts) != 2 {
		return nil, &MalformedTitleError{Title: title}
	}
	// strip port qualifiers, keeping only the node identity
	from := strings.TrimSpace(strings.SplitN(parts[0], ":", 2)[0])
	to := strings.TrimSpace(strings.SplitN(parts[1], ":", 2)[0])

	labels := svg.GetTexts(g)

	var curve *geometry.Curve
	if path := svg.GetFirst(g, "path"); path != nil {
		if d, exists := path.Attr("d"); exists {
			curves, err := f.curves.FromPath(d)
			if err != nil {
				return nil, err
			}
			curve, err = mergeCurves(curves)
			if err != nil {
				return nil, err
			}
			if len(curves) > 1 {
				logger.Debug("merged multi-segment edge path:", title)
			}
		}
	}

	return NewEdge(svg.ID(g), f.gid, from, to, curve, labels), nil
}

// mergeCurves joins an ordered segment chain into the single curve an
// Edge carries. One segment passes through untouched. A longer chain
// flattens to a polyline spanning the whole path, so the merged curve
// ends on the path's final coordinate: straight segments contribute
// their anchors, curved ones a few sampled points.
func mergeCurves(curves []*geometry.Curve) (*geometry.Curve, error) {
	switch len(curves) {
	case 0:
		return nil, nil
	case 1:
		return curves[0], nil
	}

	pts := []geometry.Point{curves[0].Start}
	for _, c := range curves {
		if c.IsBezier {
			for _, t := range []float64{0.25, 0.5, 0.75} {
				pts = append(pts, c.Position(t))
			}
			pts = append(pts, c.End)
		} else {
			pts = append(pts, c.Points[1:]...)
		}
	}
	return geometry.NewPolyline(pts...)
}
