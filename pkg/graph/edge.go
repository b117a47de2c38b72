package graph

import (
	"github.com/khushaljethava/graphviz2drawio/pkg/geometry"
)

// Edge is a reconstructed graph edge: the two node identities taken
// from the rendered title, the connector geometry when the group had a
// path, and the label texts in document order. Immutable once built.
type Edge struct {
	GraphObj
	From   string
	To     string
	Curve  *geometry.Curve
	Labels []string
}

func NewEdge(sid string, gid string, from string, to string, curve *geometry.Curve, labels []string) *Edge {
	return &Edge{
		GraphObj: NewGraphObj(sid, gid),
		From:     from,
		To:       to,
		Curve:    curve,
		Labels:   labels,
	}
}
