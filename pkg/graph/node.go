package graph

// Rect is an axis-aligned bounding rectangle in output coordinates
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Node is a reconstructed graph node: its name from the rendered
// title, the shape Graphviz drew for it, its bounding rectangle and
// label texts.
type Node struct {
	GraphObj
	Name   string
	Shape  string
	Rect   Rect
	Labels []string
}

func NewNode(sid string, gid string, name string, shape string, rect Rect, labels []string) *Node {
	return &Node{
		GraphObj: NewGraphObj(sid, gid),
		Name:     name,
		Shape:    shape,
		Rect:     rect,
		Labels:   labels,
	}
}
