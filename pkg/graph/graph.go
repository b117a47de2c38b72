// Package graph holds the reconstructed diagram model: nodes and
// edges rebuilt from a Graphviz SVG rendering, together with the
// factories that extract them from SVG group elements.
package graph

// Graph aggregates the entities reconstructed from one SVG document
type Graph struct {
	Name  string
	Nodes []*Node
	Edges []*Edge
}

func NewGraph(name string) *Graph {
	return &Graph{
		Name:  name,
		Nodes: []*Node{},
		Edges: []*Edge{},
	}
}

// NodeByName returns the node with the given title name, or nil
func (g *Graph) NodeByName(name string) *Node {
	for _, n := range g.Nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}
