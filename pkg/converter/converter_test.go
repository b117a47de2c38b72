package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khushaljethava/graphviz2drawio/pkg/graph"
	"github.com/khushaljethava/graphviz2drawio/pkg/svg"
)

const sampleSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="134pt" height="116pt">
<g id="graph0" class="graph" transform="scale(1 1) rotate(0) translate(4 112)">
<title>G</title>
<g id="node1" class="node">
<title>a</title>
<ellipse cx="27" cy="-18" rx="27" ry="18"/>
<text x="27" y="-13">a</text>
</g>
<g id="node2" class="node">
<title>b</title>
<ellipse cx="99" cy="-90" rx="27" ry="18"/>
<text x="99" y="-85">b</text>
</g>
<g id="edge1" class="edge">
<title>a-&gt;b</title>
<path d="M27,-36C27,-70 99,-70 99,-72"/>
<text x="60" y="-50">link</text>
</g>
</g>
</svg>`

func TestBuildGraph(t *testing.T) {
	doc, err := svg.NewDocumentFromString(sampleSVG)
	require.NoError(t, err)

	t.Run("reconstructs nodes and edges", func(t *testing.T) {
		g, err := BuildGraph(doc, nil)
		require.NoError(t, err)
		assert.Equal(t, "G", g.Name)
		require.Len(t, g.Nodes, 2)
		require.Len(t, g.Edges, 1)

		a := g.NodeByName("a")
		require.NotNil(t, a)
		assert.Equal(t, "ellipse", a.Shape)
		// ellipse at cx=27 cy=-18 through translate(4 112)
		assert.InDelta(t, 4, a.Rect.X, 1e-9)
		assert.InDelta(t, 76, a.Rect.Y, 1e-9)
		assert.InDelta(t, 54, a.Rect.Width, 1e-9)
		assert.InDelta(t, 36, a.Rect.Height, 1e-9)

		e := g.Edges[0]
		assert.Equal(t, "a", e.From)
		assert.Equal(t, "b", e.To)
		assert.Equal(t, []string{"link"}, e.Labels)
		require.NotNil(t, e.Curve)
		assert.True(t, e.Curve.IsBezier)
	})

	t.Run("graph defaults are inherited", func(t *testing.T) {
		g, err := BuildGraph(doc, []graph.Attr{{Key: "fillcolor", Value: "lightblue"}})
		require.NoError(t, err)
		v, ok := g.Nodes[0].Attr("fillcolor")
		assert.True(t, ok)
		assert.Equal(t, "lightblue", v)
		v, ok = g.Edges[0].Attr("fillcolor")
		assert.True(t, ok)
		assert.Equal(t, "lightblue", v)
	})

	t.Run("edge group without a title fails the build", func(t *testing.T) {
		bad, err := svg.NewDocumentFromString(
			`<svg xmlns="http://www.w3.org/2000/svg"><g class="graph">` +
				`<g id="edge1" class="edge"><path d="M0,0L1,1"/></g></g></svg>`)
		require.NoError(t, err)
		_, err = BuildGraph(bad, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "edge1")
	})
}

func TestConvert(t *testing.T) {
	t.Run("plain output is an mxfile", func(t *testing.T) {
		out, err := ConvertString(sampleSVG, Options{})
		require.NoError(t, err)
		s := string(out)
		assert.Contains(t, s, "<mxfile")
		assert.Contains(t, s, "mxGraphModel")
		assert.Contains(t, s, `source="node1"`)
		assert.Contains(t, s, `target="node2"`)
	})

	t.Run("compressed output hides the model body", func(t *testing.T) {
		out, err := ConvertString(sampleSVG, Options{Compressed: true})
		require.NoError(t, err)
		s := string(out)
		assert.Contains(t, s, "<mxfile")
		assert.NotContains(t, s, "mxGraphModel")
	})

	t.Run("empty document yields an empty model", func(t *testing.T) {
		out, err := ConvertString(
			`<svg xmlns="http://www.w3.org/2000/svg"><g class="graph"><title>empty</title></g></svg>`,
			Options{})
		require.NoError(t, err)
		assert.Contains(t, string(out), "<mxfile")
	})

	t.Run("unreadable content fails", func(t *testing.T) {
		_, err := ConvertString(
			`<svg xmlns="http://www.w3.org/2000/svg"><g class="graph">`+
				`<g id="e" class="edge"><title>a->b</title><path d="M0,0C1,1 2,2"/></g></g></svg>`,
			Options{})
		assert.Error(t, err)
	})
}
