package graph

import (
	"errors"
	"fmt"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khushaljethava/graphviz2drawio/pkg/svg"
)

func nodeGroup(t *testing.T, group string) *goquery.Selection {
	t.Helper()
	content := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg"><g class="graph">%s</g></svg>`, group)
	doc, err := svg.NewDocumentFromString(content)
	require.NoError(t, err)
	groups := doc.Groups("node")
	require.Len(t, groups, 1)
	return groups[0]
}

func TestNodeFactoryFromSVG(t *testing.T) {
	factory := NewNodeFactory("G", IdentityTransform())

	t.Run("ellipse node", func(t *testing.T) {
		g := nodeGroup(t, `<g id="node1" class="node"><title>a</title>`+
			`<ellipse cx="27" cy="-18" rx="27" ry="18"/><text>a</text></g>`)

		n, err := factory.FromSVG(g)
		require.NoError(t, err)
		assert.Equal(t, "a", n.Name)
		assert.Equal(t, "ellipse", n.Shape)
		assert.Equal(t, Rect{X: 0, Y: -36, Width: 54, Height: 36}, n.Rect)
		assert.Equal(t, []string{"a"}, n.Labels)
	})

	t.Run("polygon node bounds", func(t *testing.T) {
		g := nodeGroup(t, `<g id="node2" class="node"><title>box</title>`+
			`<polygon points="54,-36 0,-36 0,0 54,0"/><text>box</text></g>`)

		n, err := factory.FromSVG(g)
		require.NoError(t, err)
		assert.Equal(t, "polygon", n.Shape)
		assert.Equal(t, Rect{X: 0, Y: -36, Width: 54, Height: 36}, n.Rect)
	})

	t.Run("node without a shape child", func(t *testing.T) {
		g := nodeGroup(t, `<g id="node3" class="node"><title>bare</title></g>`)

		n, err := factory.FromSVG(g)
		require.NoError(t, err)
		assert.Equal(t, "rect", n.Shape)
		assert.Equal(t, Rect{}, n.Rect)
	})

	t.Run("missing title fails", func(t *testing.T) {
		g := nodeGroup(t, `<g id="node4" class="node"><ellipse cx="0" cy="0" rx="1" ry="1"/></g>`)

		_, err := factory.FromSVG(g)
		require.Error(t, err)
		var missing *MissingTitleError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, "node4", missing.ElementID)
	})

	t.Run("transform shifts the rectangle", func(t *testing.T) {
		shifted := NewNodeFactory("G", Transform{Dx: 4, Dy: 40, ScaleX: 1, ScaleY: 1})
		g := nodeGroup(t, `<g id="node5" class="node"><title>a</title>`+
			`<ellipse cx="27" cy="-18" rx="27" ry="18"/></g>`)

		n, err := shifted.FromSVG(g)
		require.NoError(t, err)
		assert.Equal(t, Rect{X: 4, Y: 4, Width: 54, Height: 36}, n.Rect)
	})
}

func TestParseTransform(t *testing.T) {
	t.Run("graphviz root transform", func(t *testing.T) {
		tr := ParseTransform("scale(1 1) rotate(0) translate(4 112)")
		assert.Equal(t, Transform{Dx: 4, Dy: 112, ScaleX: 1, ScaleY: 1}, tr)
	})

	t.Run("scale with one factor applies to both axes", func(t *testing.T) {
		tr := ParseTransform("scale(2) translate(10,20)")
		assert.Equal(t, Transform{Dx: 10, Dy: 20, ScaleX: 2, ScaleY: 2}, tr)
	})

	t.Run("missing components keep identity", func(t *testing.T) {
		assert.Equal(t, IdentityTransform(), ParseTransform(""))
		assert.Equal(t, IdentityTransform(), ParseTransform("rotate(45)"))
	})
}
