package graph

import (
	"errors"
	"fmt"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khushaljethava/graphviz2drawio/pkg/geometry"
	"github.com/khushaljethava/graphviz2drawio/pkg/svg"
)

// edgeGroup parses an SVG document containing the given edge group
// markup and returns the group selection
func edgeGroup(t *testing.T, group string) *goquery.Selection {
	t.Helper()
	content := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg"><g class="graph">%s</g></svg>`, group)
	doc, err := svg.NewDocumentFromString(content)
	require.NoError(t, err)
	groups := doc.Groups("edge")
	require.Len(t, groups, 1)
	return groups[0]
}

func TestEdgeFactoryFromSVG(t *testing.T) {
	factory := NewEdgeFactory("G", IdentityTransform())

	t.Run("directed title without geometry", func(t *testing.T) {
		g := edgeGroup(t, `<g id="edge1" class="edge"><title>A -> B</title></g>`)

		e, err := factory.FromSVG(g)
		require.NoError(t, err)
		assert.Equal(t, "A", e.From)
		assert.Equal(t, "B", e.To)
		assert.Equal(t, "edge1", e.SID)
		assert.Equal(t, "G", e.GID)
		assert.Nil(t, e.Curve)
		assert.Empty(t, e.Labels)
	})

	t.Run("undirected separator and ports", func(t *testing.T) {
		g := edgeGroup(t, `<g id="edge2" class="edge"><title>A:west -- B:east</title></g>`)

		e, err := factory.FromSVG(g)
		require.NoError(t, err)
		assert.Equal(t, "A", e.From)
		assert.Equal(t, "B", e.To)
	})

	t.Run("labels collected in document order", func(t *testing.T) {
		g := edgeGroup(t, `<g id="edge3" class="edge"><title>a->b</title>`+
			`<text>first</text><text>second</text></g>`)

		e, err := factory.FromSVG(g)
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, e.Labels)
	})

	t.Run("missing title fails naming the group", func(t *testing.T) {
		g := edgeGroup(t, `<g id="edge4" class="edge"><text>orphan</text></g>`)

		_, err := factory.FromSVG(g)
		require.Error(t, err)
		var missing *MissingTitleError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, "edge4", missing.ElementID)
	})

	t.Run("malformed title fails fast", func(t *testing.T) {
		g := edgeGroup(t, `<g id="edge5" class="edge"><title>lonely</title></g>`)

		_, err := factory.FromSVG(g)
		require.Error(t, err)
		var malformed *MalformedTitleError
		require.True(t, errors.As(err, &malformed))
		assert.Equal(t, "lonely", malformed.Title)
	})

	t.Run("path geometry becomes a cubic curve", func(t *testing.T) {
		g := edgeGroup(t, `<g id="edge6" class="edge"><title>a->b</title>`+
			`<path d="M100,100C100,0 200,0 200,100"/></g>`)

		e, err := factory.FromSVG(g)
		require.NoError(t, err)
		require.NotNil(t, e.Curve)
		assert.True(t, e.Curve.IsBezier)
		require.Len(t, e.Curve.Points, 4)
		assert.Equal(t, geometry.NewPoint(100, 100), e.Curve.Start)
		assert.Equal(t, geometry.NewPoint(200, 100), e.Curve.End)
	})

	t.Run("straight path geometry becomes a line", func(t *testing.T) {
		g := edgeGroup(t, `<g id="edge7" class="edge"><title>a->b</title>`+
			`<path d="M0,0C25,25 75,75 100,100"/></g>`)

		e, err := factory.FromSVG(g)
		require.NoError(t, err)
		require.NotNil(t, e.Curve)
		assert.False(t, e.Curve.IsBezier)
	})

	t.Run("multi-segment path merges into one curve spanning the whole path", func(t *testing.T) {
		g := edgeGroup(t, `<g id="edge9" class="edge"><title>a->b</title>`+
			`<path d="M0,0C0,50 50,100 100,100 150,100 200,50 200,0"/></g>`)

		e, err := factory.FromSVG(g)
		require.NoError(t, err)
		require.NotNil(t, e.Curve)
		// the merged curve keeps the path's true endpoints
		assert.Equal(t, geometry.NewPoint(0, 0), e.Curve.Start)
		assert.Equal(t, geometry.NewPoint(200, 0), e.Curve.End)
		assert.False(t, e.Curve.IsBezier)
		assert.Greater(t, len(e.Curve.Points), 2)
	})

	t.Run("mixed straight and curved segments merge end to end", func(t *testing.T) {
		g := edgeGroup(t, `<g id="edge10" class="edge"><title>a->b</title>`+
			`<path d="M0,0L50,0C50,50 100,50 100,100"/></g>`)

		e, err := factory.FromSVG(g)
		require.NoError(t, err)
		require.NotNil(t, e.Curve)
		assert.Equal(t, geometry.NewPoint(0, 0), e.Curve.Start)
		assert.Equal(t, geometry.NewPoint(100, 100), e.Curve.End)
	})

	t.Run("unparseable path propagates an error", func(t *testing.T) {
		g := edgeGroup(t, `<g id="edge8" class="edge"><title>a->b</title>`+
			`<path d="M0,0L10,notanumber"/></g>`)

		_, err := factory.FromSVG(g)
		assert.Error(t, err)
	})
}
