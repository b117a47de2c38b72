package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnrichFromGraph(t *testing.T) {
	t.Run("existing values are never overwritten", func(t *testing.T) {
		o := NewGraphObj("node1", "G")
		o.SetAttr("color", "red")

		o.EnrichFromGraph([]Attr{
			{Key: "color", Value: "blue"},
			{Key: "shape", Value: "box"},
		})

		color, ok := o.Attr("color")
		assert.True(t, ok)
		assert.Equal(t, "red", color)
		shape, ok := o.Attr("shape")
		assert.True(t, ok)
		assert.Equal(t, "box", shape)
	})

	t.Run("nil values count as unset", func(t *testing.T) {
		o := NewGraphObj("node1", "G")
		o.SetAttr("color", nil)

		o.EnrichFromGraph([]Attr{{Key: "color", Value: "blue"}})

		color, ok := o.Attr("color")
		assert.True(t, ok)
		assert.Equal(t, "blue", color)
	})

	t.Run("enrichment is idempotent", func(t *testing.T) {
		o := NewGraphObj("edge1", "G")
		defaults := []Attr{
			{Key: "color", Value: "blue"},
			{Key: "style", Value: "dashed"},
		}

		o.EnrichFromGraph(defaults)
		first := map[string]any{}
		for k, v := range o.Attrs {
			first[k] = v
		}

		o.EnrichFromGraph(defaults)
		o.EnrichFromGraph(defaults)
		assert.Equal(t, first, o.Attrs)
	})

	t.Run("unset attribute reads as absent", func(t *testing.T) {
		o := NewGraphObj("n", "G")
		_, ok := o.Attr("missing")
		assert.False(t, ok)
	})
}
