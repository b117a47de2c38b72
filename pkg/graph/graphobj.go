package graph

///////////////////////////////////////////////////////////////////////////////
/// GRAPH OBJECT
///////////////////////////////////////////////////////////////////////////////

// Attr is one graph-level default attribute. Defaults arrive as an
// ordered list rather than a map because that is how they appear in
// the source document.
type Attr struct {
	Key   string
	Value any
}

// GraphObj is the base of every graph entity. It carries the entity's
// element id, the id of the enclosing graph, and the attribute set
// shared by nodes and edges.
type GraphObj struct {
	SID   string
	GID   string
	Attrs map[string]any
}

func NewGraphObj(sid string, gid string) GraphObj {
	return GraphObj{
		SID:   sid,
		GID:   gid,
		Attrs: map[string]any{},
	}
}

// Attr returns the value bound to the given attribute name. The second
// return value is false when the attribute is unset or nil.
func (o *GraphObj) Attr(key string) (any, bool) {
	v, ok := o.Attrs[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// SetAttr binds an attribute explicitly on this entity
func (o *GraphObj) SetAttr(key string, value any) {
	o.Attrs[key] = value
}

// EnrichFromGraph copies graph-level default attributes onto the
// entity. An attribute the entity already has bound to a non-nil value
// is never overwritten: the first explicit value wins. The operation is
// idempotent and independent of key order.
func (o *GraphObj) EnrichFromGraph(attrs []Attr) {
	for _, a := range attrs {
		if v, ok := o.Attrs[a.Key]; ok && v != nil {
			continue
		}
		o.Attrs[a.Key] = a.Value
	}
}
