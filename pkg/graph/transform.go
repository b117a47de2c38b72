package graph

import (
	"regexp"
	"strconv"

	"github.com/khushaljethava/graphviz2drawio/pkg/geometry"
)

///////////////////////////////////////////////////////////////////////////////
/// TRANSFORM
///////////////////////////////////////////////////////////////////////////////

var translateRegex = regexp.MustCompile(`translate\(\s*(-?[\d.]+)[\s,]+(-?[\d.]+)\s*\)`)
var scaleRegex = regexp.MustCompile(`scale\(\s*(-?[\d.]+)(?:[\s,]+(-?[\d.]+))?\s*\)`)

// Transform is the coordinate context the rendering layer gives the
// curve parser: the translate and scale of the enclosing graph group.
// Path coordinates are mapped into output space before any geometry is
// built from them.
type Transform struct {
	Dx     float64
	Dy     float64
	ScaleX float64
	ScaleY float64
}

// IdentityTransform returns the transform that leaves points unchanged
func IdentityTransform() Transform {
	return Transform{Dx: 0, Dy: 0, ScaleX: 1, ScaleY: 1}
}

// ParseTransform extracts translate and scale from an SVG transform
// attribute such as "scale(1 1) rotate(0) translate(4 256)".
// Components that are absent keep their identity values.
func ParseTransform(attr string) Transform {
	ret := IdentityTransform()
	if m := translateRegex.FindStringSubmatch(attr); m != nil {
		if x, err := strconv.ParseFloat(m[1], 64); err == nil {
			ret.Dx = x
		}
		if y, err := strconv.ParseFloat(m[2], 64); err == nil {
			ret.Dy = y
		}
	}
	if m := scaleRegex.FindStringSubmatch(attr); m != nil {
		if sx, err := strconv.ParseFloat(m[1], 64); err == nil {
			ret.ScaleX = sx
			ret.ScaleY = sx
		}
		if m[2] != "" {
			if sy, err := strconv.ParseFloat(m[2], 64); err == nil {
				ret.ScaleY = sy
			}
		}
	}
	return ret
}

// Apply maps a point from path coordinates into output coordinates
func (t Transform) Apply(p geometry.Point) geometry.Point {
	return geometry.Point{
		X: p.X*t.ScaleX + t.Dx,
		Y: p.Y*t.ScaleY + t.Dy,
	}
}
