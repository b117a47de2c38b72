package graph

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/khushaljethava/graphviz2drawio/pkg/geometry"
)

///////////////////////////////////////////////////////////////////////////////
/// CURVE FACTORY
///////////////////////////////////////////////////////////////////////////////

// Regular expression to match path commands: a letter followed by its
// parameters, up to the next command letter
var commandRegex = regexp.MustCompile(`([MLHVCSQTAZmlhvcsqtaz])[\s,]*([^MLHVCSQTAZmlhvcsqtaz]*)`)

// CurveFactory turns the drawing-command string of an SVG <path> into
// Curve values, mapping every coordinate through the transform of the
// enclosing graph group. Consecutive straight segments merge into one
// polyline Curve; each genuinely curved cubic becomes its own Bézier
// Curve. A cubic whose control points sit on its chord is downgraded
// to a straight segment so the output format can use a plain connector.
// Quadratic, smooth-shorthand and arc commands are rewritten as cubics
// before that classification.
type CurveFactory struct {
	transform Transform
}

func NewCurveFactory(transform Transform) *CurveFactory {
	return &CurveFactory{transform: transform}
}

// FromPath parses an SVG path d attribute such as
// "M446.4,291.7C439.9,282.6 430.1,269.8 421.8,259.1" and returns the
// ordered curve segments it describes
func (f *CurveFactory) FromPath(d string) ([]*geometry.Curve, error) {
	matches := commandRegex.FindAllStringSubmatch(d, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no valid path commands found in %q", d)
	}

	var curves []*geometry.Curve
	var run []geometry.Point // pending polyline anchors, already transformed
	var current geometry.Point
	var subpathStart geometry.Point
	havePoint := false

	// reflection state for the smooth shorthands, in raw coordinates
	var prevCubicCtrl, prevQuadCtrl geometry.Point
	havePrevCubic := false
	havePrevQuad := false

	// flush the pending polyline run into a single straight Curve
	flush := func() error {
		if len(run) < 2 {
			run = nil
			return nil
		}
		c, err := geometry.NewPolyline(run...)
		if err != nil {
			return err
		}
		curves = append(curves, c)
		run = nil
		return nil
	}

	// lineTo extends the pending polyline run to the given point
	lineTo := func(p geometry.Point) {
		if len(run) == 0 {
			run = append(run, f.transform.Apply(current))
		}
		run = append(run, f.transform.Apply(p))
		current = p
	}

	// cubicTo emits one cubic segment, downgrading it to a straight
	// run when it classifies as linear
	cubicTo := func(p1, p2, p3 geometry.Point) error {
		bez := geometry.NewBezier(
			f.transform.Apply(current),
			f.transform.Apply(p1),
			f.transform.Apply(p2),
			f.transform.Apply(p3),
		)
		if bez.IsLinear() {
			lineTo(p3)
			return nil
		}
		if err := flush(); err != nil {
			return err
		}
		curves = append(curves, bez)
		current = p3
		return nil
	}

	// quadTo elevates a quadratic segment to the equivalent cubic
	quadTo := func(q, p3 geometry.Point) error {
		p1 := current.Add(q.Sub(current).Scale(2.0 / 3.0))
		p2 := p3.Add(q.Sub(p3).Scale(2.0 / 3.0))
		return cubicTo(p1, p2, p3)
	}

	for _, match := range matches {
		letter := match[1]
		params, err := parseParams(match[2])
		if err != nil {
			return nil, fmt.Errorf("failed to parse command %q: %w", letter, err)
		}
		relative := letter >= "a" && letter <= "z"
		// an initial relative moveto is treated as absolute
		if relative && !havePoint && letter != "m" {
			return nil, fmt.Errorf("relative command %q without a current point", letter)
		}

		switch strings.ToUpper(letter) {
		case "M":
			if len(params) < 2 || len(params)%2 != 0 {
				return nil, fmt.Errorf("command %s requires coordinate pairs", letter)
			}
			if err := flush(); err != nil {
				return nil, err
			}
			current = resolve(current, params[0], params[1], relative && havePoint)
			subpathStart = current
			havePoint = true
			// extra pairs on a move are implicit line commands
			for i := 2; i+1 < len(params); i += 2 {
				lineTo(resolve(current, params[i], params[i+1], relative))
			}
		case "L":
			if len(params) < 2 || len(params)%2 != 0 {
				return nil, fmt.Errorf("command %s requires coordinate pairs", letter)
			}
			for i := 0; i+1 < len(params); i += 2 {
				lineTo(resolve(current, params[i], params[i+1], relative))
			}
		case "H":
			if len(params) < 1 {
				return nil, fmt.Errorf("command %s requires a coordinate", letter)
			}
			for _, v := range params {
				p := geometry.NewPoint(v, current.Y)
				if relative {
					p.X += current.X
				}
				lineTo(p)
			}
		case "V":
			if len(params) < 1 {
				return nil, fmt.Errorf("command %s requires a coordinate", letter)
			}
			for _, v := range params {
				p := geometry.NewPoint(current.X, v)
				if relative {
					p.Y += current.Y
				}
				lineTo(p)
			}
		case "C":
			if len(params) < 6 || len(params)%6 != 0 {
				return nil, fmt.Errorf("command %s requires triples of coordinate pairs", letter)
			}
			for i := 0; i+5 < len(params); i += 6 {
				p1 := resolve(current, params[i], params[i+1], relative)
				p2 := resolve(current, params[i+2], params[i+3], relative)
				p3 := resolve(current, params[i+4], params[i+5], relative)
				if err := cubicTo(p1, p2, p3); err != nil {
					return nil, err
				}
				prevCubicCtrl, havePrevCubic = p2, true
			}
		case "S":
			if len(params) < 4 || len(params)%4 != 0 {
				return nil, fmt.Errorf("command %s requires pairs of coordinate pairs", letter)
			}
			for i := 0; i+3 < len(params); i += 4 {
				p2 := resolve(current, params[i], params[i+1], relative)
				p3 := resolve(current, params[i+2], params[i+3], relative)
				// first control is the previous second control mirrored
				// about the current point
				p1 := current
				if havePrevCubic {
					p1 = current.Add(current.Sub(prevCubicCtrl))
				}
				if err := cubicTo(p1, p2, p3); err != nil {
					return nil, err
				}
				prevCubicCtrl, havePrevCubic = p2, true
			}
		case "Q":
			if len(params) < 4 || len(params)%4 != 0 {
				return nil, fmt.Errorf("command %s requires pairs of coordinate pairs", letter)
			}
			for i := 0; i+3 < len(params); i += 4 {
				q := resolve(current, params[i], params[i+1], relative)
				p3 := resolve(current, params[i+2], params[i+3], relative)
				if err := quadTo(q, p3); err != nil {
					return nil, err
				}
				prevQuadCtrl, havePrevQuad = q, true
			}
		case "T":
			if len(params) < 2 || len(params)%2 != 0 {
				return nil, fmt.Errorf("command %s requires coordinate pairs", letter)
			}
			for i := 0; i+1 < len(params); i += 2 {
				p3 := resolve(current, params[i], params[i+1], relative)
				q := current
				if havePrevQuad {
					q = current.Add(current.Sub(prevQuadCtrl))
				}
				if err := quadTo(q, p3); err != nil {
					return nil, err
				}
				prevQuadCtrl, havePrevQuad = q, true
			}
		case "A":
			if len(params) < 7 || len(params)%7 != 0 {
				return nil, fmt.Errorf("command %s requires seven parameters per arc", letter)
			}
			for i := 0; i+6 < len(params); i += 7 {
				end := resolve(current, params[i+5], params[i+6], relative)
				arc := geometry.NewEllipticalArc(
					current, end,
					params[i], params[i+1], params[i+2]*math.Pi/180,
					params[i+3] != 0, params[i+4] != 0,
				)
				cubics := arc.Cubics()
				if len(cubics) == 0 {
					// a zero radius collapses the arc to its chord
					lineTo(end)
					continue
				}
				for _, c := range cubics {
					if err := cubicTo(c.Points[1], c.Points[2], c.Points[3]); err != nil {
						return nil, err
					}
				}
			}
		case "Z":
			lineTo(subpathStart)
		default:
			return nil, fmt.Errorf("command letter %s not currently supported", letter)
		}

		// reflection only reaches back one command
		switch strings.ToUpper(letter) {
		case "C", "S":
			havePrevQuad = false
		case "Q", "T":
			havePrevCubic = false
		default:
			havePrevCubic = false
			havePrevQuad = false
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}
	return curves, nil
}

// resolve turns one coordinate pair into a point, offsetting it from
// the current point for relative commands
func resolve(current geometry.Point, x, y float64, relative bool) geometry.Point {
	if relative {
		return geometry.NewPoint(current.X+x, current.Y+y)
	}
	return geometry.NewPoint(x, y)
}

// parseParams splits the parameter portion of a path command into floats
func parseParams(s string) ([]float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", " "))
	if s == "" {
		return nil, nil
	}
	parts := strings.Fields(s)
	params := make([]float64, 0, len(parts))
	for _, part := range parts {
		val, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid parameter value: %s", part)
		}
		params = append(params, val)
	}
	return params, nil
}
