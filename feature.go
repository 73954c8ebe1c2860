package links

import (
	"fmt"
	"sync"
)

// Kind identifies what a [Feature] is. The set of kinds is closed; code
// switching on a Kind handles every value.
type Kind int

const (
	Fairway Kind = iota + 1
	Rough
	Green
	Bunker
)

// Kinds lists every kind, in containment priority order: a point covered by
// several features belongs to the first kind listed.
var Kinds = [...]Kind{Green, Bunker, Fairway, Rough}

func (k Kind) String() string {
	switch k {
	case Fairway:
		return "fairway"
	case Rough:
		return "rough"
	case Green:
		return "green"
	case Bunker:
		return "bunker"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind is the inverse of [Kind.String].
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown feature kind %q", ErrInvalidParameter, s)
}

// ParentKind says what a feature's anchor is derived from.
type ParentKind int

const (
	// ParentNone anchors the feature at Offset, in course coordinates.
	ParentNone ParentKind = iota
	// ParentCenterline anchors the feature at the centerline point Distance
	// yards from the tee, moved by Offset.
	ParentCenterline
	// ParentFeature anchors the feature at the anchor of feature Index,
	// moved by Offset.
	ParentFeature
)

// Placement positions a feature relative to its parent. The parent is
// referenced by index only; the course owns every feature.
type Placement struct {
	Parent   ParentKind
	Index    int
	Distance float64
	Offset   Vec2
}

// Feature is a closed shape on the course. Boundary is stored relative to
// the feature's anchor, which is resolved through the owning [Course].
type Feature struct {
	Kind      Kind
	Boundary  Polygon
	Placement Placement
}

// resolvedFeature caches a feature's absolute geometry. Anchors never change
// after generation, so the cache is filled at most once.
type resolvedFeature struct {
	once   sync.Once
	anchor Point
	abs    Polygon
	box    Rect
	err    error
}

// Anchor returns the absolute anchor of feature i.
func (c *Course) Anchor(i int) (Point, error) {
	r, err := c.resolve(i)
	if err != nil {
		return Point{}, err
	}
	return r.anchor, nil
}

// Absolute returns the boundary of feature i in course coordinates. The
// returned polygon is shared and must not be modified.
func (c *Course) Absolute(i int) (Polygon, error) {
	r, err := c.resolve(i)
	if err != nil {
		return nil, err
	}
	return r.abs, nil
}

func (c *Course) resolve(i int) (*resolvedFeature, error) {
	if i < 0 || i >= len(c.features) {
		return nil, fmt.Errorf("%w: feature index %d, have %d", ErrInvalidParameter, i, len(c.features))
	}
	r := &c.resolved[i]
	r.once.Do(func() {
		r.anchor, r.err = c.resolveAnchor(i)
		if r.err != nil {
			return
		}
		r.abs = c.features[i].Boundary.Translate(Vec2(r.anchor))
		r.box = r.abs.BoundingBox()
	})
	return r, r.err
}

func (c *Course) resolveAnchor(i int) (Point, error) {
	pl := c.features[i].Placement
	switch pl.Parent {
	case ParentNone:
		return Point(pl.Offset), nil
	case ParentCenterline:
		off, err := c.centerline.At(pl.Distance)
		if err != nil {
			return Point{}, fmt.Errorf("anchoring feature %d: %w", i, err)
		}
		return Pt(pl.Distance, c.baseline+off).Translate(pl.Offset), nil
	case ParentFeature:
		// Parents precede their children, which rules out cycles.
		if pl.Index < 0 || pl.Index >= i {
			return Point{}, fmt.Errorf("%w: feature %d has parent %d", ErrInvalidParameter, i, pl.Index)
		}
		parent, err := c.resolve(pl.Index)
		if err != nil {
			return Point{}, err
		}
		return parent.anchor.Translate(pl.Offset), nil
	default:
		return Point{}, fmt.Errorf("%w: feature %d has parent kind %d", ErrInvalidParameter, i, pl.Parent)
	}
}
