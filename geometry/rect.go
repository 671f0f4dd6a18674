/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package geometry implements the coordinate primitives shared by every
// stage of the attachment extraction core: a Rect in PDF points, origin
// top-left, x increasing right and y increasing down.
package geometry

import "math"

// Rect is an axis-aligned rectangle in PDF points, origin top-left.
// X0 <= X1 and Y0 <= Y1 always hold for a well-formed Rect.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// New returns a Rect built from the given corners, normalized so that
// X0<=X1 and Y0<=Y1.
func New(x0, y0, x1, y1 float64) Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{x0, y0, x1, y1}
}

// Width returns the rectangle's width.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the rectangle's height.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Area returns the rectangle's area.
func (r Rect) Area() float64 { return r.Width() * r.Height() }

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// CenterX returns the horizontal midpoint.
func (r Rect) CenterX() float64 { return (r.X0 + r.X1) / 2 }

// CenterY returns the vertical midpoint.
func (r Rect) CenterY() float64 { return (r.Y0 + r.Y1) / 2 }

// Union returns the smallest Rect enclosing both r and other.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rect{
		X0: math.Min(r.X0, other.X0),
		Y0: math.Min(r.Y0, other.Y0),
		X1: math.Max(r.X1, other.X1),
		Y1: math.Max(r.Y1, other.Y1),
	}
}

// Intersect returns the overlap of r and other. The result IsEmpty when
// they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := math.Max(r.X0, other.X0)
	y0 := math.Max(r.Y0, other.Y0)
	x1 := math.Min(r.X1, other.X1)
	y1 := math.Min(r.Y1, other.Y1)
	if x1 < x0 || y1 < y0 {
		return Rect{}
	}
	return Rect{x0, y0, x1, y1}
}

// Overlaps reports whether r and other share any area.
func (r Rect) Overlaps(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Contains reports whether other lies within r, up to eps points of
// tolerance on each edge.
func (r Rect) Contains(other Rect, eps float64) bool {
	return other.X0 >= r.X0-eps && other.Y0 >= r.Y0-eps &&
		other.X1 <= r.X1+eps && other.Y1 <= r.Y1+eps
}

// Pad returns r expanded by d points on every side.
func (r Rect) Pad(d float64) Rect {
	return Rect{r.X0 - d, r.Y0 - d, r.X1 + d, r.Y1 + d}
}

// Clamp returns r clipped to lie within bounds.
func (r Rect) Clamp(bounds Rect) Rect {
	return New(
		math.Max(r.X0, bounds.X0),
		math.Max(r.Y0, bounds.Y0),
		math.Min(r.X1, bounds.X1),
		math.Min(r.Y1, bounds.Y1),
	)
}

// WithNearEdge returns a copy of r with its near edge (the edge touching
// the caption, above=bottom edge Y1, below=top edge Y0) moved to v.
func (r Rect) WithNearEdge(above bool, v float64) Rect {
	if above {
		r.Y1 = v
	} else {
		r.Y0 = v
	}
	return r
}

// WithFarEdge returns a copy of r with its far edge moved to v.
func (r Rect) WithFarEdge(above bool, v float64) Rect {
	if above {
		r.Y0 = v
	} else {
		r.Y1 = v
	}
	return r
}

// NearY returns the near-edge y coordinate relative to the caption side.
func (r Rect) NearY(above bool) float64 {
	if above {
		return r.Y1
	}
	return r.Y0
}

// FarY returns the far-edge y coordinate relative to the caption side.
func (r Rect) FarY(above bool) float64 {
	if above {
		return r.Y0
	}
	return r.Y1
}

// DistanceFromNear returns how far y lies from the near edge, always >= 0
// for points inside the window on the correct side.
func (r Rect) DistanceFromNear(above bool, y float64) float64 {
	if above {
		return r.Y1 - y
	}
	return y - r.Y0
}
