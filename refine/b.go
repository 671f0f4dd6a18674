/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package refine

import (
	"github.com/figtable/attachcore/backend"
	"github.com/figtable/attachcore/config"
	"github.com/figtable/attachcore/geometry"
)

// objectPadExpandStep/objectPadExpandMax implement the far-edge recovery
// step (§4.6: "expanded outward in 60-pt steps up to 200 pt").
const (
	objectPadExpandStep  = 60.0
	objectPadExpandMax   = 200.0
	farEdgeFlushTolerance = 2.0
)

// PhaseB merges drawings/images intersecting window into connected
// components, keeps the component nearest the caption (unioning
// cross-axis stacks so side-by-side sub-figures survive), and snaps the
// near edge onto it (§4.6). By default only the near edge moves
// (RefineNearEdgeOnly); if the far edge sits flush against an object it
// is instead expanded outward to recover a cropped half.
func PhaseB(c config.Config, isFigure, above bool, window geometry.Rect, drawings []backend.DrawingObject, images []backend.ImageRect) (geometry.Rect, []string) {
	if window.IsEmpty() {
		return window, nil
	}
	minAreaRatio := c.ObjectMinAreaRatioFor(isFigure)
	pageArea := window.Area() // area ratio is relative to the window itself, the only area context Phase B has

	var objs []geometry.Rect
	for _, d := range drawings {
		inter := d.BBox.Intersect(window)
		if inter.IsEmpty() {
			continue
		}
		if inter.Area()/pageArea < minAreaRatio {
			continue
		}
		objs = append(objs, d.BBox)
	}
	for _, im := range images {
		inter := im.BBox.Intersect(window)
		if inter.IsEmpty() {
			continue
		}
		if inter.Area()/pageArea < minAreaRatio {
			continue
		}
		objs = append(objs, im.BBox)
	}
	if len(objs) == 0 {
		return window, nil
	}

	components := mergeComponents(objs, c.ObjectMergeGapPt)
	nearest := nearestComponent(components, window, above)
	if nearest.IsEmpty() {
		return window, nil
	}

	var trace []string
	result := window
	pad := c.ObjectPadPt

	newNear := nearest.NearY(above) // the component edge touching the near side
	newNear = addPad(above, newNear, pad)
	result = result.WithNearEdge(above, clampTowardOriginal(above, window.NearY(above), newNear))
	trace = append(trace, "B-near-snap")

	if c.RefineNearEdgeOnly {
		if objectFlushAtFarEdge(objs, window, above) {
			result = expandFarEdge(objs, result, above)
			trace = append(trace, "B-far-expand")
		}
		return result, trace
	}

	newFar := nearest.FarY(above)
	newFar = addPad(!above, newFar, pad)
	result = result.WithFarEdge(above, newFar)
	trace = append(trace, "B-far-snap")
	return result, trace
}

// addPad pushes v outward (away from the window center) by pad points;
// "outward" for the near side of an "above" window is downward when
// adding pad to the far edge, and the opposite for near.
func addPad(above bool, v, pad float64) float64 {
	if above {
		return v - pad
	}
	return v + pad
}

// clampTowardOriginal never lets the refined near edge move past the
// window's own original near edge (it can only shrink the window, not
// grow it).
func clampTowardOriginal(above bool, original, candidate float64) float64 {
	if above {
		if candidate > original {
			return original
		}
		return candidate
	}
	if candidate < original {
		return original
	}
	return candidate
}

// mergeComponents unions rects within gap of each other into connected
// components.
func mergeComponents(rects []geometry.Rect, gap float64) []geometry.Rect {
	n := len(rects)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rects[i].Pad(gap).Overlaps(rects[j]) {
				ri, rj := find(i), find(j)
				if ri != rj {
					parent[ri] = rj
				}
			}
		}
	}
	groups := map[int]geometry.Rect{}
	for i, r := range rects {
		root := find(i)
		groups[root] = groups[root].Union(r)
	}
	out := make([]geometry.Rect, 0, len(groups))
	for _, r := range groups {
		out = append(out, r)
	}
	return out
}

// nearestComponent picks the component closest to the window's near
// edge; components that stack along the cross-axis (share x-overlap,
// within mergeGap-scale vertical proximity) are unioned so multi-panel
// sub-figures survive as one (§4.6 "take their union").
func nearestComponent(components []geometry.Rect, window geometry.Rect, above bool) geometry.Rect {
	if len(components) == 0 {
		return geometry.Rect{}
	}
	best := components[0]
	bestDist := window.DistanceFromNear(above, best.NearY(above))
	for _, comp := range components[1:] {
		d := window.DistanceFromNear(above, comp.NearY(above))
		if d < bestDist {
			best, bestDist = comp, d
		}
	}
	union := best
	for _, comp := range components {
		if comp == best {
			continue
		}
		xOverlap := comp.X0 < best.X1 && best.X0 < comp.X1
		if xOverlap {
			union = union.Union(comp)
		}
	}
	return union
}

// objectFlushAtFarEdge reports whether any object sits within
// farEdgeFlushTolerance pt of window's far edge (§4.6 "flush within 2pt").
func objectFlushAtFarEdge(objs []geometry.Rect, window geometry.Rect, above bool) bool {
	farY := window.FarY(above)
	for _, o := range objs {
		var edge float64
		if above {
			edge = o.Y0
		} else {
			edge = o.Y1
		}
		if absDiff(edge, farY) <= farEdgeFlushTolerance {
			return true
		}
	}
	return false
}

// expandFarEdge grows the far edge outward in objectPadExpandStep
// increments, re-testing objectFlushAtFarEdge against the expanded edge
// after each step, stopping as soon as the object is no longer flush or
// the total expansion reaches objectPadExpandMax (§4.6: "expanded outward
// in 60-pt steps up to 200 pt to recover a cropped half").
func expandFarEdge(objs []geometry.Rect, window geometry.Rect, above bool) geometry.Rect {
	result := window
	expanded := 0.0
	for expanded < objectPadExpandMax {
		step := objectPadExpandStep
		if expanded+step > objectPadExpandMax {
			step = objectPadExpandMax - expanded
		}
		if above {
			result = result.WithFarEdge(above, result.Y0-step)
		} else {
			result = result.WithFarEdge(above, result.Y1+step)
		}
		expanded += step
		if !objectFlushAtFarEdge(objs, result, above) {
			break
		}
	}
	return result
}
