// Package bvh builds bounding volume hierarchies over traceable bodies and
// answers closest-hit ray queries against them.
package bvh

import (
	"sort"

	"github.com/Faultbox/partview/internal/engine/picking"
)

// LeafSize is the threshold for splitting hierarchy nodes.
const LeafSize = 4

// Hierarchy is an immutable bounding volume hierarchy.
// It is itself traceable, so hierarchies can be nested or transformed.
type Hierarchy struct {
	root  *node
	count int
}

type node struct {
	bounds  picking.AABB
	left    *node
	right   *node
	entries []entry // only for leaf nodes
}

type entry struct {
	body     picking.Traceable
	index    int // position in the input slice, used to break distance ties
	bounds   picking.AABB
	centroid [3]float32
}

// Build constructs a hierarchy over bodies. Nil bodies are skipped.
// Returns nil when there is nothing to build.
func Build(bodies []picking.Traceable) *Hierarchy {
	entries := make([]entry, 0, len(bodies))
	for i, b := range bodies {
		if b == nil {
			continue
		}
		bounds := b.Bounds()
		entries = append(entries, entry{
			body:     b,
			index:    i,
			bounds:   bounds,
			centroid: bounds.Center().Array(),
		})
	}
	if len(entries) == 0 {
		return nil
	}
	return &Hierarchy{root: buildNode(entries), count: len(entries)}
}

func buildNode(entries []entry) *node {
	n := &node{bounds: picking.EmptyAABB()}
	centroids := picking.EmptyAABB()
	for _, e := range entries {
		n.bounds = n.bounds.Union(e.bounds)
		centroids = centroids.Expand(e.bounds.Center())
	}

	if len(entries) <= LeafSize {
		n.entries = entries
		return n
	}

	axis := centroids.LongestAxis()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].centroid[axis] < entries[j].centroid[axis]
	})

	mid := len(entries) / 2
	n.left = buildNode(entries[:mid])
	n.right = buildNode(entries[mid:])
	return n
}

// Len returns the number of bodies in the hierarchy.
func (h *Hierarchy) Len() int {
	if h == nil {
		return 0
	}
	return h.count
}

// Bounds returns the box enclosing every body.
func (h *Hierarchy) Bounds() picking.AABB {
	if h == nil {
		return picking.EmptyAABB()
	}
	return h.root.bounds
}

type closest struct {
	info  picking.IntersectInfo
	index int
	found bool
}

func (c *closest) offer(info picking.IntersectInfo, index int) {
	if !c.found || info.Distance < c.info.Distance ||
		(info.Distance == c.info.Distance && index < c.index) {
		c.info, c.index, c.found = info, index, true
	}
}

// Intersect returns the nearest hit along r. Equal distances resolve to the
// body that came first in the slice passed to Build.
func (h *Hierarchy) Intersect(r picking.Ray) (picking.IntersectInfo, bool) {
	if h == nil {
		return picking.IntersectInfo{}, false
	}
	var best closest
	h.root.intersect(r, &best)
	return best.info, best.found
}

func (n *node) intersect(r picking.Ray, best *closest) {
	if n.entries != nil {
		for _, e := range n.entries {
			if info, ok := e.body.Intersect(r); ok {
				best.offer(info, e.index)
			}
		}
		return
	}

	lt, lok := entryDistance(r, n.left.bounds)
	rt, rok := entryDistance(r, n.right.bounds)

	first, second := n.left, n.right
	ft, st, fok, sok := lt, rt, lok, rok
	if rok && (!lok || rt < lt) {
		first, second = n.right, n.left
		ft, st, fok, sok = rt, lt, rok, lok
	}

	if fok && (!best.found || ft <= best.info.Distance) {
		first.intersect(r, best)
	}
	if sok && (!best.found || st <= best.info.Distance) {
		second.intersect(r, best)
	}
}

// entryDistance returns where r enters box, or 0 when r starts inside it.
func entryDistance(r picking.Ray, box picking.AABB) (float32, bool) {
	if box.ContainsPoint(r.Origin) {
		return 0, true
	}
	return r.IntersectAABB(box)
}

// Contained appends every leaf body whose bounds intersect box.
func (h *Hierarchy) Contained(box picking.AABB, results []picking.Traceable) []picking.Traceable {
	if h == nil {
		return results
	}
	return h.root.contained(box, results)
}

func (n *node) contained(box picking.AABB, results []picking.Traceable) []picking.Traceable {
	if !n.bounds.Intersects(box) {
		return results
	}
	if n.entries != nil {
		for _, e := range n.entries {
			results = e.body.Contained(box, results)
		}
		return results
	}
	results = n.left.contained(box, results)
	return n.right.contained(box, results)
}
