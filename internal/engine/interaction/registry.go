package interaction

import (
	"slices"

	"github.com/Faultbox/partview/internal/engine/bvh"
	"github.com/Faultbox/partview/internal/engine/picking"
)

// SpatialIndex accelerates closest-hit queries over world-space bodies.
type SpatialIndex interface {
	Rebuild(bodies []picking.Traceable)
	ClosestHit(r picking.Ray) (picking.IntersectInfo, bool)
}

// Registry is the ordered set of volumes of the active tool.
type Registry struct {
	volumes []*Volume
	index   SpatialIndex
}

// NewRegistry creates a registry. A nil index rebuilds a hierarchy per query.
func NewRegistry(index SpatialIndex) *Registry {
	if index == nil {
		index = bvh.NewRebuildIndex()
	}
	return &Registry{index: index}
}

// Add appends volumes in order.
func (r *Registry) Add(volumes ...*Volume) {
	r.volumes = append(r.volumes, volumes...)
}

// Remove deletes v and reports whether it was present.
func (r *Registry) Remove(v *Volume) bool {
	i := r.IndexOf(v)
	if i < 0 {
		return false
	}
	r.volumes = slices.Delete(r.volumes, i, i+1)
	return true
}

// Clear removes every volume.
func (r *Registry) Clear() {
	r.volumes = nil
}

// Len returns the number of volumes.
func (r *Registry) Len() int {
	return len(r.volumes)
}

// At returns the volume at index i, or nil when out of range.
func (r *Registry) At(i int) *Volume {
	if i < 0 || i >= len(r.volumes) {
		return nil
	}
	return r.volumes[i]
}

// IndexOf returns the index of v, or -1.
func (r *Registry) IndexOf(v *Volume) int {
	return slices.Index(r.volumes, v)
}

// Volumes returns a snapshot of the volumes in order.
func (r *Registry) Volumes() []*Volume {
	return slices.Clone(r.volumes)
}

// FindHit resolves which volume owns the closest hit along ray.
func (r *Registry) FindHit(ray picking.Ray) (int, picking.IntersectInfo, bool) {
	bodies := make([]picking.Traceable, 0, len(r.volumes))
	for _, v := range r.volumes {
		if v.collision != nil {
			bodies = append(bodies, bvh.NewTransformed(v.collision, v.transform))
		}
	}
	if len(bodies) == 0 {
		return -1, picking.IntersectInfo{}, false
	}

	r.index.Rebuild(bodies)
	info, ok := r.index.ClosestHit(ray)
	if !ok || info.Hit == nil {
		return -1, picking.IntersectInfo{}, false
	}

	// The hit is a leaf body; find the first volume whose geometry holds it.
	var inside []picking.Traceable
	hitBounds := info.Hit.Bounds()
	for i, v := range r.volumes {
		if v.collision == nil {
			continue
		}
		inside = v.collision.Contained(hitBounds, inside[:0])
		for _, body := range inside {
			if body == info.Hit {
				return i, info, true
			}
		}
	}
	return -1, picking.IntersectInfo{}, false
}
