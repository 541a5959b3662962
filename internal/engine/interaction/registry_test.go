package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/partview/internal/engine/bvh"
	"github.com/Faultbox/partview/internal/engine/picking"
	"github.com/Faultbox/partview/pkg/math"
)

func down() picking.Ray {
	return picking.NewRay(math.Vec3{Z: 100}, math.Vec3{Z: -1})
}

func TestFindHitSphereScenario(t *testing.T) {
	reg := NewRegistry(nil)
	reg.Add(NewSphereVolume("ball", 5))

	idx, info, ok := reg.FindHit(picking.NewRay(math.Vec3{Z: 10}, math.Vec3{Z: -1}))
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.InDelta(t, 5, info.Distance, 1e-4)
	assert.InDelta(t, 5, info.Point.Z, 1e-4)
	assert.InDelta(t, 0, info.Point.X, 1e-4)
	assert.InDelta(t, 0, info.Point.Y, 1e-4)

	_, _, ok = reg.FindHit(picking.NewRay(math.Vec3{X: 10, Y: 10, Z: 10}, math.Vec3{Z: -1}))
	assert.False(t, ok)
}

func TestFindHitNonOverlapping(t *testing.T) {
	reg := NewRegistry(nil)
	for i := 0; i < 3; i++ {
		v := NewSphereVolume("ball", 2)
		v.SetTransform(math.Translate(float32(i)*10, 0, 0))
		reg.Add(v)
	}

	idx, info, ok := reg.FindHit(picking.NewRay(math.Vec3{X: 10, Z: 100}, math.Vec3{Z: -1}))
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	bounds, _ := reg.At(1).WorldBounds()
	assert.True(t, bounds.ContainsPoint(info.Point), "hit point %+v outside %+v", info.Point, bounds)
}

func TestFindHitNearerOfTwo(t *testing.T) {
	reg := NewRegistry(nil)
	positions := []math.Vec3{{Z: -10}, {}, {X: 10}}
	for _, p := range positions {
		v := NewBoxVolume("cube", math.Vec3{X: 2, Y: 2, Z: 2})
		v.SetTransform(math.Translate(p.X, p.Y, p.Z))
		reg.Add(v)
	}

	idx, info, ok := reg.FindHit(down())
	require.True(t, ok)
	assert.Equal(t, 1, idx, "the volume at z=0 is nearer than the one at z=-10")
	assert.InDelta(t, 99, info.Distance, 1e-3)
}

func TestFindHitOverlappingOwnership(t *testing.T) {
	// The blocker overlaps the arrow tip's bounds but sits behind it.
	blocker := NewBoxVolume("blocker", math.Vec3{X: 4, Y: 4, Z: 4})
	blocker.SetTransform(math.Translate(0, 0, 3))

	shaft := bvh.NewBoxSize(math.Vec3{Z: 2}, math.Vec3{X: 0.5, Y: 0.5, Z: 4})
	tip := bvh.NewBoxSize(math.Vec3{Z: 5}, math.Vec3{X: 1, Y: 1, Z: 2})
	arrow := NewCompositeVolume("arrow", shaft, tip)

	reg := NewRegistry(nil)
	reg.Add(blocker, arrow)

	idx, info, ok := reg.FindHit(down())
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Same(t, tip, info.Hit)
}

func TestFindHitSkipsMissingGeometry(t *testing.T) {
	reg := NewRegistry(nil)
	reg.Add(NewVolume("label", KindCustom, nil))

	_, _, ok := reg.FindHit(down())
	assert.False(t, ok)

	ball := NewSphereVolume("ball", 1)
	reg.Add(ball)
	idx, _, ok := reg.FindHit(down())
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestEmptyCompositeHasNoGeometry(t *testing.T) {
	v := NewCompositeVolume("empty")
	assert.Nil(t, v.CollisionVolume())
	assert.Equal(t, KindComposite, v.Kind)
}

type countingIndex struct {
	bvh.RebuildIndex
	rebuilds int
}

func (c *countingIndex) Rebuild(bodies []picking.Traceable) {
	c.rebuilds++
	c.RebuildIndex.Rebuild(bodies)
}

func TestFindHitRebuildsPerQuery(t *testing.T) {
	idx := &countingIndex{}
	reg := NewRegistry(idx)
	v := NewSphereVolume("ball", 1)
	reg.Add(v)

	_, _, ok := reg.FindHit(down())
	require.True(t, ok)

	v.SetTransform(math.Translate(50, 0, 0))
	_, _, ok = reg.FindHit(down())
	assert.False(t, ok, "moved volume must not be hit at its old position")
	assert.Equal(t, 2, idx.rebuilds)
}

func TestRegistryRemove(t *testing.T) {
	reg := NewRegistry(nil)
	a, b := NewSphereVolume("a", 1), NewSphereVolume("b", 1)
	reg.Add(a, b)

	assert.True(t, reg.Remove(a))
	assert.False(t, reg.Remove(a))
	assert.Equal(t, 1, reg.Len())
	assert.Same(t, b, reg.At(0))
	assert.Nil(t, reg.At(1))
	assert.Nil(t, reg.At(-1))
}
