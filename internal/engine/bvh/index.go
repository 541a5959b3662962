package bvh

import (
	"go.uber.org/zap"

	"github.com/Faultbox/partview/internal/engine/picking"
	"github.com/Faultbox/partview/internal/logger"
)

// RebuildIndex is a spatial index that rebuilds its hierarchy on every
// Rebuild call. Body transforms can change between queries, so nothing is
// cached across rebuilds.
type RebuildIndex struct {
	tree *Hierarchy
	log  *zap.Logger
}

// NewRebuildIndex creates an empty index.
func NewRebuildIndex() *RebuildIndex {
	return &RebuildIndex{log: logger.Named("bvh")}
}

// Rebuild replaces the indexed bodies.
func (x *RebuildIndex) Rebuild(bodies []picking.Traceable) {
	x.tree = Build(bodies)
	if x.log == nil {
		x.log = logger.Named("bvh")
	}
	x.log.Debug("hierarchy rebuilt", zap.Int("bodies", x.tree.Len()))
}

// ClosestHit returns the nearest hit among the indexed bodies.
func (x *RebuildIndex) ClosestHit(r picking.Ray) (picking.IntersectInfo, bool) {
	return x.tree.Intersect(r)
}
