// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csg

import (
	"github.com/cpmech/csgeom/region"
	"github.com/cpmech/csgeom/surface"
	"github.com/cpmech/csgeom/vec3"
	"github.com/cpmech/gosl/chk"
)

// Ray is the kernel's (origin, direction) pair, re-exported from surface
// so callers need not import that package just to build one.
type Ray = surface.Ray

// BoundaryKind is re-exported from surface for the same reason.
type BoundaryKind = surface.BoundaryKind

// The three boundary kinds, re-exported from surface.
const (
	Transmission = surface.Transmission
	Vacuum       = surface.Vacuum
	Reflective   = surface.Reflective
)

// NewRay returns a Ray with the given origin and (already-unit) direction.
func NewRay(origin, direction vec3.Coord) Ray {
	return surface.NewRay(origin, direction)
}

// Eps is the geometric bump (§6): the only numerical tolerance in the
// kernel, applied to push an advanced ray origin just past the crossed
// surface so its side is unambiguous to subsequent queries. Very large
// scene coordinates (≳1e6) may need a scaled bump; this is flagged as an
// open question in SPEC_FULL.md and not addressed by v1.
const Eps = 1e-9

// Advance is the result of FindIntersection/FindIntersectionInGeometry:
// the advanced ray, the index of the region whose surface was crossed,
// and that surface's boundary kind.
type Advance struct {
	Ray      Ray
	RegionID int
	Boundary BoundaryKind
}

// FindIntersection finds the nearest forward intersection of r with the
// given regions, applies the crossed surface's boundary, and returns the
// advanced ray (§4.6). ok is false if no region is hit; the core leaves
// this explicit rather than reproducing the reference's unguarded index
// dereference (§9).
func FindIntersection(r Ray, regions []region.Region) (adv Advance, ok bool) {
	best := -1
	bestT := 0.0
	for i, reg := range regions {
		hit, t := reg.Surface.Intersect(r)
		if !hit {
			continue
		}
		if best == -1 || t < bestT {
			best, bestT = i, t
		}
	}
	if best == -1 {
		return Advance{}, false
	}

	crossed := regions[best].Surface
	originPast := r.At(bestT + Eps)
	advanced := Ray{Origin: originPast, Direction: r.Direction}

	switch crossed.Boundary() {
	case surface.Reflective:
		plane, isPlane := crossed.(*surface.Plane)
		if !isPlane {
			chk.Panic("reflective boundary on a non-plane surface at region %d; only Plane may reflect", best)
		}
		reflected := surface.Reflect(advanced, plane)
		reflected.Origin = reflected.Origin.Add(reflected.Direction.Scale(2 * Eps))
		return Advance{Ray: reflected, RegionID: best, Boundary: surface.Reflective}, true
	case surface.Vacuum:
		return Advance{Ray: advanced, RegionID: best, Boundary: surface.Vacuum}, true
	default:
		return Advance{Ray: advanced, RegionID: best, Boundary: surface.Transmission}, true
	}
}

// FindIntersectionInGeometry resolves r.Origin's current cell in g via
// FindCellID, then finds the intersection against that cell's regions. ok
// is false if the origin is outside the bounding box or every cell, or if
// the current cell has no hit for r.
func FindIntersectionInGeometry(r Ray, g Geometry) (adv Advance, ok bool) {
	id := FindCellID(r.Origin, g)
	if id == NoCell {
		return Advance{}, false
	}
	return FindIntersection(r, g.Cells[id-1].Regions)
}
