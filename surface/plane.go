// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"math"

	"github.com/cpmech/csgeom/vec3"
	"github.com/cpmech/gosl/chk"
)

// Plane is an infinite flat surface through Point with unit Normal.
// It is the only primitive allowed to carry a Reflective boundary (§3, §9).
type Plane struct {
	Point       vec3.Coord
	Normal      vec3.Coord
	BoundaryTag BoundaryKind
}

// NewPlane validates and returns a Plane. The normal must be non-zero; it
// is unitized on construction so callers may pass an un-normalized normal.
func NewPlane(point, normal vec3.Coord, boundary BoundaryKind) (*Plane, error) {
	if normal.IsZero() {
		return nil, chk.Err("plane normal must not be the zero vector")
	}
	return &Plane{Point: point, Normal: normal.Unit(), BoundaryTag: boundary}, nil
}

// Kind implements Surface
func (p *Plane) Kind() Kind { return KindPlane }

// Boundary implements Surface
func (p *Plane) Boundary() BoundaryKind { return p.BoundaryTag }

// Intersect implements Surface per §4.2: t = ((P−O)·N) / (D·N)
func (p *Plane) Intersect(r Ray) (bool, float64) {
	denom := r.Direction.Dot(p.Normal)
	if math.Abs(denom) < tinyDenom {
		return false, 0
	}
	t := p.Point.Sub(r.Origin).Dot(p.Normal) / denom
	if t < 0 || math.IsInf(t, 1) {
		return false, 0
	}
	return true, t
}

// Halfspace implements Surface: sign of N·(p−P)
func (p *Plane) Halfspace(q vec3.Coord) int {
	d := p.Normal.Dot(q.Sub(p.Point))
	if d <= 0 {
		return -1
	}
	return 1
}

// Reflect mirrors ray's direction across the plane's normal, keeping the
// same origin, per §4.7. Defined only for planes.
func Reflect(r Ray, p *Plane) Ray {
	d := r.Direction.Sub(p.Normal.Scale(2 * r.Direction.Dot(p.Normal)))
	return Ray{Origin: r.Origin, Direction: d}
}
