// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"math"

	"github.com/cpmech/csgeom/vec3"
	"github.com/cpmech/gosl/chk"
)

// Sphere is centered at Center with Radius > 0.
type Sphere struct {
	Center      vec3.Coord
	Radius      float64
	BoundaryTag BoundaryKind
}

// NewSphere validates and returns a Sphere.
func NewSphere(center vec3.Coord, radius float64, boundary BoundaryKind) (*Sphere, error) {
	if radius <= 0 {
		return nil, chk.Err("sphere radius must be positive; got %v", radius)
	}
	if boundary == Reflective {
		return nil, chk.Err("sphere cannot carry a reflective boundary; only Plane may")
	}
	return &Sphere{Center: center, Radius: radius, BoundaryTag: boundary}, nil
}

// Kind implements Surface
func (s *Sphere) Kind() Kind { return KindSphere }

// Boundary implements Surface
func (s *Sphere) Boundary() BoundaryKind { return s.BoundaryTag }

// Intersect implements Surface per §4.2.
func (s *Sphere) Intersect(r Ray) (bool, float64) {
	d := r.Origin.Sub(s.Center)
	t0 := -r.Direction.Dot(d)
	delta := t0*t0 - d.LengthSq() + s.Radius*s.Radius
	if delta < 0 {
		return false, 0
	}
	sq := math.Sqrt(delta)
	near, far := t0-sq, t0+sq
	if near < 0 && far < 0 {
		return false, 0
	}
	if near < 0 && far >= 0 {
		return true, far
	}
	return true, near
}

// Halfspace implements Surface: sign of |p−C|²−r² (inside negative)
func (s *Sphere) Halfspace(p vec3.Coord) int {
	d := p.Sub(s.Center).LengthSq() - s.Radius*s.Radius
	if d <= 0 {
		return -1
	}
	return 1
}
