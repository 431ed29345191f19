// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"math"

	"github.com/cpmech/csgeom/vec3"
	"github.com/cpmech/gosl/chk"
)

// InfCylinder is an infinite right circular cylinder with Axis (unit)
// through Center and Radius > 0.
type InfCylinder struct {
	Center      vec3.Coord
	Axis        vec3.Coord
	Radius      float64
	BoundaryTag BoundaryKind
}

// NewInfCylinder validates and returns an InfCylinder. Axis is unitized.
func NewInfCylinder(center, axis vec3.Coord, radius float64, boundary BoundaryKind) (*InfCylinder, error) {
	if radius <= 0 {
		return nil, chk.Err("cylinder radius must be positive; got %v", radius)
	}
	if axis.IsZero() {
		return nil, chk.Err("cylinder axis must not be the zero vector")
	}
	if boundary == Reflective {
		return nil, chk.Err("infinite cylinder cannot carry a reflective boundary; only Plane may")
	}
	return &InfCylinder{Center: center, Axis: axis.Unit(), Radius: radius, BoundaryTag: boundary}, nil
}

// Kind implements Surface
func (c *InfCylinder) Kind() Kind { return KindInfCylinder }

// Boundary implements Surface
func (c *InfCylinder) Boundary() BoundaryKind { return c.BoundaryTag }

// Intersect implements Surface per §4.2, using AB = Axis (unit vector,
// anchor A = Center) so |AB| = 1 simplifies the c term's scaling.
func (c *InfCylinder) Intersect(r Ray) (bool, float64) {
	ab := c.Axis
	ao := r.Origin.Sub(c.Center)

	dxab := r.Direction.Cross(ab)
	a := dxab.LengthSq()
	if a < tinyDenom {
		return false, 0 // ray parallel to the axis
	}
	aoxab := ao.Cross(ab)
	b := 2 * dxab.Dot(aoxab)
	cc := aoxab.LengthSq() - c.Radius*c.Radius*ab.LengthSq()

	det := b*b - 4*a*cc
	if det < 0 {
		return false, 0
	}
	sq := math.Sqrt(det)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 >= 0 {
		return true, t1
	}
	if t2 >= 0 {
		return true, t2
	}
	return false, 0
}

// Halfspace implements Surface: sign of |(p−C)×N|²−r² (inside negative)
func (c *InfCylinder) Halfspace(p vec3.Coord) int {
	d := p.Sub(c.Center).Cross(c.Axis).LengthSq() - c.Radius*c.Radius
	if d <= 0 {
		return -1
	}
	return 1
}
