// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"math"

	"github.com/cpmech/csgeom/vec3"
	"github.com/cpmech/gosl/chk"
)

// Cone has its apex at Tip, Axis (unit) pointing into the "real" nappe,
// and half-angle Theta in (0, π/2).
type Cone struct {
	Tip         vec3.Coord
	Axis        vec3.Coord
	Theta       float64
	BoundaryTag BoundaryKind
}

// NewCone validates and returns a Cone. Axis is unitized.
func NewCone(tip, axis vec3.Coord, theta float64, boundary BoundaryKind) (*Cone, error) {
	if axis.IsZero() {
		return nil, chk.Err("cone axis must not be the zero vector")
	}
	if theta <= 0 || theta >= math.Pi/2 {
		return nil, chk.Err("cone theta must be in (0, π/2); got %v", theta)
	}
	if boundary == Reflective {
		return nil, chk.Err("cone cannot carry a reflective boundary; only Plane may")
	}
	u := axis.Unit()
	return &Cone{Tip: tip, Axis: u, Theta: theta, BoundaryTag: boundary}, nil
}

// k returns cos²(Theta), the constant the quadric form is built from,
// computed as (1+cos 2θ)/2 so that θ=π/4 yields exactly 0.5.
func (c *Cone) k() float64 {
	return (1 + math.Cos(2*c.Theta)) / 2
}

// Kind implements Surface
func (c *Cone) Kind() Kind { return KindCone }

// Boundary implements Surface
func (c *Cone) Boundary() BoundaryKind { return c.BoundaryTag }

// Intersect implements Surface per §4.2. Roots on the shadow nappe or at
// or behind the apex plane are rejected via the (p−tip)·axis > 0 test.
func (c *Cone) Intersect(r Ray) (bool, float64) {
	v := r.Direction
	co := r.Origin.Sub(c.Tip)

	vDotAxis := v.Dot(c.Axis)
	coDotAxis := co.Dot(c.Axis)

	a := vDotAxis*vDotAxis - c.k()
	b := 2 * (vDotAxis*coDotAxis - v.Dot(co)*c.k())
	cc := coDotAxis*coDotAxis - co.Dot(co)*c.k()

	if math.Abs(a) < tinyDenom {
		if math.Abs(b) < tinyDenom {
			return false, 0
		}
		t := -cc / b
		if t >= 0 && c.onRealNappe(r, t) {
			return true, t
		}
		return false, 0
	}

	det := b*b - 4*a*cc
	if det < 0 {
		return false, 0
	}
	if det == 0 {
		// a tangential hit (including the apex, where the ray travels
		// exactly along the axis) is reported without the nappe filter,
		// matching the general "grazing" rule for all surfaces (§4.2).
		t := -b / (2 * a)
		if t >= 0 {
			return true, t
		}
		return false, 0
	}

	sq := math.Sqrt(det)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	best, ok := math.NaN(), false
	for _, t := range []float64{t1, t2} {
		if t >= 0 && c.onRealNappe(r, t) {
			if !ok || t < best {
				best, ok = t, true
			}
		}
	}
	if !ok {
		return false, 0
	}
	return true, best
}

// onRealNappe reports whether the hit point at parameter t lies on the
// nappe the axis points into, excluding the shadow cone and the apex plane.
func (c *Cone) onRealNappe(r Ray, t float64) bool {
	p := r.At(t)
	return p.Sub(c.Tip).Dot(c.Axis) > 0
}

// Halfspace implements Surface: sign of ((p−tip)·axis)² − |p−tip|²·cos²θ
// (interior of the nappe, including the shadow nappe, is negative).
func (c *Cone) Halfspace(p vec3.Coord) int {
	d := p.Sub(c.Tip)
	val := d.Dot(c.Axis)*d.Dot(c.Axis) - d.LengthSq()*c.k()
	if val <= 0 {
		return -1
	}
	return 1
}
