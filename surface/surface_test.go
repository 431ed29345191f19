// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"math"
	"testing"

	"github.com/cpmech/csgeom/vec3"
	"github.com/cpmech/gosl/chk"
)

func Test_sphere_01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sphere_01: hit from outside (S1)")

	s, err := NewSphere(vec3.New(0, 0, 0), 1, Transmission)
	if err != nil {
		tst.Errorf("NewSphere failed: %v\n", err)
		return
	}
	r := NewRay(vec3.New(-3, 0, 0), vec3.New(1, 0, 0))

	hit, t := s.Intersect(r)
	if !hit {
		tst.Errorf("expected a hit\n")
		return
	}
	chk.Scalar(tst, "t", 1e-14, t, 2.0)
	chk.IntAssert(s.Halfspace(vec3.New(-3, 0, 0)), 1)
}

func Test_sphere_02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sphere_02: hit from inside, far root (S2)")

	s, _ := NewSphere(vec3.New(0, 0, 0), 1, Transmission)
	r := NewRay(vec3.New(0, 0, 0), vec3.New(1, 0, 0))

	hit, t := s.Intersect(r)
	if !hit {
		tst.Errorf("expected a hit\n")
		return
	}
	chk.Scalar(tst, "t", 1e-14, t, 1.0)
}

func Test_plane_01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plane_01: parallel ray misses (S3)")

	p, err := NewPlane(vec3.New(0, 0, 0), vec3.New(0, 0, 1), Transmission)
	if err != nil {
		tst.Errorf("NewPlane failed: %v\n", err)
		return
	}
	r := NewRay(vec3.New(0, 0, 1), vec3.New(1, 0, 0))

	hit, _ := p.Intersect(r)
	if hit {
		tst.Errorf("expected no hit for a ray parallel to the plane\n")
	}
}

func Test_cone_01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cone_01: apex hit and shadow nappe rejection (S4)")

	c, err := NewCone(vec3.New(0, 0, 0), vec3.New(0, 0, 1), math.Pi/4, Transmission)
	if err != nil {
		tst.Errorf("NewCone failed: %v\n", err)
		return
	}

	r := NewRay(vec3.New(0, 0, -5), vec3.New(0, 0, 1))
	hit, t := c.Intersect(r)
	if !hit {
		tst.Errorf("expected a hit travelling up the axis into the apex\n")
		return
	}
	chk.Scalar(tst, "t", 1e-13, t, 5.0)

	rShadow := NewRay(vec3.New(0, 0, -5), vec3.New(0, 0, -1))
	hitShadow, _ := c.Intersect(rShadow)
	if hitShadow {
		tst.Errorf("expected the shadow nappe to be filtered out\n")
	}
}

func Test_cylinder_01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cylinder_01: hit, miss, and axis-parallel rejection")

	c, err := NewInfCylinder(vec3.New(0, 0, 0), vec3.New(0, 0, 1), 1, Transmission)
	if err != nil {
		tst.Errorf("NewInfCylinder failed: %v\n", err)
		return
	}

	// hit: ray travelling along x crosses the unit cylinder at x=-1
	r := NewRay(vec3.New(-3, 0, 0), vec3.New(1, 0, 0))
	hit, t := c.Intersect(r)
	if !hit {
		tst.Errorf("expected a hit\n")
		return
	}
	chk.Scalar(tst, "t", 1e-14, t, 2.0)
	chk.IntAssert(c.Halfspace(vec3.New(-3, 0, 0)), 1)
	chk.IntAssert(c.Halfspace(vec3.New(0, 0, 0)), -1)

	// miss: a ray running past the cylinder, never crossing it (det<0)
	rMiss := NewRay(vec3.New(5, 10, 0), vec3.New(1, 0, 0))
	hitMiss, _ := c.Intersect(rMiss)
	if hitMiss {
		tst.Errorf("expected no hit for a ray that never reaches the cylinder\n")
	}

	// axis-parallel branch: ray direction exactly equals the axis, so
	// dxab.LengthSq() < tinyDenom regardless of offset (cylinder.go:51-52)
	rAlongAxis := NewRay(vec3.New(5, 0, -5), vec3.New(0, 0, 1))
	hitAlong, _ := c.Intersect(rAlongAxis)
	if hitAlong {
		tst.Errorf("expected no hit for a ray parallel to the cylinder's axis\n")
	}
}

func Test_plane_reflect_01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plane_reflect_01: reflection across x=0 (S5)")

	p, _ := NewPlane(vec3.New(0, 0, 0), vec3.New(1, 0, 0), Reflective)
	r := NewRay(vec3.New(-1, 0, 0), vec3.New(1, 0, 0))

	r2 := Reflect(r, p)
	chk.Scalar(tst, "dir.X", 1e-15, r2.Direction.X, -1)
	chk.Scalar(tst, "dir.Y", 1e-15, r2.Direction.Y, 0)
	chk.Scalar(tst, "dir.Z", 1e-15, r2.Direction.Z, 0)
}

func Test_reflection_involution(tst *testing.T) {

	//verbose()
	chk.PrintTitle("reflection_involution: reflect twice returns original direction")

	p, _ := NewPlane(vec3.New(0, 0, 0), vec3.New(0.3, 0.7, 0.2), Reflective)
	r := NewRay(vec3.New(1, 2, 3), vec3.New(0.5, -0.5, 0.7).Unit())

	once := Reflect(r, p)
	twice := Reflect(once, p)

	chk.Scalar(tst, "dir.X", 1e-13, twice.Direction.X, r.Direction.X)
	chk.Scalar(tst, "dir.Y", 1e-13, twice.Direction.Y, r.Direction.Y)
	chk.Scalar(tst, "dir.Z", 1e-13, twice.Direction.Z, r.Direction.Z)
}

func Test_reflect_matches_mirror_formula(tst *testing.T) {

	//verbose()
	chk.PrintTitle("reflect_matches_mirror_formula: analytic reflect vs. direct mirror projection")

	p, _ := NewPlane(vec3.New(0, 0, 0), vec3.New(0, 1, 0), Reflective)
	d := vec3.New(1, -1, 0.5).Unit()
	r := NewRay(vec3.New(2, 3, -1), d)

	got := Reflect(r, p)

	// numeric cross-check: reflect d about n by decomposing into the
	// component along n and the component in the plane, independently
	// of the D-2(D.N)N formula under test.
	n := p.Normal
	along := n.Scale(d.Dot(n))
	inPlane := d.Sub(along)
	mirrored := inPlane.Sub(along)

	chk.AnaNum(tst, "dir.X", 1e-15, got.Direction.X, mirrored.X, chk.Verbose)
	chk.AnaNum(tst, "dir.Y", 1e-15, got.Direction.Y, mirrored.Y, chk.Verbose)
	chk.AnaNum(tst, "dir.Z", 1e-15, got.Direction.Z, mirrored.Z, chk.Verbose)
}

func Test_halfspace_complementarity(tst *testing.T) {

	//verbose()
	chk.PrintTitle("halfspace_complementarity: exactly one sign per point, off-surface")

	s, _ := NewSphere(vec3.New(0, 0, 0), 2, Transmission)
	pts := []vec3.Coord{
		vec3.New(5, 0, 0),
		vec3.New(0, 0, 0),
		vec3.New(1, 1, 1),
		vec3.New(-3, -3, -3),
	}
	for _, p := range pts {
		h := s.Halfspace(p)
		if h != -1 && h != 1 {
			tst.Errorf("halfspace must be -1 or +1, got %d\n", h)
		}
	}
}

func Test_construction_errors(tst *testing.T) {

	//verbose()
	chk.PrintTitle("construction_errors: invalid parameters are rejected")

	if _, err := NewSphere(vec3.New(0, 0, 0), 0, Transmission); err == nil {
		tst.Errorf("expected error for non-positive radius\n")
	}
	if _, err := NewSphere(vec3.New(0, 0, 0), -1, Transmission); err == nil {
		tst.Errorf("expected error for negative radius\n")
	}
	if _, err := NewSphere(vec3.New(0, 0, 0), 1, Reflective); err == nil {
		tst.Errorf("expected error: sphere cannot be reflective\n")
	}
	if _, err := NewCone(vec3.New(0, 0, 0), vec3.New(0, 0, 1), 0, Transmission); err == nil {
		tst.Errorf("expected error for theta==0\n")
	}
	if _, err := NewCone(vec3.New(0, 0, 0), vec3.New(0, 0, 1), math.Pi/2, Transmission); err == nil {
		tst.Errorf("expected error for theta==π/2\n")
	}
	if _, err := NewPlane(vec3.New(0, 0, 0), vec3.New(0, 0, 0), Transmission); err == nil {
		tst.Errorf("expected error for zero normal\n")
	}
	if _, err := NewInfCylinder(vec3.New(0, 0, 0), vec3.New(0, 0, 0), 1, Transmission); err == nil {
		tst.Errorf("expected error for zero axis\n")
	}
}
