// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csg

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/cpmech/csgeom/region"
	"github.com/cpmech/csgeom/surface"
	"github.com/cpmech/csgeom/vec3"
	"github.com/cpmech/gosl/chk"
)

// twoHalfGeometry builds the scene of S6: one plane at x=0 splitting a box
// in half, its two half-spaces forming two cells.
func twoHalfGeometry(tst *testing.T) Geometry {
	p, err := surface.NewPlane(vec3.New(0, 0, 0), vec3.New(1, 0, 0), surface.Transmission)
	if err != nil {
		tst.Fatalf("NewPlane failed: %v\n", err)
	}
	negReg, _ := region.NewRegion(p, -1)
	posReg, _ := region.NewRegion(p, 1)

	negCell, err := NewCell([]region.Region{negReg}, region.Leaf{Index: 0})
	if err != nil {
		tst.Fatalf("NewCell (neg) failed: %v\n", err)
	}
	posCell, err := NewCell([]region.Region{posReg}, region.Leaf{Index: 0})
	if err != nil {
		tst.Fatalf("NewCell (pos) failed: %v\n", err)
	}

	box, err := NewBox(vec3.New(-1, -1, -1), vec3.New(1, 1, 1))
	if err != nil {
		tst.Fatalf("NewBox failed: %v\n", err)
	}
	return NewGeometry([]Cell{negCell, posCell}, box)
}

func Test_geometry_find_cell_id(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geometry_find_cell_id: two cells split at x=0 (S6)")

	g := twoHalfGeometry(tst)

	chk.IntAssert(FindCellID(vec3.New(-0.5, 0, 0), g), 1)
	chk.IntAssert(FindCellID(vec3.New(0.5, 0, 0), g), 2)
	chk.IntAssert(FindCellID(vec3.New(5, 5, 5), g), NoCell)
}

func Test_advance_forward_progress(tst *testing.T) {

	//verbose()
	chk.PrintTitle("advance_forward_progress: transmission crosses the boundary")

	g := twoHalfGeometry(tst)
	r := NewRay(vec3.New(-0.5, 0, 0), vec3.New(1, 0, 0))

	adv, ok := FindIntersectionInGeometry(r, g)
	if !ok {
		tst.Errorf("expected a hit\n")
		return
	}
	chk.IntAssert(int(adv.Boundary), int(surface.Transmission))
	if adv.Ray.Origin.X <= 0 {
		tst.Errorf("expected advanced origin strictly past x=0, got %v\n", adv.Ray.Origin.X)
	}

	crossed := g.Cells[0].Regions[adv.RegionID].Surface
	before := crossed.Halfspace(r.Origin)
	after := crossed.Halfspace(adv.Ray.Origin)
	if before == after {
		tst.Errorf("expected advance to cross the half-space boundary\n")
	}
}

func Test_advance_reflective(tst *testing.T) {

	//verbose()
	chk.PrintTitle("advance_reflective: mirrored ray bumped clear of the surface (S5)")

	p, _ := surface.NewPlane(vec3.New(0, 0, 0), vec3.New(1, 0, 0), surface.Reflective)
	reg, _ := region.NewRegion(p, -1)
	regions := []region.Region{reg}

	r := NewRay(vec3.New(-1, 0, 0), vec3.New(1, 0, 0))
	adv, ok := FindIntersection(r, regions)
	if !ok {
		tst.Errorf("expected a hit\n")
		return
	}
	chk.IntAssert(int(adv.Boundary), int(surface.Reflective))
	chk.Scalar(tst, "dir.X", 1e-15, adv.Ray.Direction.X, -1)
	if adv.Ray.Origin.X >= 0 {
		tst.Errorf("expected the reflected ray's origin to be bumped back past x=0, got %v\n", adv.Ray.Origin.X)
	}
}

func Test_advance_vacuum_terminates(tst *testing.T) {

	//verbose()
	chk.PrintTitle("advance_vacuum_terminates: boundary reported as Vacuum")

	s, _ := surface.NewSphere(vec3.New(0, 0, 0), 1, surface.Vacuum)
	reg, _ := region.NewRegion(s, -1)
	regions := []region.Region{reg}

	r := NewRay(vec3.New(0, 0, 0), vec3.New(1, 0, 0))
	adv, ok := FindIntersection(r, regions)
	if !ok {
		tst.Errorf("expected a hit\n")
		return
	}
	chk.IntAssert(int(adv.Boundary), int(surface.Vacuum))
}

func Test_advance_no_hit(tst *testing.T) {

	//verbose()
	chk.PrintTitle("advance_no_hit: empty region list reports ok=false")

	r := NewRay(vec3.New(0, 0, 0), vec3.New(1, 0, 0))
	_, ok := FindIntersection(r, nil)
	if ok {
		tst.Errorf("expected no hit for an empty region list\n")
	}
}

func Test_geometry_roundtrip_gob(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geometry_roundtrip_gob: Encode/Decode via encoding/gob")

	g := twoHalfGeometry(tst)

	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := g.Encode(enc); err != nil {
		tst.Errorf("Encode failed: %v\n", err)
		return
	}

	var g2 Geometry
	dec := gob.NewDecoder(&buf)
	if err := g2.Decode(dec); err != nil {
		tst.Errorf("Decode failed: %v\n", err)
		return
	}

	chk.IntAssert(len(g2.Cells), len(g.Cells))
	chk.IntAssert(FindCellID(vec3.New(-0.5, 0, 0), g2), 1)
	chk.IntAssert(FindCellID(vec3.New(0.5, 0, 0), g2), 2)
}
