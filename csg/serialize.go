// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csg

import (
	"encoding/gob"

	"github.com/cpmech/csgeom/region"
	"github.com/cpmech/csgeom/surface"
	"github.com/cpmech/gosl/utl"
)

func init() {
	// Surfaces and Expr nodes are stored behind interfaces (surface.Surface,
	// region.Expr); gob needs every concrete case of each closed variant
	// registered once, up front, the same way a gob-backed Encode/Decode
	// pair is wired in gofem's ele.Element implementations (§11).
	gob.Register(&surface.Plane{})
	gob.Register(&surface.Sphere{})
	gob.Register(&surface.InfCylinder{})
	gob.Register(&surface.Cone{})
	gob.Register(region.Leaf{})
	gob.Register(region.Intersect{})
	gob.Register(region.Union{})
	gob.Register(region.Complement{})
}

// snapshot is the flattened, gob-friendly representation of a Geometry.
type snapshot struct {
	Box   Box
	Cells []Cell
}

// Encode writes g to enc, following the Encode(enc utl.Encoder) shape
// ele.Element implementations use for their internal state (§11).
func (g Geometry) Encode(enc utl.Encoder) (err error) {
	return enc.Encode(snapshot{Box: g.BoundingBox, Cells: g.Cells})
}

// Decode reads a Geometry from dec into g, replacing its contents.
func (g *Geometry) Decode(dec utl.Decoder) (err error) {
	var s snapshot
	if err = dec.Decode(&s); err != nil {
		return err
	}
	g.BoundingBox = s.Box
	g.Cells = s.Cells
	return nil
}
