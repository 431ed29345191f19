// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package csg implements the Cell/Geometry data model, point lookup, and
// ray advance that drive a CSG scene query (§3, §4.5, §4.6).
package csg

import (
	"github.com/cpmech/csgeom/vec3"
	"github.com/cpmech/gosl/chk"
)

// Box is an axis-aligned bounding volume, LowerLeft ≤ UpperRight
// componentwise.
type Box struct {
	LowerLeft  vec3.Coord
	UpperRight vec3.Coord
}

// NewBox validates and returns a Box.
func NewBox(lowerLeft, upperRight vec3.Coord) (Box, error) {
	if lowerLeft.X > upperRight.X || lowerLeft.Y > upperRight.Y || lowerLeft.Z > upperRight.Z {
		return Box{}, chk.Err("box lower-left %v must be componentwise <= upper-right %v", lowerLeft, upperRight)
	}
	return Box{LowerLeft: lowerLeft, UpperRight: upperRight}, nil
}

// Contains reports whether p lies within the closed box.
func (b Box) Contains(p vec3.Coord) bool {
	return p.X >= b.LowerLeft.X && p.X <= b.UpperRight.X &&
		p.Y >= b.LowerLeft.Y && p.Y <= b.UpperRight.Y &&
		p.Z >= b.LowerLeft.Z && p.Z <= b.UpperRight.Z
}
