// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package region implements the Region (half-space) abstraction and the
// Boolean Expr tree + evaluator used to define a cell's volume over a
// list of regions (§3, §4.4).
package region

import (
	"github.com/cpmech/csgeom/surface"
	"github.com/cpmech/csgeom/vec3"
	"github.com/cpmech/gosl/chk"
)

// Region is a half-space: the set of points where Halfspace equals Sign.
type Region struct {
	Surface surface.Surface
	Sign    int // -1 or +1
}

// NewRegion validates and returns a Region.
func NewRegion(s surface.Surface, sign int) (Region, error) {
	if sign != -1 && sign != 1 {
		return Region{}, chk.Err("region sign must be -1 or +1; got %d", sign)
	}
	return Region{Surface: s, Sign: sign}, nil
}

// Contains reports whether p satisfies this region: halfspace(p,S)==sign.
func (r Region) Contains(p vec3.Coord) bool {
	return r.Surface.Halfspace(p) == r.Sign
}
