// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csg

import "github.com/cpmech/csgeom/vec3"

// NoCell is the sentinel returned by FindCellID when no cell in the
// geometry contains the queried point (§4.5).
const NoCell = -1

// Geometry is an ordered list of cells plus the scene's bounding box. The
// cell list order defines the enumeration point lookup scans in.
//
// Cells of a Geometry are trusted to partition the bounding box interior
// without overlap; this is not checked (§3, §1 Non-goals).
type Geometry struct {
	Cells       []Cell
	BoundingBox Box
}

// NewGeometry returns a Geometry over the given cells and bounding box.
func NewGeometry(cells []Cell, box Box) Geometry {
	return Geometry{Cells: cells, BoundingBox: box}
}

// FindCellID scans cells in list order and returns the 1-based id of the
// first cell i such that IsInCell(p, cells[i]) is true, or NoCell if p is
// outside g.BoundingBox or no cell matches (§4.5, §8 S6). IDs are 1-based
// to match the convention spec.md's own scenario S6 reports them in;
// subtract 1 to index into g.Cells.
func FindCellID(p vec3.Coord, g Geometry) int {
	if !g.BoundingBox.Contains(p) {
		return NoCell
	}
	for i := range g.Cells {
		if IsInCell(p, g.Cells[i]) {
			return i + 1
		}
	}
	return NoCell
}
