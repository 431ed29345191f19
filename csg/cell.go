// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csg

import (
	"github.com/cpmech/csgeom/region"
	"github.com/cpmech/csgeom/vec3"
)

// Cell is an ordered list of regions plus the Boolean expression over
// them that defines the cell's volume (§3).
type Cell struct {
	Regions    []region.Region
	Definition region.Expr
}

// NewCell validates definition against the given regions and returns a Cell.
func NewCell(regions []region.Region, definition region.Expr) (Cell, error) {
	if err := region.Validate(definition, len(regions)); err != nil {
		return Cell{}, err
	}
	return Cell{Regions: regions, Definition: definition}, nil
}

// IsInCell reports whether p lies in the cell's volume (§6, is_in_cell).
func IsInCell(p vec3.Coord, cell Cell) bool {
	return region.Evaluate(cell.Definition, cell.Regions, p)
}
