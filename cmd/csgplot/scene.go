// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"

	"github.com/cpmech/csgeom/csg"
	"github.com/cpmech/csgeom/region"
	"github.com/cpmech/csgeom/surface"
	"github.com/cpmech/csgeom/vec3"
	"github.com/cpmech/gosl/chk"
)

// sceneFile and sceneCells mirror cmd/csgquery/scene.go's shape.
// Duplicated rather than shared: a cmd/ program cannot import another
// cmd/ program's package, and this JSON shape is construction sugar, not
// part of the kernel's public API (§6).
type sceneFile struct {
	Box struct {
		LowerLeft  [3]float64 `json:"lower_left"`
		UpperRight [3]float64 `json:"upper_right"`
	} `json:"box"`
}

type sceneCells struct {
	Cells []struct {
		Regions []struct {
			Sign    int           `json:"sign"`
			Surface surfaceRecord `json:"surface"`
		} `json:"regions"`
		Expr string `json:"expr"`
	} `json:"cells"`
}

type surfaceRecord struct {
	Type     string     `json:"type"`
	Point    [3]float64 `json:"point"`
	Normal   [3]float64 `json:"normal"`
	Center   [3]float64 `json:"center"`
	Tip      [3]float64 `json:"tip"`
	Axis     [3]float64 `json:"axis"`
	Radius   float64    `json:"radius"`
	Theta    float64    `json:"theta"`
	Boundary string     `json:"boundary"`
}

func toCoord(a [3]float64) vec3.Coord {
	return vec3.New(a[0], a[1], a[2])
}

func buildSurface(rec surfaceRecord) (surface.Surface, error) {
	b := surface.ParseBoundaryKind(rec.Boundary)
	switch rec.Type {
	case "plane":
		return surface.NewPlane(toCoord(rec.Point), toCoord(rec.Normal), b)
	case "sphere":
		return surface.NewSphere(toCoord(rec.Center), rec.Radius, b)
	case "cylinder":
		return surface.NewInfCylinder(toCoord(rec.Center), toCoord(rec.Axis), rec.Radius, b)
	case "cone":
		return surface.NewCone(toCoord(rec.Tip), toCoord(rec.Axis), rec.Theta, b)
	default:
		return nil, chk.Err("unknown surface type %q", rec.Type)
	}
}

func decodeScene(data []byte) (csg.Geometry, error) {
	var sf sceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return csg.Geometry{}, chk.Err("cannot parse scene JSON: %v", err)
	}
	var sc sceneCells
	if err := json.Unmarshal(data, &sc); err != nil {
		return csg.Geometry{}, chk.Err("cannot parse scene JSON: %v", err)
	}

	box, err := csg.NewBox(toCoord(sf.Box.LowerLeft), toCoord(sf.Box.UpperRight))
	if err != nil {
		return csg.Geometry{}, err
	}

	cells := make([]csg.Cell, len(sc.Cells))
	for i, cdef := range sc.Cells {
		regions := make([]region.Region, len(cdef.Regions))
		for j, rdef := range cdef.Regions {
			s, err := buildSurface(rdef.Surface)
			if err != nil {
				return csg.Geometry{}, chk.Err("cell %d, region %d: %v", i, j, err)
			}
			reg, err := region.NewRegion(s, rdef.Sign)
			if err != nil {
				return csg.Geometry{}, chk.Err("cell %d, region %d: %v", i, j, err)
			}
			regions[j] = reg
		}
		expr, err := region.Parse(cdef.Expr)
		if err != nil {
			return csg.Geometry{}, chk.Err("cell %d: cannot parse expression %q: %v", i, cdef.Expr, err)
		}
		cell, err := csg.NewCell(regions, expr)
		if err != nil {
			return csg.Geometry{}, chk.Err("cell %d: %v", i, err)
		}
		cells[i] = cell
	}

	return csg.NewGeometry(cells, box), nil
}
