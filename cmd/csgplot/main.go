// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// csgplot dumps a single z=const cross-section of a Geometry: it samples
// a grid of points inside the bounding box, resolves the cell each one
// belongs to, and scatter-plots the grid coloured by cell index. This is
// the kind of one-off debug visualiser gofem/examples/*/doplot.go
// provides alongside the solver (§12); it is not part of the core and
// the core never imports it.
package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/cpmech/csgeom/csg"
	"github.com/cpmech/csgeom/vec3"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

func main() {

	scenePath := flag.String("scene", "", "path to a JSON scene file")
	z := flag.Float64("z", 0, "z coordinate of the cross-section")
	npts := flag.Int("npts", 81, "grid points per axis")
	out := flag.String("out", "/tmp/csgeom", "output directory for the figure")
	flag.Parse()

	defer func() {
		if err := recover(); err != nil {
			io.Pfred("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	if *scenePath == "" {
		chk.Panic("-scene is required")
	}
	data, err := os.ReadFile(*scenePath)
	if err != nil {
		chk.Panic("cannot read scene file %q: %v", *scenePath, err)
	}

	geo, err := decodeScene(data)
	if err != nil {
		chk.Panic("%v", err)
	}

	var sf sceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		chk.Panic("cannot parse scene JSON: %v", err)
	}
	xmin, xmax := sf.Box.LowerLeft[0], sf.Box.UpperRight[0]
	ymin, ymax := sf.Box.LowerLeft[1], sf.Box.UpperRight[1]

	xs := utl.LinSpace(xmin, xmax, *npts)
	ys := utl.LinSpace(ymin, ymax, *npts)

	byCell := map[int][][2]float64{}
	for _, x := range xs {
		for _, y := range ys {
			id := csg.FindCellID(vec3.New(x, y, *z), geo)
			byCell[id] = append(byCell[id], [2]float64{x, y})
		}
	}

	plt.Reset(false, nil)
	for id, pts := range byCell {
		X := make([]float64, len(pts))
		Y := make([]float64, len(pts))
		for i, xy := range pts {
			X[i], Y[i] = xy[0], xy[1]
		}
		label := io.Sf("cell %d", id)
		if id == csg.NoCell {
			label = "outside"
		}
		plt.Plot(X, Y, io.Sf("'.', label='%s', clip_on=0", label))
	}
	plt.Gll("$x$", "$y$", "")
	plt.SaveD(*out, io.Sf("cross_section_z%g.png", *z))
}
