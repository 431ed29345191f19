// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// csgquery is a thin consumer of the csg kernel: it loads a JSON scene,
// then answers find_cell_id for a point and/or walks a ray with
// find_intersection until a Vacuum boundary or a step cap (§12). All of
// the algorithmic content lives in the csg/region/surface packages; this
// command is I/O plumbing only, deliberately out of the core's scope (§1).
package main

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/csgeom/csg"
	"github.com/cpmech/csgeom/vec3"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	scenePath := flag.String("scene", "", "path to a JSON scene file")
	pointArg := flag.String("point", "", "query point as x,y,z")
	rayArg := flag.String("ray", "", "query ray as ox,oy,oz,dx,dy,dz (direction is unitized)")
	maxSteps := flag.Int("maxsteps", 64, "maximum number of ray-advance steps before giving up")
	flag.Parse()

	defer func() {
		if err := recover(); err != nil {
			io.Pfred("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	io.PfWhite("\ncsgquery -- CSG point-location and ray-advance kernel\n\n")

	if *scenePath == "" {
		chk.Panic("-scene is required")
	}
	data, err := os.ReadFile(*scenePath)
	if err != nil {
		chk.Panic("cannot read scene file %q: %v", *scenePath, err)
	}
	geo, err := loadScene(data)
	if err != nil {
		chk.Panic("%v", err)
	}

	if *pointArg != "" {
		p, err := parseCoord(*pointArg)
		if err != nil {
			chk.Panic("%v", err)
		}
		id := csg.FindCellID(p, geo)
		if id == csg.NoCell {
			io.Pfyel("point %v: no cell found\n", p)
		} else {
			io.Pfgreen("point %v: cell %d\n", p, id)
		}
	}

	if *rayArg != "" {
		r, err := parseRay(*rayArg)
		if err != nil {
			chk.Panic("%v", err)
		}
		walkRay(r, geo, *maxSteps)
	}
}

func walkRay(r csg.Ray, geo csg.Geometry, maxSteps int) {
	for step := 0; step < maxSteps; step++ {
		adv, ok := csg.FindIntersectionInGeometry(r, geo)
		if !ok {
			io.Pfyel("step %d: no intersection found; stopping\n", step)
			return
		}
		io.Pf("step %d: crossed region %d (%v) at %v\n", step, adv.RegionID, adv.Boundary, adv.Ray.Origin)
		if adv.Boundary == csg.Vacuum {
			io.Pfgreen("ray left the scene (vacuum boundary)\n")
			return
		}
		r = adv.Ray
	}
	io.Pfyel("reached maxsteps=%d without leaving the scene\n", maxSteps)
}

// parseCoord parses "x,y,z" into a vec3.Coord.
func parseCoord(s string) (vec3.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return vec3.Coord{}, chk.Err("expected x,y,z; got %q", s)
	}
	vals := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return vec3.Coord{}, chk.Err("cannot parse %q as a float: %v", p, err)
		}
		vals[i] = v
	}
	return vec3.New(vals[0], vals[1], vals[2]), nil
}

// parseRay parses "ox,oy,oz,dx,dy,dz" into a csg.Ray with a unitized direction.
func parseRay(s string) (csg.Ray, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 6 {
		return csg.Ray{}, chk.Err("expected ox,oy,oz,dx,dy,dz; got %q", s)
	}
	vals := make([]float64, 6)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return csg.Ray{}, chk.Err("cannot parse %q as a float: %v", p, err)
		}
		vals[i] = v
	}
	origin := vec3.New(vals[0], vals[1], vals[2])
	direction := vec3.New(vals[3], vals[4], vals[5]).Unit()
	return csg.NewRay(origin, direction), nil
}
