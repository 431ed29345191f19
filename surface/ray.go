// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import "github.com/cpmech/csgeom/vec3"

// Ray is an (origin, direction) pair. The kernel's invariant is that
// direction has unit magnitude at every public entry point; callers are
// responsible for unitizing before calling into the kernel (§3, Ray).
type Ray struct {
	Origin    vec3.Coord
	Direction vec3.Coord
}

// NewRay returns a Ray with the given origin and (already-unit) direction.
func NewRay(origin, direction vec3.Coord) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point origin + t*direction
func (r Ray) At(t float64) vec3.Coord {
	return r.Origin.Add(r.Direction.Scale(t))
}
