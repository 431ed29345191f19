// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import "github.com/cpmech/csgeom/vec3"

// tinyDenom is the threshold below which a dot product is treated as zero
// when testing for a ray parallel to a surface. The reference behaviour of
// comparing a computed distance to +Inf only catches the exactly-zero
// denominator; this is an explicit, and stricter, substitute (§9).
const tinyDenom = 1e-12

// Surface is the closed tagged variant of analytic primitives the kernel
// knows about: Plane, Sphere, InfCylinder, Cone. The kernel defines no
// fifth case; each case implements the methods below and is dispatched
// through them. The interface is not sealed, so the closed set is held
// by convention, not enforced by the compiler.
type Surface interface {
	// Kind identifies which concrete primitive this is.
	Kind() Kind
	// Boundary returns the immutable boundary semantics of this surface.
	Boundary() BoundaryKind
	// Intersect returns the nearest strictly-forward intersection of ray
	// with this surface, per §4.2.
	Intersect(r Ray) (hit bool, t float64)
	// Halfspace returns the sign of the half-space function at p, per §4.3.
	Halfspace(p vec3.Coord) int
}
