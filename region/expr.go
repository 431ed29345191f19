// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import (
	"github.com/cpmech/csgeom/vec3"
	"github.com/cpmech/gosl/chk"
)

// Expr is the closed tagged variant of a cell's Boolean definition tree:
// Leaf, Intersect, Union, Complement (§3, §4.4). Nodes are immutable once
// built; evaluation never mutates them.
type Expr interface {
	// validate returns an error if a leaf reachable from this node is out
	// of range for a cell with numRegions regions, or a node lacks a child.
	validate(numRegions int) error
}

// Leaf references a single region by index into the owning cell's region
// list (0-based).
type Leaf struct {
	Index int
}

func (e Leaf) validate(numRegions int) error {
	if e.Index < 0 || e.Index >= numRegions {
		return chk.Err("leaf region index %d out of range [0,%d)", e.Index, numRegions)
	}
	return nil
}

// Intersect is the Boolean AND of its two children.
type Intersect struct {
	L, R Expr
}

func (e Intersect) validate(numRegions int) error {
	if e.L == nil || e.R == nil {
		return chk.Err("intersect node requires exactly two children")
	}
	if err := e.L.validate(numRegions); err != nil {
		return err
	}
	return e.R.validate(numRegions)
}

// Union is the Boolean OR of its two children.
type Union struct {
	L, R Expr
}

func (e Union) validate(numRegions int) error {
	if e.L == nil || e.R == nil {
		return chk.Err("union node requires exactly two children")
	}
	if err := e.L.validate(numRegions); err != nil {
		return err
	}
	return e.R.validate(numRegions)
}

// Complement is the Boolean NOT of its single child.
type Complement struct {
	X Expr
}

func (e Complement) validate(numRegions int) error {
	if e.X == nil {
		return chk.Err("complement node requires exactly one child")
	}
	return e.X.validate(numRegions)
}

// Validate checks that every leaf in expr refers to a valid position in a
// region list of length numRegions, and that every binary/unary node has
// the expected arity.
func Validate(expr Expr, numRegions int) error {
	if expr == nil {
		return chk.Err("expression must not be nil")
	}
	return expr.validate(numRegions)
}

// Evaluate descends expr, evaluating leaves against regions at point, and
// combining with plain Boolean ∧, ∨, ¬. point is threaded explicitly
// through the recursion; there is no hidden global state (§5, §9).
func Evaluate(expr Expr, regions []Region, point vec3.Coord) bool {
	switch e := expr.(type) {
	case Leaf:
		return regions[e.Index].Contains(point)
	case Intersect:
		return Evaluate(e.L, regions, point) && Evaluate(e.R, regions, point)
	case Union:
		return Evaluate(e.L, regions, point) || Evaluate(e.R, regions, point)
	case Complement:
		return !Evaluate(e.X, regions, point)
	default:
		chk.Panic("unknown expression node type %T", expr)
		return false
	}
}
