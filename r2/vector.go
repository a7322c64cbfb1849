/*
 * Copyright 2005 Google Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package r2 implements basic types and operations on 2D Euclidean
// vectors. A Vector doubles as a plane Point: the CDE never needs an
// affine point type distinct from the vectors used to reach it.
package r2

import (
	"fmt"
	"math"
)

/**
 * r2.Vector represents a vector in the two-dimensional space. It defines the
 * basic geometrical operations for 2D vectors, e.g. cross product, addition,
 * norm, comparison etc.
 *
 */
type Vector struct {
	X, Y float64
}

func (v Vector) String() string { return fmt.Sprintf("(%v, %v)", v.X, v.Y) }

// Norm returns the vector's norm.
func (v Vector) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Norm2 returns the square of the norm.
func (v Vector) Norm2() float64 { return v.Dot(v) }

// Normalize returns a unit vector in the same direction as v.
func (v Vector) Normalize() Vector {
	if v == (Vector{0, 0}) {
		return v
	}
	return v.Mul(1 / v.Norm())
}

// Abs returns the vector with nonnegative components.
func (v Vector) Abs() Vector { return Vector{math.Abs(v.X), math.Abs(v.Y)} }

// Neg returns the negated vector
func (v Vector) Neg() Vector { return Vector{-v.X, -v.Y} }

// Add returns the standard vector sum of v and ov.
func (v Vector) Add(ov Vector) Vector { return Vector{v.X + ov.X, v.Y + ov.Y} }

// Sub returns the standard vector difference of v and ov.
func (v Vector) Sub(ov Vector) Vector { return Vector{v.X - ov.X, v.Y - ov.Y} }

// Mul returns the standard scalar product of v and m.
func (v Vector) Mul(m float64) Vector { return Vector{v.X * m, v.Y * m} }

// Div returns v with each component divided by m.
func (v Vector) Div(m float64) Vector { return Vector{v.X / m, v.Y / m} }

// Dot returns the standard dot product of v and ov.
func (v Vector) Dot(ov Vector) float64 { return v.X*ov.X + v.Y*ov.Y }

// Cross returns the standard cross product of v and ov. Its sign gives
// the turn direction of the ordered pair (v, ov); its magnitude is
// twice the area of the triangle they span with the origin.
func (v Vector) Cross(ov Vector) float64 {
	return v.X*ov.Y - v.Y*ov.X
}

// Dist returns the Euclidean distance between v and ov, treating both
// as points.
func (v Vector) Dist(ov Vector) float64 { return v.Sub(ov).Norm() }

// Dist2 returns the squared Euclidean distance between v and ov. Prefer
// this over Dist when only an ordering or threshold comparison is
// needed, to avoid the square root.
func (v Vector) Dist2(ov Vector) float64 { return v.Sub(ov).Norm2() }

// Rotated returns v rotated counter-clockwise by theta radians about
// the origin. Placements rotate an item's poles and vertices about the
// item's own local origin before translating by (dx, dy).
func (v Vector) Rotated(theta float64) Vector {
	s, c := math.Sincos(theta)
	return Vector{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}

// Lerp returns the point a fraction t of the way from v to ov.
// t == 0 returns v, t == 1 returns ov.
func (v Vector) Lerp(ov Vector, t float64) Vector {
	return Vector{
		X: v.X + (ov.X-v.X)*t,
		Y: v.Y + (ov.Y-v.Y)*t,
	}
}

func (v Vector) Equals(other Vector) bool {
	return v.X == other.X && v.Y == other.Y
}

func (v Vector) LessThan(vb Vector) bool {
	if v.X < vb.X {
		return true
	}
	if vb.X < v.X {
		return false
	}
	if v.Y < vb.Y {
		return true
	}
	if vb.Y < v.Y {
		return false
	}
	return false
}

func (v Vector) CompareTo(other Vector) int {
	if v.LessThan(other) {
		return -1
	} else {
		if v.Equals(other) {
			return 0
		}
		return 1
	}
}
