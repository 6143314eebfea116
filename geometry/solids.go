// SPDX-License-Identifier: MIT
// Package geometry: canonical embedded solids.
//
// Design:
//   • Corner coordinates, edge lists and face lists are fixed tables; the
//     constructors only convert them to the requested scalar type.
//   • Corner i of the cube sits at (±0.5, ±0.5, ±0.5) with the sign of x, y, z
//     taken from bits 0, 1, 2 of i (clear = negative).
//   • Edges are stored with U < V, grouped by axis and sorted within a group.
//   • Faces list their corners in cyclic order around the face.
//
// AI-Hints:
//   • Extend with new solids by adding tables only; existing tables are part of
//     the public contract (tests index corners by number).

package geometry

import "github.com/katalvlaran/pgeo/matrix"

// Edge is an undirected pair of corner indices with U < V.
type Edge struct{ U, V int }

// Solid is a polyhedron embedded in homogeneous coordinates (w = 1).
type Solid[T matrix.Scalar] struct {
	Name    string
	Corners []Point3[T]
	Edges   []Edge
	Faces   [][]int
}

// EdgeLine returns edge e as a line oriented from corner U to corner V.
func (s Solid[T]) EdgeLine(e int) Line3[T] {
	return NewLine3(s.Corners[s.Edges[e].U], s.Corners[s.Edges[e].V])
}

// FacePlane returns the plane through the first three corners of face f.
func (s Solid[T]) FacePlane(f int) Plane3[T] {
	face := s.Faces[f]

	return Join(s.Corners[face[0]], s.Corners[face[1]], s.Corners[face[2]])
}

var unitCubeCorners = [8][3]float64{
	{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5},
	{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5},
}

var unitCubeEdges = []Edge{
	// along x
	{U: 0, V: 1}, {U: 2, V: 3}, {U: 4, V: 5}, {U: 6, V: 7},
	// along y
	{U: 0, V: 2}, {U: 1, V: 3}, {U: 4, V: 6}, {U: 5, V: 7},
	// along z
	{U: 0, V: 4}, {U: 1, V: 5}, {U: 2, V: 6}, {U: 3, V: 7},
}

var unitCubeFaces = [][]int{
	{0, 4, 6, 2}, // x = -0.5
	{1, 3, 7, 5}, // x = +0.5
	{0, 1, 5, 4}, // y = -0.5
	{2, 6, 7, 3}, // y = +0.5
	{0, 2, 3, 1}, // z = -0.5
	{4, 5, 7, 6}, // z = +0.5
}

// Tetrahedron corners are the even-parity cube corners 0, 3, 5, 6.
var tetraCorners = [4]int{0, 3, 5, 6}

var tetraEdges = []Edge{
	{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3},
	{U: 1, V: 2}, {U: 1, V: 3}, {U: 2, V: 3},
}

var tetraFaces = [][]int{
	{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2},
}

// UnitCube returns the axis-aligned cube of edge 1 centred at the origin.
// For integer T the ±0.5 coordinates truncate to zero; use a float type.
func UnitCube[T matrix.Scalar]() Solid[T] {
	s := Solid[T]{
		Name:    "cube",
		Corners: make([]Point3[T], len(unitCubeCorners)),
		Edges:   append([]Edge(nil), unitCubeEdges...),
		Faces:   cloneFaces(unitCubeFaces),
	}
	for i, c := range unitCubeCorners {
		s.Corners[i] = NewPoint3(T(c[0]), T(c[1]), T(c[2]), 1)
	}

	return s
}

// Tetrahedron returns the regular tetrahedron inscribed in UnitCube.
func Tetrahedron[T matrix.Scalar]() Solid[T] {
	s := Solid[T]{
		Name:    "tetrahedron",
		Corners: make([]Point3[T], len(tetraCorners)),
		Edges:   append([]Edge(nil), tetraEdges...),
		Faces:   cloneFaces(tetraFaces),
	}
	for i, ci := range tetraCorners {
		c := unitCubeCorners[ci]
		s.Corners[i] = NewPoint3(T(c[0]), T(c[1]), T(c[2]), 1)
	}

	return s
}

func cloneFaces(src [][]int) [][]int {
	out := make([][]int, len(src))
	for i, f := range src {
		out[i] = append([]int(nil), f...)
	}

	return out
}
