// Package pgeo is a small library for fixed-size linear algebra and the
// projective geometry of 3-space built on top of it.
//
// 🚀 What is pgeo?
//
//	Generic, allocation-free building blocks:
//		• Matrices up to 4×4 with compile-time extents and row/column-major storage
//		• Writable and read-only views: submatrix windows and transposes
//		• Arithmetic, determinants, Gauss-Jordan inverse, inner products
//		• Points, planes and lines in homogeneous coordinates
//		• Join, meet and the SideWrap orientation test
//
// ✨ Why choose pgeo?
//
//   - Shapes are types: a 3×2 matrix cannot be added to a 2×3 one
//   - Value semantics: matrices are plain arrays, copied on assignment
//   - Views alias their referent, so block updates need no copies
//   - Interop: any engine can be read by gonum.org/v1/gonum/mat
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/    engines, views, the Matrix façade, arithmetic and linear algebra
//	geometry/  Point3, Plane3, Line3, incidence operations and sample solids
//
// Quick ASCII example:
//
//	   ray
//	    │
//	 ┌──┼──┐  Join(c0, c2, c3)  → bottom face plane
//	 │  ●  │  MeetLinePlane     → entry point
//	 └──┼──┘  SideWrap per edge → inside or outside the face
//	    │
//
// See examples/cube_ray for a complete program.
//
//	go get github.com/katalvlaran/pgeo
package pgeo
