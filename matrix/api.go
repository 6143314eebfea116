// SPDX-License-Identifier: MIT
// Package matrix: named shapes.
//
// Purpose:
//   - Give the common 2..4 square shapes short names: f = float32, d = float64,
//     i = int32. All use row-major layout.
//   - The aliases are identical to the spelled-out types, so they mix freely
//     with generic functions: Mul(Mat3f, Mat3f) is Mul[float32, D3, D3, D3, ...].

package matrix

type (
	Mat2f = Matrix[float32, D2, D2, RowMajor]
	Mat3f = Matrix[float32, D3, D3, RowMajor]
	Mat4f = Matrix[float32, D4, D4, RowMajor]

	Mat2d = Matrix[float64, D2, D2, RowMajor]
	Mat3d = Matrix[float64, D3, D3, RowMajor]
	Mat4d = Matrix[float64, D4, D4, RowMajor]

	Mat2i = Matrix[int32, D2, D2, RowMajor]
	Mat3i = Matrix[int32, D3, D3, RowMajor]
	Mat4i = Matrix[int32, D4, D4, RowMajor]
)

type (
	Vec2f = Vector[float32, D2]
	Vec3f = Vector[float32, D3]
	Vec4f = Vector[float32, D4]

	Vec2d = Vector[float64, D2]
	Vec3d = Vector[float64, D3]
	Vec4d = Vector[float64, D4]

	Vec2i = Vector[int32, D2]
	Vec3i = Vector[int32, D3]
	Vec4i = Vector[int32, D4]
)

type (
	CoVec2f = CoVector[float32, D2]
	CoVec3f = CoVector[float32, D3]
	CoVec4f = CoVector[float32, D4]

	CoVec2d = CoVector[float64, D2]
	CoVec3d = CoVector[float64, D3]
	CoVec4d = CoVector[float64, D4]

	CoVec2i = CoVector[int32, D2]
	CoVec3i = CoVector[int32, D3]
	CoVec4i = CoVector[int32, D4]
)
