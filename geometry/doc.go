// Package geometry implements projective 3-space on top of the fixed-size
// matrices of package matrix.
//
// Points (Point3) and planes (Plane3) carry four homogeneous coordinates;
// a point is a column vector and a plane a row co-vector, so a plane applied
// to a point (Incidence) is a plain product. Lines (Line3) are given by two
// points and expose their Plücker matrices.
//
// The incidence operations are:
//
//   - Join(p1, p2, p3): plane through three points.
//   - Meet(a1, a2, a3): point common to three planes.
//   - MeetLinePlane(l, a): intersection of a line and a plane.
//   - JoinLinePoint(l, p): plane through a line and a point.
//   - SideWrap(l1, l2): signed orientation of two lines; zero when coplanar.
//
// Equality is projective: coordinates are normalised by w before comparing.
// Entities at infinity (w = 0) are valid results of Meet/MeetLinePlane but
// cannot be normalised; test W() == 0 first.
//
// UnitCube and Tetrahedron provide small fixtures for ray/solid tests.
package geometry
