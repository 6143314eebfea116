// Package matrix provides small fixed-size matrices whose extents are part of
// their type.
//
// The package is built from three layers:
//
//   - Engines. Storage[T, R, C, L] owns up to 4×4 elements in a fixed array
//     with a row- or column-major layout. SubmatrixEngine and TransposeEngine
//     (and their Const flavours) reference another engine without copying.
//   - Capabilities. Engine, MutableEngine and VectorEngine are the interfaces
//     every algorithm is written against. A read-only view has no Ref method,
//     so passing it where a MutableEngine is required does not compile.
//   - Façades. Matrix, Vector and CoVector wrap a Storage by value; View and
//     ConstView wrap view engines. Arithmetic on Matrix operands checks shapes
//     at compile time (Mul of R×K by K×C yields R×C); Sum, Diff and Product
//     accept any engines and check shapes at runtime.
//
// On top sit the 4×4-and-below kernels used by projective geometry:
// Determinant, Inverse (Gauss-Jordan with full pivoting), InnerProduct and
// Trace. AsGonum, ToDense and FromGonum bridge to gonum.org/v1/gonum/mat.
//
// Index arguments are preconditions and are not validated; everything that
// can fail on caller data returns one of the sentinels in errors.go.
package matrix
