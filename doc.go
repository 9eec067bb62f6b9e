// Package vecmat provides small-dimension linear algebra for 2D, 3D, and 4D
// geometry: float32 vectors with 2 to 4 components, square matrices of order 2
// to 4, and builders for the canonical transform matrices.
//
// # Vectors and matrices
//
// [Vec2], [Vec3], and [Vec4] are plain value types. Their zero values are the
// zero vectors. [Mat2], [Mat3], and [Mat4] are row-major arrays indexed as
// m[row][column]; their zero values are the zero matrices, and [Identity2],
// [Identity3], and [Identity4] are the identities. No operation modifies its
// receiver; everything returns new values, and all functions are safe for
// concurrent use.
//
// Matrices act on column vectors via MulVec, or equivalently via the vector's
// Transform method. Applying a matrix to a vector of a different dimension
// doesn't type check.
//
// # Tolerances
//
// Comparisons against zero use [Epsilon], which is derived from [Precision].
// A vector shorter than Epsilon is a null vector, a matrix whose determinant
// has a magnitude smaller than Epsilon is singular, and two vectors whose dot
// product is within Epsilon of zero are orthogonal. ApproxEqual methods compare
// component-wise with the same tolerance.
//
// # Undefined results
//
// Operations that are geometrically undefined for some inputs come in two
// forms. The Try form, such as [Vec3.TryNormalize] or [Mat4.TryInvert], reports
// failure by returning false. The plain form, such as [Vec3.Normalize] or
// [Mat4.Invert], panics instead and is meant for callers that have already
// established that the input is valid.
//
// Contract violations, such as out of range row indices, also panic.
//
// # Transforms
//
// The builders produce matrices for scaling ([Scale2], [Scale3]), rotation
// ([Rotate2], [RotateX3], [RotateY3], [RotateZ3]), translation
// ([HomogeneousTranslate2], [HomogeneousTranslate3]), shearing
// ([HomogeneousShear2], [HomogeneousShear3]), and projection ([Perspective],
// [Ortho]). Linear transforms exist in plain and homogeneous form. Translation
// and shearing exist in homogeneous form only, and projections operate on
// homogeneous 3D points.
//
// For interoperability, vectors and matrices convert to and from the types in
// [golang.org/x/image/math/f32].
package vecmat
