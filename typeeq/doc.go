// Package typeeq provides proofs that two type parameters denote the same type.
//
// A TypeEq[L, R] value can only be obtained when L and R are identical, so
// code holding one may move values between the two type parameters without
// a conversion and without a fallible type assertion:
//
//	func first[T any](v T) (int, bool) {
//		eq, ok := typeeq.Prove[T, int]()
//		if !ok {
//			return 0, false
//		}
//		return eq.ToRight(v), true
//	}
//
// Lift carries a proof through a type constructor: from L == R it derives
// F[L] == F[R] for a generic type F.
package typeeq
