// Package seq provides the sequence primitives the rest of econlab is built on.
//
// The package offers:
//
//   - Floating-point ranges (Arange, ArangeTo, ArangeFrom, Linspace) produced by
//     iterative accumulation, so every value equals the previous one plus step.
//   - Integer arithmetic series (SeriesSum, SeriesSumTo).
//   - Slice views: Windowed, Chunked, Trimmed, Rotated and After.
//   - Predicates and reducers: Const, Unique, UniqueFunc, Empty, IterEqual,
//     Bind, Product and ProductFrom.
//   - Optional helpers (NextOrZero, Default, Get) for values that may be absent.
//
// Every sequence returned here is an iter.Seq and can be ranged over more than
// once. Functions that need several passes take slices; callers holding a
// one-shot iterator materialize it with slices.Collect first.
package seq
