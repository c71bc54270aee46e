// Package seq provides random-access sequence adaptors used by the linalg
// expression engine.
//
// Every expression in linalg, whether it owns storage, views storage or
// computes its elements on demand, exposes its elements as a pair of
// Iterator values (begin and end). The adaptors in this package wrap an
// existing Iterator and reproduce the same contract, so that evaluation
// code never needs to know which adaptor it is walking:
//
//   - Slice: contiguous cursor over a []T (writable).
//   - Strided: fixed-step cursor over a base iterator, clamped at the end.
//   - Transposed: logical transpose of an R×C row-major sequence.
//   - Map and Map2: apply a function to one or two sequences in lock-step.
//
// Adaptors never copy the underlying data. Map and Map2 are read-only;
// Slice, Strided and Transposed are writable when their base is.
package seq
