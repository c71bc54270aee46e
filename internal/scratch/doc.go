// Package scratch provides typed temporary buffers for the evaluator.
//
// Evaluation writes straight into the destination whenever that is safe.
// When the destination overlaps an operand that is read at a different
// position, or a kernel needs an intermediate, the evaluator borrows a
// buffer from here and returns it when done.
package scratch
