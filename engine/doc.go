// Package engine implements elementwise operators over vectors.
//
// A BinaryNode applies one binary operator; a UnaryNode applies one unary
// operator. Each node owns access caches (see package access), so keeping a
// node per call site lets repeated evaluations reuse specialized access.
//
// Every invocation runs the same steps:
//
//  1. NULL operands short-circuit to an empty result.
//  2. The compute and result kinds are resolved from the operator family.
//  3. The result length is the longer operand length, or 0 when either is
//     empty. A shorter operand is recycled; a length that is not a multiple
//     raises a recycling warning.
//  4. A length-1 result whose operands carry no attributes and cannot be
//     reused is returned as a bare model.Elem.
//  5. A Temporary operand buffer of the result kind and length is reused as
//     the destination (left operand first).
//  6. Sequence operands fold into a new Sequence where the operator is closed
//     over arithmetic progressions.
//  7. Otherwise elements are computed one by one. NA operands produce NA,
//     except where the operator ignores NA (1^NA, NA^0, FALSE & NA, TRUE | NA).
//  8. Completeness is the conjunction of the operands' flags, or a re-scan
//     for division, modulo, integer division and power.
//  9. Attributes come from the operands whose length equals the result length;
//     on key collisions the right operand wins.
//
// Warnings are latched per invocation and handed to a Reporter at most once
// per condition. Kind errors are returned as *IncompatibleKindError.
package engine
