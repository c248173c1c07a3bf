// Package statvec provides typed vectors with missing values and an
// elementwise operator engine in the style of statistical languages.
//
// A vector holds elements of one kind (logical, integer, double, complex,
// character or raw) and may be stored densely, as a lazy arithmetic
// sequence, as a boxed scalar, or in foreign memory outside the Go heap.
// Every kind reserves an NA value for missing data, and vectors track
// whether they are known to contain none.
//
// # Quick Start
//
//	rt := statvec.New(statvec.WithLogger(statvec.NewTextLogger(slog.LevelWarn)))
//	defer rt.Close()
//
//	x := vector.Ints(1, 2, model.NAInteger, 4)
//	y, err := rt.Eval("*", x, model.Float(0.5))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(vector.Format(y)) // [1] 0.5 1 NA 2
//
// # Semantics
//
// Binary operators promote both operands to a common kind along
// logical < integer < double < complex < character, recycle the shorter
// operand to the length of the longer one, and propagate NA. Arithmetic on
// sequences and scalars is folded into a new sequence when the result is
// representable. A temporary operand of the result kind and length is
// reused as the result buffer.
//
// Non-fatal conditions (coercion to NA, integer overflow, recycling of
// operands with incompatible lengths) are reported once per call through
// an engine.Reporter and logged with a throttle.
//
// # Packages
//
//   - model: element kinds, NA values and element conversion
//   - vector: the vector representations, ownership and attributes
//   - access: specialized and generic element access with per-site caching
//   - engine: the binary and unary operator nodes
package statvec
