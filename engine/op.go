package engine

// Family groups operators that share kind resolution.
type Family uint8

const (
	// Arithmetic operators: + - * / ^ %% %/% and unary - +.
	Arithmetic Family = iota
	// Comparison operators: == != < <= > >=.
	Comparison
	// Logic operators: & | and unary !.
	Logic
	// Rounding operators: floor ceiling round trunc.
	Rounding
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case Arithmetic:
		return "arithmetic"
	case Comparison:
		return "comparison"
	case Logic:
		return "logic"
	case Rounding:
		return "rounding"
	default:
		return "unknown"
	}
}

// Fold is a set of operand shapes an operator folds over sequences.
type Fold uint8

const (
	// FoldSeqScalar folds sequence ⊕ scalar.
	FoldSeqScalar Fold = 1 << iota
	// FoldScalarSeq folds scalar ⊕ sequence.
	FoldScalarSeq
	// FoldSeqSeq folds sequence ⊕ sequence of equal length.
	FoldSeqSeq
	// FoldSeq folds a unary operator over a sequence.
	FoldSeq
)

// Has reports whether f contains x.
func (f Fold) Has(x Fold) bool { return f&x != 0 }

// Op is an elementwise operator.
type Op uint8

const (
	opInvalid Op = iota

	// Binary arithmetic.
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpPower
	OpMod
	OpIntDiv

	// Comparison.
	OpEqual
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual

	// Logic.
	OpAnd
	OpOr

	// Unary.
	OpNegate
	OpPlus
	OpNot
	OpFloor
	OpCeiling
	OpRound
	OpTrunc

	numOps
)

type opInfo struct {
	symbol string
	name   string
	family Family
	unary  bool
	fold   Fold
}

var ops = [numOps]opInfo{
	OpAdd:      {symbol: "+", name: "add", family: Arithmetic, fold: FoldSeqScalar | FoldScalarSeq | FoldSeqSeq},
	OpSubtract: {symbol: "-", name: "subtract", family: Arithmetic, fold: FoldSeqScalar | FoldSeqSeq},
	OpMultiply: {symbol: "*", name: "multiply", family: Arithmetic, fold: FoldSeqScalar | FoldScalarSeq},
	OpDivide:   {symbol: "/", name: "divide", family: Arithmetic},
	OpPower:    {symbol: "^", name: "power", family: Arithmetic},
	OpMod:      {symbol: "%%", name: "mod", family: Arithmetic},
	OpIntDiv:   {symbol: "%/%", name: "intdiv", family: Arithmetic, fold: FoldSeqScalar},

	OpEqual:        {symbol: "==", name: "equal", family: Comparison},
	OpNotEqual:     {symbol: "!=", name: "not_equal", family: Comparison},
	OpLess:         {symbol: "<", name: "less", family: Comparison},
	OpLessEqual:    {symbol: "<=", name: "less_equal", family: Comparison},
	OpGreater:      {symbol: ">", name: "greater", family: Comparison},
	OpGreaterEqual: {symbol: ">=", name: "greater_equal", family: Comparison},

	OpAnd: {symbol: "&", name: "and", family: Logic},
	OpOr:  {symbol: "|", name: "or", family: Logic},

	OpNegate:  {symbol: "-", name: "negate", family: Arithmetic, unary: true, fold: FoldSeq},
	OpPlus:    {symbol: "+", name: "plus", family: Arithmetic, unary: true, fold: FoldSeq},
	OpNot:     {symbol: "!", name: "not", family: Logic, unary: true},
	OpFloor:   {symbol: "floor", name: "floor", family: Rounding, unary: true},
	OpCeiling: {symbol: "ceiling", name: "ceiling", family: Rounding, unary: true},
	OpRound:   {symbol: "round", name: "round", family: Rounding, unary: true},
	OpTrunc:   {symbol: "trunc", name: "trunc", family: Rounding, unary: true},
}

// Valid reports whether o is a defined operator.
func (o Op) Valid() bool { return o > opInvalid && o < numOps }

// Symbol returns the operator symbol, e.g. "%/%".
func (o Op) Symbol() string {
	if !o.Valid() {
		return "?"
	}
	return ops[o].symbol
}

// Name returns a stable identifier suitable for metric labels.
func (o Op) Name() string {
	if !o.Valid() {
		return "invalid"
	}
	return ops[o].name
}

// String returns the symbol.
func (o Op) String() string { return o.Symbol() }

// Family returns the operator family.
func (o Op) Family() Family { return ops[o].family }

// IsUnary reports whether o takes one operand.
func (o Op) IsUnary() bool { return o.Valid() && ops[o].unary }

// IsBinary reports whether o takes two operands.
func (o Op) IsBinary() bool { return o.Valid() && !ops[o].unary }

// Folds returns the operand shapes o folds over sequences.
func (o Op) Folds() Fold {
	if !o.Valid() {
		return 0
	}
	return ops[o].fold
}

// rescans reports whether o can produce NA from complete operands.
func (o Op) rescans() bool {
	switch o {
	case OpDivide, OpIntDiv, OpMod, OpPower:
		return true
	default:
		return false
	}
}
