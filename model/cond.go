package model

import "strings"

// Cond is a set of warning conditions raised while coercing or computing elements.
// Conditions accumulate with | and are reported once per operation.
type Cond uint8

const (
	// CondNAIntroduced is raised when a coercion produces NA from a non-NA value.
	CondNAIntroduced Cond = 1 << iota
	// CondOutOfRange is raised when a value does not fit into a raw byte.
	CondOutOfRange
	// CondImaginaryDiscarded is raised when a complex with non-zero imaginary part becomes real.
	CondImaginaryDiscarded
	// CondIntegerOverflow is raised when integer arithmetic overflows into NA.
	CondIntegerOverflow
	// CondRecycling is raised when the longer operand length is not a multiple of the shorter.
	CondRecycling
)

var condMessages = [...]string{
	"NAs introduced by coercion",
	"out-of-range values treated as 0 in coercion to raw",
	"imaginary parts discarded in coercion",
	"NAs produced by integer overflow",
	"longer object length is not a multiple of shorter object length",
}

// Has reports whether all conditions in x are set in c.
func (c Cond) Has(x Cond) bool { return c&x == x && x != 0 }

// Each calls fn for every single condition set in c, in declaration order.
func (c Cond) Each(fn func(Cond)) {
	for i := range condMessages {
		bit := Cond(1) << i
		if c&bit != 0 {
			fn(bit)
		}
	}
}

// Message returns the user-facing warning text of a single condition.
func (c Cond) Message() string {
	for i := range condMessages {
		if c == Cond(1)<<i {
			return condMessages[i]
		}
	}
	return ""
}

// String joins the messages of all set conditions.
func (c Cond) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	c.Each(func(x Cond) { parts = append(parts, x.Message()) })
	return strings.Join(parts, "; ")
}
