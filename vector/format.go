package vector

import (
	"fmt"
	"strings"

	"github.com/hupe1980/statvec/model"
)

// maxFormatted caps the number of elements Format prints.
const maxFormatted = 100

// Format renders v on one line, e.g. "[1] 1 2 NA" or "integer(0)".
func Format(v model.Value) string {
	if IsNull(v) {
		return "NULL"
	}
	vec, ok := v.(Vector)
	if !ok {
		if e, ok := v.(model.Elem); ok {
			return "[1] " + e.String()
		}
		return fmt.Sprintf("<%s>", v.Kind())
	}
	n := vec.Len()
	if n == 0 {
		return vec.Kind().String() + "(0)"
	}
	var sb strings.Builder
	if vec.Kind() == model.KindList {
		sb.WriteString("list(")
		for i := 0; i < min(n, maxFormatted); i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(Format(vec.Elt(i).AsItem()))
		}
		if n > maxFormatted {
			fmt.Fprintf(&sb, ", ... %d more", n-maxFormatted)
		}
		sb.WriteString(")")
		return sb.String()
	}
	sb.WriteString("[1]")
	for i := 0; i < min(n, maxFormatted); i++ {
		sb.WriteByte(' ')
		sb.WriteString(vec.Elt(i).String())
	}
	if n > maxFormatted {
		fmt.Fprintf(&sb, " ... %d more", n-maxFormatted)
	}
	return sb.String()
}
