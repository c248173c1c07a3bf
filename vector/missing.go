package vector

import (
	"slices"

	"github.com/hupe1980/statvec/internal/namask"
)

// NAMask returns the positions of v holding NA. Complete vectors yield an
// empty mask without scanning.
func NAMask(v Vector) (*namask.Mask, error) {
	m := namask.New()
	if v.IsComplete() {
		return m, nil
	}
	if err := namask.Scan(m, v.Len(), naProbe(v)); err != nil {
		return nil, err
	}
	return m, nil
}

// WhichNA returns the ascending positions of v holding NA.
func WhichNA(v Vector) []int {
	if v.IsComplete() {
		return nil
	}
	if m, err := NAMask(v); err == nil {
		return slices.Collect(m.Positions())
	}
	var out []int
	isNA := naProbe(v)
	for i := 0; i < v.Len(); i++ {
		if isNA(i) {
			out = append(out, i)
		}
	}
	return out
}

// CountNA returns the number of NA elements in v.
func CountNA(v Vector) int {
	if v.IsComplete() {
		return 0
	}
	m := namask.Get()
	defer namask.Put(m)
	if err := namask.Scan(m, v.Len(), naProbe(v)); err != nil {
		return len(WhichNA(v))
	}
	return int(m.Cardinality()) //nolint:gosec // bounded by the 32-bit mask
}

func naProbe(v Vector) func(i int) bool {
	switch d := v.(type) {
	case *Dense[int32]:
		return func(i int) bool { return IsNA(d.data[i]) }
	case *Dense[float64]:
		return func(i int) bool { return IsNA(d.data[i]) }
	case *Dense[complex128]:
		return func(i int) bool { return IsNA(d.data[i]) }
	case *Dense[string]:
		return func(i int) bool { return IsNA(d.data[i]) }
	default:
		return func(i int) bool { return v.Elt(i).IsNA() }
	}
}
