package statvec_test

import (
	"fmt"

	"github.com/hupe1980/statvec"
	"github.com/hupe1980/statvec/engine"
	"github.com/hupe1980/statvec/model"
	"github.com/hupe1980/statvec/vector"
)

func Example() {
	rt := statvec.New()
	defer rt.Close()

	x := vector.Ints(1, 2, model.NAInteger, 4)
	y, _ := rt.Eval("*", x, model.Float(0.5))
	fmt.Println(vector.Format(y))

	seq, _ := vector.NewIntSequence(1, 1, 5)
	z, _ := rt.Eval("+", seq, model.Int(5))
	fmt.Println(vector.Format(z), z.(vector.Vector).Representation())

	// Output:
	// [1] 0.5 1 NA 2
	// [1] 6 7 8 9 10 sequence
}

func ExampleRuntime_Eval_warnings() {
	rt := statvec.New(statvec.WithWarningReporter(engine.ReporterFunc(func(w engine.Warning) {
		fmt.Println("warning:", w)
	})))
	defer rt.Close()

	z, _ := rt.Eval("+", vector.Ints(1, 2, 3), vector.Ints(10, 20))
	fmt.Println(vector.Format(z))

	// Output:
	// warning: In +: longer object length is not a multiple of shorter object length
	// [1] 11 22 13
}

func ExampleRuntime_Eval_scalars() {
	rt := statvec.New()
	defer rt.Close()

	z, _ := rt.Eval("+", model.Int(1), model.Int(2))
	e := z.(model.Elem)
	fmt.Println(e.Kind(), e)

	// Output:
	// integer 3
}
