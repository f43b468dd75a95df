package hist_test

import (
	"fmt"

	"github.com/AmitVSingh/process-signals-dashboard/stats/hist"
)

func ExampleCompute() {
	h, err := hist.Compute([]float64{1, 1, 2, 2, 2, 3}, 3)
	if err != nil {
		panic(err)
	}
	fmt.Println(h.Counts)
	fmt.Printf("%.1f\n", h.Centers()[1])

	// Output:
	// [2 3 1]
	// 2.0
}
