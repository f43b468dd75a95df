package smooth_test

import (
	"fmt"

	"github.com/AmitVSingh/process-signals-dashboard/dsp/smooth"
)

func ExampleMovingAverage() {
	out, err := smooth.MovingAverage([]float64{1, 2, 3, 4, 5}, 3)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.2f %.2f %.2f %.2f %.2f\n", out[0], out[1], out[2], out[3], out[4])

	// Output:
	// 1.33 2.00 3.00 4.00 4.67
}
