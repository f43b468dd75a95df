package dataset_test

import (
	"fmt"
	"strings"

	"github.com/AmitVSingh/process-signals-dashboard/dataset"
)

func ExampleParseHeader() {
	prefix, name, ok := dataset.ParseHeader("Sensor 4 - Temperature")
	fmt.Println(prefix, name, ok)

	_, _, ok = dataset.ParseHeader("Temperature")
	fmt.Println(ok)

	// Output:
	// Sensor 4 Temperature true
	// false
}

func ExampleLoadCSVReader() {
	csv := "Time - Temp,Sensor 1 - Temp\n0.0,20.5\n0.1,20.7\n"

	ds, err := dataset.LoadCSVReader(strings.NewReader(csv))
	if err != nil {
		panic(err)
	}

	s, err := ds.Get("Temp")
	if err != nil {
		panic(err)
	}
	fmt.Println(s.Name, s.Len())

	// Output:
	// Temp 2
}
