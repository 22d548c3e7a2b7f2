package sparse3d_test

import (
	"fmt"

	"github.com/katalvlaran/sparse3d"
)

// Example demonstrates building a sparse volume, writing a handful of
// values, and letting OptimizeBs pick a cheaper block size.
func Example() {
	a, err := sparse3d.New(16, 16, 16, 8, 0)
	if err != nil {
		panic(err)
	}
	a.Set(0, 0, 0, 1)
	a.Set(15, 15, 15, 2)

	fmt.Println(a.Get(0, 0, 0))
	fmt.Println(a.Get(8, 8, 8))

	if err := a.OptimizeBs(); err != nil {
		panic(err)
	}
	fmt.Println(a.Get(15, 15, 15))

	// Output:
	// 1
	// 0
	// 2
}
