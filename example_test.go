package speakeasy2_test

import (
	"fmt"

	speakeasy2 "github.com/se2-go/speakeasy2"
	"github.com/se2-go/speakeasy2/neighbor"
)

func ExampleRun() {
	// two disconnected triangles
	neigh := [][]int{
		{1, 2}, {0, 2}, {0, 1},
		{4, 5}, {3, 5}, {3, 4},
	}
	view, err := neighbor.NewView(neigh, nil)
	if err != nil {
		panic(err)
	}

	membership, err := speakeasy2.Run(view, speakeasy2.Options{
		IndependentRuns:  3,
		TargetPartitions: 3,
		TargetClusters:   2,
		MinClust:         1,
		DiscardTransient: 0,
		RandomSeed:       1,
	})
	if err != nil {
		panic(err)
	}

	fmt.Println(membership[0][0] == membership[0][1])
	fmt.Println(membership[0][0] == membership[0][3])
	// Output:
	// true
	// false
}
