package pipeline

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// split partitions [0,n) into disjoint train and test index sets using a
// seeded shuffle, so the same seed always yields the same split. The
// train side is never left empty: the test size is clamped to n-1.
func split(n int, testFraction float64, seed int64) (train, test []int, err error) {
	if testFraction < 0 || testFraction >= 1 {
		return nil, nil, fmt.Errorf("test fraction %v out of range [0,1)", testFraction)
	}
	perm := rand.New(rand.NewSource(seed)).Perm(n)

	nTest := int(math.Round(testFraction * float64(n)))
	if nTest > n-1 {
		nTest = n - 1
	}

	test = append([]int(nil), perm[:nTest]...)
	train = append([]int(nil), perm[nTest:]...)
	sort.Ints(train)
	sort.Ints(test)
	return train, test, nil
}
