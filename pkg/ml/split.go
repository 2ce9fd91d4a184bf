package ml

import "math/rand/v2"

// StratifiedSplit partitions rows into train and test sets, preserving the
// label ratio in both. The split is seeded and happens before any group
// feature is computed.
func StratifiedSplit(rows []Row, testFraction float64, seed int64) (train, test []Row) {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)+1))

	var pos, neg []int
	for i, r := range rows {
		if r.Label {
			pos = append(pos, i)
		} else {
			neg = append(neg, i)
		}
	}

	take := func(idx []int) (tr, te []int) {
		shuffled := make([]int, len(idx))
		copy(shuffled, idx)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		n := int(float64(len(shuffled)) * testFraction)
		return shuffled[n:], shuffled[:n]
	}

	posTrain, posTest := take(pos)
	negTrain, negTest := take(neg)

	for _, i := range append(posTrain, negTrain...) {
		train = append(train, rows[i])
	}
	for _, i := range append(posTest, negTest...) {
		test = append(test, rows[i])
	}
	return train, test
}
