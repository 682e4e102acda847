package learning

import (
	"math"
	"math/rand"
)

// stratifiedSplit partitions sample indices into training and validation sets, holding out the
// validation fraction of each label separately. The training set is never left empty.
func stratifiedSplit(labels []float64, validationFraction float64, rng *rand.Rand) ([]int, []int) {
	byLabel := map[float64][]int{}
	var order []float64
	for i, label := range labels {
		if _, ok := byLabel[label]; !ok {
			order = append(order, label)
		}
		byLabel[label] = append(byLabel[label], i)
	}

	var train, validation []int
	for _, label := range order {
		indices := byLabel[label]
		rng.Shuffle(len(indices), func(i, j int) { indices[i], indices[j] = indices[j], indices[i] })

		held := int(math.Round(float64(len(indices)) * validationFraction))
		if held >= len(indices) {
			held = len(indices) - 1
		}
		validation = append(validation, indices[:held]...)
		train = append(train, indices[held:]...)
	}
	return train, validation
}

func subset(features [][]float64, targets, weights []float64, indices []int) ([][]float64, []float64, []float64) {
	x := make([][]float64, len(indices))
	y := make([]float64, len(indices))
	w := make([]float64, len(indices))
	for i, idx := range indices {
		x[i] = features[idx]
		y[i] = targets[idx]
		w[i] = weights[idx]
	}
	return x, y, w
}
