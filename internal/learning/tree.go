package learning

import (
	"math/rand"
	"sort"
)

// minGain is the smallest impurity decrease that justifies a split.
const minGain = 1e-12

type treeNode struct {
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
	value     float64
}

func (n *treeNode) isLeaf() bool {
	return n.left == nil
}

// regressionTree is a CART tree minimizing weighted squared error.
type regressionTree struct {
	maxDepth       int
	minSamplesLeaf int
	maxFeatures    int // 0 considers every feature
	rng            *rand.Rand

	// leafValue computes a leaf's output from the sample indices it holds. Defaults to the weighted mean target.
	leafValue func(indices []int) float64

	root       *treeNode
	importance []float64
}

func (t *regressionTree) fit(features [][]float64, targets, weights []float64, indices []int) {
	columns := 0
	if len(features) > 0 {
		columns = len(features[0])
	}
	t.importance = make([]float64, columns)
	if t.leafValue == nil {
		t.leafValue = func(idx []int) float64 { return weightedMean(targets, weights, idx) }
	}
	if t.minSamplesLeaf < 1 {
		t.minSamplesLeaf = 1
	}
	t.root = t.build(features, targets, weights, indices, 0)
}

func (t *regressionTree) build(features [][]float64, targets, weights []float64, indices []int, depth int) *treeNode {
	node := &treeNode{value: t.leafValue(indices)}
	if depth >= t.maxDepth || len(indices) < 2*t.minSamplesLeaf {
		return node
	}

	split, ok := t.bestSplit(features, targets, weights, indices)
	if !ok {
		return node
	}

	var left, right []int
	for _, idx := range indices {
		if features[idx][split.feature] <= split.threshold {
			left = append(left, idx)
		} else {
			right = append(right, idx)
		}
	}

	t.importance[split.feature] += split.gain
	node.feature = split.feature
	node.threshold = split.threshold
	node.left = t.build(features, targets, weights, left, depth+1)
	node.right = t.build(features, targets, weights, right, depth+1)
	return node
}

type splitCandidate struct {
	feature   int
	threshold float64
	gain      float64
}

// bestSplit sweeps every candidate feature in sorted order, tracking weighted sums so each
// threshold is evaluated in constant time.
func (t *regressionTree) bestSplit(features [][]float64, targets, weights []float64, indices []int) (splitCandidate, bool) {
	var totalW, totalWY, totalWY2 float64
	for _, idx := range indices {
		w := weights[idx]
		totalW += w
		totalWY += w * targets[idx]
		totalWY2 += w * targets[idx] * targets[idx]
	}
	if totalW <= 0 {
		return splitCandidate{}, false
	}
	parentSSE := totalWY2 - totalWY*totalWY/totalW

	best := splitCandidate{gain: minGain}
	found := false
	sorted := make([]int, len(indices))

	for _, feature := range t.candidateFeatures(len(t.importance)) {
		copy(sorted, indices)
		sort.SliceStable(sorted, func(i, j int) bool {
			return features[sorted[i]][feature] < features[sorted[j]][feature]
		})

		var leftW, leftWY, leftWY2 float64
		for i := 0; i < len(sorted)-1; i++ {
			idx := sorted[i]
			w := weights[idx]
			leftW += w
			leftWY += w * targets[idx]
			leftWY2 += w * targets[idx] * targets[idx]

			current := features[idx][feature]
			next := features[sorted[i+1]][feature]
			if current == next || i+1 < t.minSamplesLeaf || len(sorted)-(i+1) < t.minSamplesLeaf {
				continue
			}

			rightW := totalW - leftW
			if leftW <= 0 || rightW <= 0 {
				continue
			}
			rightWY := totalWY - leftWY
			rightWY2 := totalWY2 - leftWY2
			sse := (leftWY2 - leftWY*leftWY/leftW) + (rightWY2 - rightWY*rightWY/rightW)

			if gain := parentSSE - sse; gain > best.gain {
				best = splitCandidate{feature: feature, threshold: (current + next) / 2, gain: gain}
				found = true
			}
		}
	}
	return best, found
}

func (t *regressionTree) candidateFeatures(columns int) []int {
	if t.maxFeatures <= 0 || t.maxFeatures >= columns || t.rng == nil {
		all := make([]int, columns)
		for i := range all {
			all[i] = i
		}
		return all
	}
	return t.rng.Perm(columns)[:t.maxFeatures]
}

func (t *regressionTree) predict(row []float64) float64 {
	node := t.root
	for node != nil && !node.isLeaf() {
		if row[node.feature] <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	if node == nil {
		return 0
	}
	return node.value
}

func weightedMean(values, weights []float64, indices []int) float64 {
	var sumW, sum float64
	for _, idx := range indices {
		sumW += weights[idx]
		sum += weights[idx] * values[idx]
	}
	if sumW <= 0 {
		return 0
	}
	return sum / sumW
}

func allIndices(n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return indices
}

// normalizeImportance scales importances to sum to 1 (all zeros stay zeros).
func normalizeImportance(importance []float64) []float64 {
	total := 0.0
	for _, v := range importance {
		total += v
	}
	out := make([]float64, len(importance))
	if total <= 0 {
		return out
	}
	for i, v := range importance {
		out[i] = v / total
	}
	return out
}
