package learning

import (
	"math"
	"math/rand"
)

// classifier is the capability shared by every ensemble member.
type classifier interface {
	fit(features [][]float64, labels, weights []float64) error
	predictProba(row []float64) float64
}

// importanceReporter is implemented by tree-based members.
type importanceReporter interface {
	featureImportance() []float64
}

// gradientBoosting fits shallow regression trees to log-loss gradients, with Newton-step leaf values.
type gradientBoosting struct {
	estimators     int
	learningRate   float64
	maxDepth       int
	minSamplesLeaf int

	init       float64
	trees      []*regressionTree
	importance []float64
}

func newGradientBoosting() *gradientBoosting {
	return &gradientBoosting{estimators: 100, learningRate: 0.1, maxDepth: 3, minSamplesLeaf: 1}
}

func (g *gradientBoosting) fit(features [][]float64, labels, weights []float64) error {
	n := len(features)
	p0 := math.Min(math.Max(weightedMean(labels, weights, allIndices(n)), 1e-6), 1-1e-6)
	g.init = math.Log(p0 / (1 - p0))
	g.trees = g.trees[:0]

	raw := make([]float64, n)
	for i := range raw {
		raw[i] = g.init
	}
	prob := make([]float64, n)
	residual := make([]float64, n)

	var importance []float64
	for m := 0; m < g.estimators; m++ {
		for i := range raw {
			prob[i] = sigmoid(raw[i])
			residual[i] = labels[i] - prob[i]
		}

		tree := &regressionTree{
			maxDepth:       g.maxDepth,
			minSamplesLeaf: g.minSamplesLeaf,
			leafValue: func(idx []int) float64 {
				var num, den float64
				for _, i := range idx {
					num += weights[i] * residual[i]
					den += weights[i] * prob[i] * (1 - prob[i])
				}
				if den < 1e-12 {
					return 0
				}
				return num / den
			},
		}
		tree.fit(features, residual, weights, allIndices(n))
		g.trees = append(g.trees, tree)

		if importance == nil {
			importance = make([]float64, len(tree.importance))
		}
		for j, v := range tree.importance {
			importance[j] += v
		}
		for i, row := range features {
			raw[i] += g.learningRate * tree.predict(row)
		}
	}
	g.importance = normalizeImportance(importance)
	return nil
}

func (g *gradientBoosting) predictProba(row []float64) float64 {
	raw := g.init
	for _, tree := range g.trees {
		raw += g.learningRate * tree.predict(row)
	}
	return sigmoid(raw)
}

func (g *gradientBoosting) featureImportance() []float64 {
	return g.importance
}

// randomForest averages fully grown trees fitted on bootstrap samples with sqrt(features) per split.
type randomForest struct {
	trees          int
	maxDepth       int
	minSamplesLeaf int
	rng            *rand.Rand

	fitted     []*regressionTree
	importance []float64
}

func newRandomForest(rng *rand.Rand) *randomForest {
	return &randomForest{trees: 50, maxDepth: 10, minSamplesLeaf: 1, rng: rng}
}

func (f *randomForest) fit(features [][]float64, labels, weights []float64) error {
	n := len(features)
	columns := len(features[0])
	maxFeatures := max(1, int(math.Sqrt(float64(columns))))
	f.fitted = f.fitted[:0]

	importance := make([]float64, columns)
	for t := 0; t < f.trees; t++ {
		sample := make([]int, n)
		for i := range sample {
			sample[i] = f.rng.Intn(n)
		}

		tree := &regressionTree{
			maxDepth:       f.maxDepth,
			minSamplesLeaf: f.minSamplesLeaf,
			maxFeatures:    maxFeatures,
			rng:            f.rng,
		}
		tree.fit(features, labels, weights, sample)
		f.fitted = append(f.fitted, tree)

		for j, v := range normalizeImportance(tree.importance) {
			importance[j] += v
		}
	}
	f.importance = normalizeImportance(importance)
	return nil
}

func (f *randomForest) predictProba(row []float64) float64 {
	if len(f.fitted) == 0 {
		return 0.5
	}
	sum := 0.0
	for _, tree := range f.fitted {
		sum += tree.predict(row)
	}
	return sum / float64(len(f.fitted))
}

func (f *randomForest) featureImportance() []float64 {
	return f.importance
}

// logisticRegression is an L2-regularized linear baseline fitted with batch gradient descent.
type logisticRegression struct {
	iterations   int
	learningRate float64
	l2           float64

	coef []float64
	bias float64
}

func newLogisticRegression() *logisticRegression {
	return &logisticRegression{iterations: 1000, learningRate: 0.1, l2: 0.01}
}

func (l *logisticRegression) fit(features [][]float64, labels, weights []float64) error {
	columns := len(features[0])
	l.coef = make([]float64, columns)
	l.bias = 0

	totalW := 0.0
	for _, w := range weights {
		totalW += w
	}
	if totalW <= 0 {
		return &TrainingError{Message: "sample weights sum to zero"}
	}

	grad := make([]float64, columns)
	for it := 0; it < l.iterations; it++ {
		for j := range grad {
			grad[j] = 0
		}
		gradBias := 0.0
		for i, row := range features {
			diff := weights[i] * (l.predictProba(row) - labels[i])
			for j, v := range row {
				grad[j] += diff * v
			}
			gradBias += diff
		}
		for j := range l.coef {
			l.coef[j] -= l.learningRate * (grad[j]/totalW + l.l2*l.coef[j])
		}
		l.bias -= l.learningRate * gradBias / totalW
	}
	return nil
}

func (l *logisticRegression) predictProba(row []float64) float64 {
	z := l.bias
	for j, c := range l.coef {
		z += c * row[j]
	}
	return sigmoid(z)
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
