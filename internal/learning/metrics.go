package learning

import (
	"math"
	"sort"

	"github.com/jonathan/interview-odds/internal/types"
)

const (
	decisionThreshold  = 0.5
	calibrationBins    = 10
	topImportanceCount = 10
)

// evaluate scores ensemble probabilities against outcome targets. Targets are binarized at 0.25.
func evaluate(probabilities, targets []float64) types.TrainingMetrics {
	labels := binarize(targets)
	metrics := types.TrainingMetrics{ValidationSamples: len(labels), AUC: 0.5}
	if len(labels) == 0 {
		return metrics
	}

	var tp, fp, tn, fn float64
	brier := 0.0
	for i, p := range probabilities {
		predicted := p >= decisionThreshold
		actual := labels[i] == 1
		switch {
		case predicted && actual:
			tp++
		case predicted && !actual:
			fp++
		case !predicted && !actual:
			tn++
		default:
			fn++
		}
		brier += (p - labels[i]) * (p - labels[i])
	}

	n := float64(len(labels))
	metrics.Accuracy = (tp + tn) / n
	metrics.Precision = safeDiv(tp, tp+fp)
	metrics.Recall = safeDiv(tp, tp+fn)
	metrics.F1 = safeDiv(2*metrics.Precision*metrics.Recall, metrics.Precision+metrics.Recall)
	metrics.AUC = rocAUC(probabilities, labels)
	metrics.BrierScore = brier / n
	metrics.CalibrationError = expectedCalibrationError(probabilities, labels)
	return metrics
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// rocAUC computes the area under the ROC curve from the Mann-Whitney U statistic, averaging the
// ranks of tied scores. A single-class set yields 0.5.
func rocAUC(probabilities, labels []float64) float64 {
	var positives, negatives float64
	for _, l := range labels {
		if l == 1 {
			positives++
		} else {
			negatives++
		}
	}
	if positives == 0 || negatives == 0 {
		return 0.5
	}

	order := allIndices(len(probabilities))
	sort.SliceStable(order, func(i, j int) bool {
		return probabilities[order[i]] < probabilities[order[j]]
	})

	rankSum := 0.0
	for i := 0; i < len(order); {
		j := i
		for j+1 < len(order) && probabilities[order[j+1]] == probabilities[order[i]] {
			j++
		}
		// ranks are 1-based; tied scores share the average rank
		rank := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			if labels[order[k]] == 1 {
				rankSum += rank
			}
		}
		i = j + 1
	}

	u := rankSum - positives*(positives+1)/2
	return u / (positives * negatives)
}

// expectedCalibrationError sums, over ten equal-width probability bins, the bin share times the
// absolute gap between observed frequency and mean prediction.
func expectedCalibrationError(probabilities, labels []float64) float64 {
	var count [calibrationBins]float64
	var predicted [calibrationBins]float64
	var actual [calibrationBins]float64

	for i, p := range probabilities {
		bin := min(int(p*calibrationBins), calibrationBins-1)
		bin = max(bin, 0)
		count[bin]++
		predicted[bin] += p
		actual[bin] += labels[i]
	}

	total := float64(len(probabilities))
	ece := 0.0
	for b := 0; b < calibrationBins; b++ {
		if count[b] == 0 {
			continue
		}
		ece += (count[b] / total) * math.Abs(actual[b]/count[b]-predicted[b]/count[b])
	}
	return ece
}

// topImportances averages member importances and returns the ten largest, descending.
func topImportances(members []importanceReporter) []types.FeatureImportance {
	averaged := make([]float64, len(types.FeatureNames))
	reporting := 0
	for _, m := range members {
		importance := m.featureImportance()
		if len(importance) != len(averaged) {
			continue
		}
		reporting++
		for j, v := range importance {
			averaged[j] += v
		}
	}

	result := make([]types.FeatureImportance, 0, len(averaged))
	for j, name := range types.FeatureNames {
		value := 0.0
		if reporting > 0 {
			value = averaged[j] / float64(reporting)
		}
		result = append(result, types.FeatureImportance{Feature: name, Importance: value})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Importance > result[j].Importance
	})
	return result[:min(len(result), topImportanceCount)]
}
