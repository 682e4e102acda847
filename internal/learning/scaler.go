package learning

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// standardScaler centers each column on its mean and scales it to unit (population) variance.
type standardScaler struct {
	mean  []float64
	scale []float64
}

func fitScaler(features [][]float64) *standardScaler {
	if len(features) == 0 {
		return &standardScaler{}
	}
	columns := len(features[0])
	s := &standardScaler{
		mean:  make([]float64, columns),
		scale: make([]float64, columns),
	}

	column := make([]float64, len(features))
	for j := 0; j < columns; j++ {
		for i, row := range features {
			column[i] = row[j]
		}
		mean, variance := stat.PopMeanVariance(column, nil)
		s.mean[j] = mean
		s.scale[j] = math.Sqrt(variance)
		if s.scale[j] < 1e-12 {
			s.scale[j] = 1
		}
	}
	return s
}

func (s *standardScaler) transform(row []float64) []float64 {
	out := make([]float64, len(row))
	for j, v := range row {
		if j < len(s.mean) {
			out[j] = (v - s.mean[j]) / s.scale[j]
		} else {
			out[j] = v
		}
	}
	return out
}

func (s *standardScaler) transformAll(features [][]float64) [][]float64 {
	out := make([][]float64, len(features))
	for i, row := range features {
		out[i] = s.transform(row)
	}
	return out
}
