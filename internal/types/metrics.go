package types

import "time"

// FeatureImportance is the averaged importance of a single feature across tree-based models.
type FeatureImportance struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}

// TrainingMetrics summarizes one training run evaluated on the held-out split.
type TrainingMetrics struct {
	Accuracy          float64             `json:"accuracy"`
	Precision         float64             `json:"precision"`
	Recall            float64             `json:"recall"`
	F1                float64             `json:"f1"`
	AUC               float64             `json:"auc"`
	BrierScore        float64             `json:"brier_score"`
	CalibrationError  float64             `json:"calibration_error"`
	TrainingSamples   int                 `json:"training_samples"`
	ValidationSamples int                 `json:"validation_samples"`
	FeatureImportance []FeatureImportance `json:"feature_importance"`
	TrainedAt         time.Time           `json:"trained_at"`
}
