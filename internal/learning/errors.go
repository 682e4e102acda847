package learning

import "fmt"

// TrainingError represents a training run that could not be completed.
type TrainingError struct {
	Message string
	Cause   error
}

func (e *TrainingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("training failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("training failed: %s", e.Message)
}

func (e *TrainingError) Unwrap() error {
	return e.Cause
}
