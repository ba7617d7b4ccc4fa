package extract

import (
	"errors"
	"fmt"
)

// ErrRecognition marks a hard failure of the entity-recognition capability.
// Callers can distinguish it from an extraction that simply found nothing.
var ErrRecognition = errors.New("entity recognition failed")

// RecognitionError wraps the underlying capability error behind ErrRecognition
type RecognitionError struct {
	Cause error
}

func (e *RecognitionError) Error() string {
	return fmt.Sprintf("entity recognition failed: %v", e.Cause)
}

func (e *RecognitionError) Unwrap() error {
	return e.Cause
}

func (e *RecognitionError) Is(target error) bool {
	return target == ErrRecognition
}
