// Package classifier wraps the pre-trained temperature-category model. The
// model is an opaque artifact produced by an offline training job; this
// package only loads it and answers Classify calls.
package classifier

import (
	"errors"
	"fmt"
)

// Category is the classifier's output label.
type Category string

const (
	CategoryLow    Category = "Low"
	CategoryNormal Category = "Normal"
	CategoryHigh   Category = "High"
)

// ErrModelUnavailable is returned when the model artifact cannot be loaded.
// It is fatal to the whole pipeline: no assessment can run without a model.
var ErrModelUnavailable = errors.New("classifier model unavailable")

// ErrFeatureMismatch is returned when the supplied feature vector does not
// match the schema the model was trained on.
var ErrFeatureMismatch = errors.New("feature vector does not match model schema")

// Model is the capability the pipeline needs from any classifier
// implementation. Implementations must be deterministic for a loaded model.
type Model interface {
	// Classify maps a feature vector to a category label.
	Classify(features []float64) (Category, error)
	// FeatureNames returns the trained feature order.
	FeatureNames() []string
}

func validCategory(classes []Category, c Category) bool {
	for _, k := range classes {
		if k == c {
			return true
		}
	}
	return false
}

func checkWidth(want []string, features []float64) error {
	if len(features) != len(want) {
		return fmt.Errorf("%w: got %d features, model expects %d (%v)",
			ErrFeatureMismatch, len(features), len(want), want)
	}
	return nil
}
