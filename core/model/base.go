// Package model defines the estimator state machine and the capability
// interfaces the pipeline consumes models and transformers through.
package model

// EstimatorState represents the training state of an estimator.
type EstimatorState int

const (
	// NotFitted means the estimator has not been fitted yet.
	NotFitted EstimatorState = iota
	// Fitted means the estimator has been fitted.
	Fitted
)

// BaseEstimator is the common base for every fitted component.
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted reports whether the estimator has been fitted.
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted marks the estimator as fitted.
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset returns the estimator to its initial state.
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
