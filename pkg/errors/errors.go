// Package errors provides the error taxonomy for the delay benchmark
// pipeline. Every constructor attaches a stack trace via cockroachdb/errors,
// and every error type implements zerolog's ObjectMarshaler so failures can
// be logged structurally.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Pipeline error types
//
// ===========================================================================

// DataAccessError indicates the input file is missing or unreadable.
// It is fatal: the run aborts immediately.
type DataAccessError struct {
	Path string
	Op   string
	Err  error
}

func (e *DataAccessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("delaybench: %s %q: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("delaybench: %s %q failed", e.Op, e.Path)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *DataAccessError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("path", e.Path).
		Str("operation", e.Op).
		Str("type", "DataAccessError")
}

// NewDataAccessError creates a DataAccessError with a stack trace.
func NewDataAccessError(op, path string, err error) error {
	return errors.WithStack(&DataAccessError{Path: path, Op: op, Err: err})
}

// SchemaError indicates an expected column is absent or has the wrong kind.
// It is fatal: the run aborts immediately.
type SchemaError struct {
	Column string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("delaybench: column %q: %s", e.Column, e.Reason)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *SchemaError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("column", e.Column).
		Str("reason", e.Reason).
		Str("type", "SchemaError")
}

// NewSchemaError creates a SchemaError with a stack trace.
func NewSchemaError(column, reason string) error {
	return errors.WithStack(&SchemaError{Column: column, Reason: reason})
}

// DegenerateLabelsError indicates a partition contains a single label class,
// leaving ROC-AUC undefined. It is fatal for that evaluation call only; the
// driver may continue with the remaining evaluations.
type DegenerateLabelsError struct {
	Partition string
	Class     float64
	Count     int
}

func (e *DegenerateLabelsError) Error() string {
	return fmt.Sprintf("delaybench: %s partition contains only class %g (%d rows); AUC is undefined",
		e.Partition, e.Class, e.Count)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *DegenerateLabelsError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("partition", e.Partition).
		Float64("class", e.Class).
		Int("count", e.Count).
		Str("type", "DegenerateLabelsError")
}

// NewDegenerateLabelsError creates a DegenerateLabelsError with a stack trace.
func NewDegenerateLabelsError(partition string, class float64, count int) error {
	return errors.WithStack(&DegenerateLabelsError{Partition: partition, Class: class, Count: count})
}

// ===========================================================================
//
//	General parameter and shape errors
//
// ===========================================================================

// ValueError indicates an argument value is invalid for the operation.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("delaybench: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace.
func NewValueError(op, message string) error {
	return errors.WithStack(&ValueError{Op: op, Message: message})
}

// ValidationError indicates a named parameter failed validation.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("delaybench: validation failed for parameter %q: %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a ValidationError with a stack trace.
func NewValidationError(param, reason string, value interface{}) error {
	return errors.WithStack(&ValidationError{ParamName: param, Reason: reason, Value: value})
}

// DimensionError indicates mismatched input dimensions.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("delaybench: %s: dimension mismatch on axis %d (%s). Expected %d, got %d",
		e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	return errors.WithStack(&DimensionError{Op: op, Expected: expected, Got: got, Axis: axis})
}

// NotFittedError indicates Transform or PredictScore was called before Fit.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("delaybench: %s: this estimator is not fitted yet. Call Fit() before using %s()",
		e.ModelName, e.Method)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace.
func NewNotFittedError(modelName, method string) error {
	return errors.WithStack(&NotFittedError{ModelName: modelName, Method: method})
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain matching target's type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common error variables
//
// ===========================================================================

var (
	// ErrEmptyData indicates an operation received a dataset with no rows.
	ErrEmptyData = New("empty data")
)
