// Package preprocessing implements the in-place feature transformations of
// the pipeline: ordinal encoding of nominal columns and binarization of the
// delay target.
package preprocessing

import (
	"sort"

	"github.com/aviatorml/delaybench/core/model"
	"github.com/aviatorml/delaybench/dataset"
	"github.com/aviatorml/delaybench/pkg/errors"
)

// CategoryCodeMap maps each distinct raw category value to its code.
type CategoryCodeMap map[string]int

// OrdinalEncoder replaces nominal categorical columns with small positive
// integer codes.
//
// The vocabulary of each column is fixed at Fit time from the distinct
// values present; the canonical ordering is lexicographic ascending over
// the raw strings, so code assignment is reproducible across runs. Codes
// start at 1; 0 is reserved for unseen values, which cannot occur in this
// closed pipeline.
//
// The encoder is intentionally fitted on the full dataset before the
// train/test split so both partitions share one vocabulary. Re-fitting on
// an already-encoded dataset is only idempotent when the vocabulary is
// unchanged; encoding maps onto a freshly sorted vocabulary each time.
type OrdinalEncoder struct {
	model.BaseEstimator

	// Columns lists the nominal columns to encode.
	Columns []string

	// Codes holds the fitted per-column code maps.
	Codes map[string]CategoryCodeMap
}

// NewOrdinalEncoder creates an encoder for the given columns.
func NewOrdinalEncoder(columns ...string) *OrdinalEncoder {
	return &OrdinalEncoder{Columns: columns}
}

// Fit builds a CategoryCodeMap per column from the distinct values present
// in ds.
func (e *OrdinalEncoder) Fit(ds *dataset.Dataset) error {
	if ds.NumRows() == 0 {
		return errors.Wrap(errors.ErrEmptyData, "OrdinalEncoder.Fit")
	}

	codes := make(map[string]CategoryCodeMap, len(e.Columns))
	for _, name := range e.Columns {
		raw, err := ds.Strings(name)
		if err != nil {
			return err
		}

		seen := make(map[string]bool)
		for _, v := range raw {
			seen[v] = true
		}
		vocab := make([]string, 0, len(seen))
		for v := range seen {
			vocab = append(vocab, v)
		}
		sort.Strings(vocab)

		m := make(CategoryCodeMap, len(vocab))
		for i, v := range vocab {
			m[v] = i + 1
		}
		codes[name] = m
	}

	e.Codes = codes
	e.SetFitted()
	return nil
}

// Transform replaces each configured column's values with their codes in
// place. A value outside the fitted vocabulary is an error: the pipeline
// encodes before splitting, so every value must have been observed at Fit.
func (e *OrdinalEncoder) Transform(ds *dataset.Dataset) error {
	if !e.IsFitted() {
		return errors.NewNotFittedError("OrdinalEncoder", "Transform")
	}

	for _, name := range e.Columns {
		raw, err := ds.Strings(name)
		if err != nil {
			return err
		}
		m := e.Codes[name]
		encoded := make([]float64, len(raw))
		for i, v := range raw {
			code, ok := m[v]
			if !ok {
				return errors.NewValidationError(name, "value not in fitted vocabulary", v)
			}
			encoded[i] = float64(code)
		}
		if err := ds.SetCodes(name, encoded); err != nil {
			return err
		}
	}
	return nil
}

// FitTransform fits the encoder on ds and encodes it in place.
func (e *OrdinalEncoder) FitTransform(ds *dataset.Dataset) error {
	if err := e.Fit(ds); err != nil {
		return err
	}
	return e.Transform(ds)
}
