package preprocessing

import (
	"github.com/aviatorml/delaybench/dataset"
)

// DelayThreshold is the default cut in delay minutes: a flight counts as
// delayed when its arrival delay strictly exceeds this value.
const DelayThreshold = 10.0

// LabelBinarizer turns the continuous delay column into a 0/1 target in
// place: value > Threshold becomes 1, everything else (including the
// boundary and negative delays) becomes 0. Stateless and total.
type LabelBinarizer struct {
	Column    string
	Threshold float64
}

// NewLabelBinarizer creates a binarizer for the given column and threshold.
func NewLabelBinarizer(column string, threshold float64) *LabelBinarizer {
	return &LabelBinarizer{Column: column, Threshold: threshold}
}

// Transform rewrites the column with binary labels.
func (b *LabelBinarizer) Transform(ds *dataset.Dataset) error {
	col, err := ds.Floats(b.Column)
	if err != nil {
		return err
	}
	labels := make([]float64, len(col))
	for i, v := range col {
		if v > b.Threshold {
			labels[i] = 1
		}
	}
	return ds.SetFloats(b.Column, labels)
}
