package dataset

import "math"

// DropMissing returns a Dataset containing only the rows with no missing
// value in any column. Deterministic; relative row order is preserved and
// surviving rows are untouched.
func (d *Dataset) DropMissing() *Dataset {
	keep := make([]int, 0, d.rows)
rows:
	for i := 0; i < d.rows; i++ {
		for _, col := range d.numeric {
			if math.IsNaN(col[i]) {
				continue rows
			}
		}
		for _, col := range d.strings {
			if col[i] == "" {
				continue rows
			}
		}
		keep = append(keep, i)
	}
	return d.Select(keep)
}
