package dataset

import (
	"math"
	"math/rand/v2"

	"github.com/aviatorml/delaybench/pkg/errors"
)

// Sample returns a uniformly-random subset containing round(fraction × n)
// rows, drawn via a seeded pseudo-random permutation. The same
// (dataset, fraction, seed) triple always yields the identical subset;
// rows appear in permutation order.
func (d *Dataset) Sample(fraction float64, seed uint64) (*Dataset, error) {
	if fraction <= 0 || fraction > 1 {
		return nil, errors.NewValueError("Dataset.Sample", "fraction must be in (0, 1]")
	}

	n := d.rows
	keep := int(math.Round(fraction * float64(n)))

	r := rand.New(rand.NewPCG(seed, seed))
	perm := r.Perm(n)
	return d.Select(perm[:keep]), nil
}
