package modelselection

import (
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Fold is one train/test index pair of a cross-validation split.
type Fold struct {
	TrainIndices []int
	TestIndices  []int
}

// Splitter generates cross-validation folds over n rows.
type Splitter interface {
	Split(n int, y *mat.VecDense) []Fold
	NSplits() int
}

// KFold splits rows into k consecutive folds, optionally shuffling with a
// fixed seed first.
type KFold struct {
	K       int
	Shuffle bool
	Seed    uint64
}

// NewKFold creates a k-fold splitter.
func NewKFold(k int, shuffle bool, seed uint64) *KFold {
	if k < 2 {
		k = 5
	}
	return &KFold{K: k, Shuffle: shuffle, Seed: seed}
}

// NSplits returns the number of folds.
func (kf *KFold) NSplits() int {
	return kf.K
}

// Split generates train/test indices for each fold. The label vector is
// ignored; it is part of the signature so splitters are interchangeable.
func (kf *KFold) Split(n int, _ *mat.VecDense) []Fold {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	if kf.Shuffle {
		r := rand.New(rand.NewPCG(kf.Seed, kf.Seed))
		r.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}

	folds := make([]Fold, kf.K)
	foldSize := n / kf.K
	remainder := n % kf.K

	start := 0
	for i := 0; i < kf.K; i++ {
		size := foldSize
		if i < remainder {
			size++
		}
		test := append([]int(nil), indices[start:start+size]...)
		train := make([]int, 0, n-size)
		train = append(train, indices[:start]...)
		train = append(train, indices[start+size:]...)
		sort.Ints(test)
		sort.Ints(train)
		folds[i] = Fold{TrainIndices: train, TestIndices: test}
		start += size
	}
	return folds
}

// StratifiedKFold distributes each label class evenly across folds, which
// keeps every fold two-class even on imbalanced delay labels.
type StratifiedKFold struct {
	K       int
	Shuffle bool
	Seed    uint64
}

// NewStratifiedKFold creates a stratified k-fold splitter.
func NewStratifiedKFold(k int, shuffle bool, seed uint64) *StratifiedKFold {
	if k < 2 {
		k = 5
	}
	return &StratifiedKFold{K: k, Shuffle: shuffle, Seed: seed}
}

// NSplits returns the number of folds.
func (skf *StratifiedKFold) NSplits() int {
	return skf.K
}

// Split generates stratified train/test indices for each fold.
func (skf *StratifiedKFold) Split(n int, y *mat.VecDense) []Fold {
	classIndices := make(map[float64][]int)
	classOrder := []float64{}
	for i := 0; i < n; i++ {
		label := y.AtVec(i)
		if _, ok := classIndices[label]; !ok {
			classOrder = append(classOrder, label)
		}
		classIndices[label] = append(classIndices[label], i)
	}
	sort.Float64s(classOrder)

	if skf.Shuffle {
		r := rand.New(rand.NewPCG(skf.Seed, skf.Seed))
		for _, label := range classOrder {
			indices := classIndices[label]
			r.Shuffle(len(indices), func(i, j int) {
				indices[i], indices[j] = indices[j], indices[i]
			})
		}
	}

	folds := make([]Fold, skf.K)
	for _, label := range classOrder {
		indices := classIndices[label]
		nClass := len(indices)
		foldSize := nClass / skf.K
		remainder := nClass % skf.K

		pos := 0
		for i := 0; i < skf.K; i++ {
			size := foldSize
			if i < remainder {
				size++
			}
			folds[i].TestIndices = append(folds[i].TestIndices, indices[pos:pos+size]...)
			pos += size
		}
	}

	for i := range folds {
		inTest := make(map[int]bool, len(folds[i].TestIndices))
		for _, idx := range folds[i].TestIndices {
			inTest[idx] = true
		}
		for j := 0; j < n; j++ {
			if !inTest[j] {
				folds[i].TrainIndices = append(folds[i].TrainIndices, j)
			}
		}
		sort.Ints(folds[i].TestIndices)
	}
	return folds
}
