// Package report renders evaluation artifacts, currently ROC curves.
package report

import (
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/aviatorml/delaybench/pkg/errors"
)

// Point is one (false positive rate, true positive rate) pair.
type Point struct {
	FPR float64
	TPR float64
}

// ROCCurve sweeps the score threshold from high to low and returns the
// resulting operating points, starting at (0,0) and ending at (1,1). Tied
// scores collapse into a single point.
func ROCCurve(yTrue, score *mat.VecDense) ([]Point, error) {
	n := yTrue.Len()
	if n == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "ROCCurve")
	}
	if score.Len() != n {
		return nil, errors.NewDimensionError("ROCCurve", n, score.Len(), 0)
	}

	var nPos, nNeg int
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == 1 {
			nPos++
		} else {
			nNeg++
		}
	}
	if nPos == 0 || nNeg == 0 {
		class := 0.0
		count := nNeg
		if nNeg == 0 {
			class, count = 1, nPos
		}
		return nil, errors.NewDegenerateLabelsError("scored", class, count)
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return score.AtVec(idx[a]) > score.AtVec(idx[b])
	})

	points := []Point{{0, 0}}
	var tp, fp int
	for i := 0; i < n; {
		j := i
		for j < n && score.AtVec(idx[j]) == score.AtVec(idx[i]) {
			j++
		}
		for k := i; k < j; k++ {
			if yTrue.AtVec(idx[k]) == 1 {
				tp++
			} else {
				fp++
			}
		}
		points = append(points, Point{
			FPR: float64(fp) / float64(nNeg),
			TPR: float64(tp) / float64(nPos),
		})
		i = j
	}
	return points, nil
}

// SaveROCPlot renders one or more named ROC curves to an image file, with
// the chance diagonal for reference. The format follows the extension
// (png, pdf, svg, ...).
func SaveROCPlot(path string, curves map[string][]Point) error {
	p := plot.New()
	p.Title.Text = "ROC curves"
	p.X.Label.Text = "False positive rate"
	p.Y.Label.Text = "True positive rate"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	sort.Strings(names)

	args := make([]interface{}, 0, 2*len(names))
	for _, name := range names {
		xys := make(plotter.XYs, len(curves[name]))
		for i, pt := range curves[name] {
			xys[i].X = pt.FPR
			xys[i].Y = pt.TPR
		}
		args = append(args, name, xys)
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return errors.Wrap(err, "adding ROC curves")
	}

	diagonal := plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}}
	chance, err := plotter.NewLine(diagonal)
	if err != nil {
		return errors.Wrap(err, "adding chance diagonal")
	}
	chance.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(chance)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.NewDataAccessError("write plot", path, err)
	}
	return nil
}
