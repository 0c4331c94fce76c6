package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	deberrors "github.com/aviatorml/delaybench/pkg/errors"
)

func TestROCCurveEndpoints(t *testing.T) {
	yTrue := mat.NewVecDense(6, []float64{0, 0, 0, 1, 1, 1})
	score := mat.NewVecDense(6, []float64{0.1, 0.2, 0.3, 0.7, 0.8, 0.9})

	points, err := ROCCurve(yTrue, score)
	require.NoError(t, err)

	assert.Equal(t, Point{0, 0}, points[0])
	assert.Equal(t, Point{1, 1}, points[len(points)-1])

	// Perfect ranking walks up the TPR axis before any FPR is spent.
	assert.Equal(t, Point{FPR: 0, TPR: 1}, points[3])
}

func TestROCCurveDegenerate(t *testing.T) {
	yTrue := mat.NewVecDense(3, []float64{1, 1, 1})
	score := mat.NewVecDense(3, []float64{0.1, 0.2, 0.3})

	_, err := ROCCurve(yTrue, score)
	var degErr *deberrors.DegenerateLabelsError
	require.ErrorAs(t, err, &degErr)
}

func TestSaveROCPlot(t *testing.T) {
	yTrue := mat.NewVecDense(4, []float64{0, 1, 0, 1})
	score := mat.NewVecDense(4, []float64{0.2, 0.8, 0.4, 0.6})
	points, err := ROCCurve(yTrue, score)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "roc.png")
	require.NoError(t, SaveROCPlot(path, map[string][]Point{"demo": points}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
