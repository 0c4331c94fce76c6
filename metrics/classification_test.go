package metrics

import (
	"math"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/mat"

	deberrors "github.com/aviatorml/delaybench/pkg/errors"
)

func vec(vals []float64) *mat.VecDense {
	return mat.NewVecDense(len(vals), vals)
}

func TestROCAUC(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		score   []float64
		want    float64
		wantErr bool
	}{
		{
			name:  "Perfect classifier",
			yTrue: []float64{0, 0, 0, 1, 1, 1},
			score: []float64{0.1, 0.2, 0.3, 0.7, 0.8, 0.9},
			want:  1.0,
		},
		{
			name:  "Worst classifier",
			yTrue: []float64{0, 0, 0, 1, 1, 1},
			score: []float64{0.9, 0.8, 0.7, 0.3, 0.2, 0.1},
			want:  0.0,
		},
		{
			name:  "Constant scorer",
			yTrue: []float64{0, 1, 0, 1},
			score: []float64{0.5, 0.5, 0.5, 0.5},
			want:  0.5,
		},
		{
			name:  "Typical case",
			yTrue: []float64{0, 0, 1, 1},
			score: []float64{0.1, 0.4, 0.35, 0.8},
			want:  0.75,
		},
		{
			name:  "Partial ties",
			yTrue: []float64{0, 1, 0, 1},
			score: []float64{0.2, 0.2, 0.1, 0.9},
			want:  0.875,
		},
		{
			name:    "Non-binary labels",
			yTrue:   []float64{0, 0.5, 1},
			score:   []float64{0.1, 0.5, 0.9},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ROCAUC(vec(tt.yTrue), vec(tt.score))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ROCAUC = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestROCAUCDegenerateLabels(t *testing.T) {
	for name, yTrue := range map[string][]float64{
		"all positive": {1, 1, 1, 1},
		"all negative": {0, 0, 0, 0},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ROCAUC(vec(yTrue), vec([]float64{0.1, 0.4, 0.35, 0.8}))

			var degErr *deberrors.DegenerateLabelsError
			if !deberrors.As(err, &degErr) {
				t.Fatalf("expected DegenerateLabelsError, got %v", err)
			}
			if degErr.Count != 4 {
				t.Errorf("Count = %d, want 4", degErr.Count)
			}
		})
	}
}

func TestROCAUCDimensionMismatch(t *testing.T) {
	_, err := ROCAUC(vec([]float64{0, 1}), vec([]float64{0.5}))

	var dimErr *deberrors.DimensionError
	if !deberrors.As(err, &dimErr) {
		t.Fatalf("expected DimensionError, got %v", err)
	}
}

// AUC is a rank statistic: any strictly monotone transform of the scores
// must leave it unchanged.
func TestROCAUCMonotoneInvariance(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 11))
	n := 200
	yTrue := make([]float64, n)
	score := make([]float64, n)
	for i := 0; i < n; i++ {
		yTrue[i] = float64(r.IntN(2))
		score[i] = r.Float64()*8 - 4 // raw margins, not probabilities
	}

	base, err := ROCAUC(vec(yTrue), vec(score))
	if err != nil {
		t.Fatal(err)
	}

	transforms := map[string]func(float64) float64{
		"sigmoid": func(v float64) float64 { return 1 / (1 + math.Exp(-v)) },
		"affine":  func(v float64) float64 { return 3*v + 100 },
		"exp":     func(v float64) float64 { return math.Exp(v) },
	}
	for name, f := range transforms {
		mapped := make([]float64, n)
		for i, v := range score {
			mapped[i] = f(v)
		}
		got, err := ROCAUC(vec(yTrue), vec(mapped))
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-base) > 1e-12 {
			t.Errorf("%s transform changed AUC: %v != %v", name, got, base)
		}
	}
}

// A random scorer over balanced classes should sit near 0.5.
func TestROCAUCRandomScorer(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 5))
	n := 5000
	yTrue := make([]float64, n)
	score := make([]float64, n)
	for i := 0; i < n; i++ {
		yTrue[i] = float64(i % 2)
		score[i] = r.Float64()
	}

	got, err := ROCAUC(vec(yTrue), vec(score))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-0.5) > 0.03 {
		t.Errorf("random scorer AUC = %v, want ~0.5", got)
	}
}

func TestLogLoss(t *testing.T) {
	got, err := LogLoss(vec([]float64{1, 0}), vec([]float64{0.8, 0.1}))
	if err != nil {
		t.Fatal(err)
	}
	want := -(math.Log(0.8) + math.Log(0.9)) / 2
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("LogLoss = %v, want %v", got, want)
	}

	// Clipping keeps extreme scores finite.
	got, err = LogLoss(vec([]float64{1}), vec([]float64{0}))
	if err != nil {
		t.Fatal(err)
	}
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Errorf("LogLoss not clipped: %v", got)
	}
}
