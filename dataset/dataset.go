// Package dataset implements the tabular data model for the pipeline:
// a schema-typed, column-major dataset with CSV loading, deterministic
// subsampling and missing-value removal.
//
// Numeric cells are stored as float64 with NaN marking a missing value;
// categorical cells are stored as strings with "" marking a missing value.
// Encoding a categorical column rewrites it in place as numeric codes.
package dataset

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/aviatorml/delaybench/pkg/errors"
)

// Kind is the semantic type of a column.
type Kind int

const (
	// KindInt holds integer-valued measurements (calendar fields, codes).
	KindInt Kind = iota
	// KindCategorical holds nominal string identifiers.
	KindCategorical
	// KindContinuous holds continuous measurements.
	KindContinuous
)

// Field is one named, typed column of a schema.
type Field struct {
	Name string
	Kind Kind
}

// Schema is the ordered set of columns a Dataset carries.
type Schema []Field

// Index returns the position of the named field, or -1.
func (s Schema) Index(name string) int {
	for i, f := range s {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// Names returns the column names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Flight dataset column names, matching the source CSV header.
const (
	ColMonth              = "MONTH"
	ColDay                = "DAY"
	ColDayOfWeek          = "DAY_OF_WEEK"
	ColAirline            = "AIRLINE"
	ColFlightNumber       = "FLIGHT_NUMBER"
	ColDestinationAirport = "DESTINATION_AIRPORT"
	ColOriginAirport      = "ORIGIN_AIRPORT"
	ColAirTime            = "AIR_TIME"
	ColDepartureTime      = "DEPARTURE_TIME"
	ColDistance           = "DISTANCE"
	ColArrivalDelay       = "ARRIVAL_DELAY"
)

// FlightSchema returns the fixed column subset the pipeline works on.
func FlightSchema() Schema {
	return Schema{
		{ColMonth, KindInt},
		{ColDay, KindInt},
		{ColDayOfWeek, KindInt},
		{ColAirline, KindCategorical},
		{ColFlightNumber, KindCategorical},
		{ColDestinationAirport, KindCategorical},
		{ColOriginAirport, KindCategorical},
		{ColAirTime, KindContinuous},
		{ColDepartureTime, KindContinuous},
		{ColDistance, KindContinuous},
		{ColArrivalDelay, KindContinuous},
	}
}

// FlightCategoricals returns the nominal columns the encoder maps to codes.
func FlightCategoricals() []string {
	return []string{ColAirline, ColFlightNumber, ColDestinationAirport, ColOriginAirport}
}

// Dataset is an ordered collection of rows sharing a schema.
type Dataset struct {
	schema  Schema
	numeric map[string][]float64
	strings map[string][]string
	rows    int
}

// New creates an empty Dataset with the given schema.
func New(schema Schema) *Dataset {
	d := &Dataset{
		schema:  append(Schema(nil), schema...),
		numeric: make(map[string][]float64),
		strings: make(map[string][]string),
	}
	for _, f := range schema {
		if f.Kind == KindCategorical {
			d.strings[f.Name] = nil
		} else {
			d.numeric[f.Name] = nil
		}
	}
	return d
}

// NumRows returns the number of rows.
func (d *Dataset) NumRows() int {
	return d.rows
}

// Schema returns a copy of the current schema. Kinds reflect in-place
// mutations: an encoded categorical column reports KindInt.
func (d *Dataset) Schema() Schema {
	return append(Schema(nil), d.schema...)
}

// Append adds one row given raw cell values in schema order. Numeric cells
// that fail to parse are recorded as missing rather than rejected, matching
// how the source file represents absent measurements.
func (d *Dataset) Append(cells []string) error {
	if len(cells) != len(d.schema) {
		return errors.NewDimensionError("Dataset.Append", len(d.schema), len(cells), 1)
	}
	for i, f := range d.schema {
		if f.Kind == KindCategorical {
			d.strings[f.Name] = append(d.strings[f.Name], cells[i])
			continue
		}
		d.numeric[f.Name] = append(d.numeric[f.Name], parseCell(cells[i]))
	}
	d.rows++
	return nil
}

// Strings returns the raw values of a categorical column.
func (d *Dataset) Strings(name string) ([]string, error) {
	col, ok := d.strings[name]
	if !ok {
		if _, numeric := d.numeric[name]; numeric {
			return nil, errors.NewSchemaError(name, "column is not categorical")
		}
		return nil, errors.NewSchemaError(name, "column not found")
	}
	return col, nil
}

// Floats returns the values of a numeric column.
func (d *Dataset) Floats(name string) ([]float64, error) {
	col, ok := d.numeric[name]
	if !ok {
		if _, categorical := d.strings[name]; categorical {
			return nil, errors.NewSchemaError(name, "column is still categorical")
		}
		return nil, errors.NewSchemaError(name, "column not found")
	}
	return col, nil
}

// SetCodes replaces a categorical column with its integer codes in place.
// The column's kind becomes KindInt.
func (d *Dataset) SetCodes(name string, codes []float64) error {
	if _, ok := d.strings[name]; !ok {
		return errors.NewSchemaError(name, "column is not categorical")
	}
	if len(codes) != d.rows {
		return errors.NewDimensionError("Dataset.SetCodes", d.rows, len(codes), 0)
	}
	delete(d.strings, name)
	d.numeric[name] = codes
	d.schema[d.schema.Index(name)].Kind = KindInt
	return nil
}

// SetFloats replaces the values of a numeric column in place.
func (d *Dataset) SetFloats(name string, vals []float64) error {
	if _, ok := d.numeric[name]; !ok {
		return errors.NewSchemaError(name, "column is not numeric")
	}
	if len(vals) != d.rows {
		return errors.NewDimensionError("Dataset.SetFloats", d.rows, len(vals), 0)
	}
	d.numeric[name] = vals
	return nil
}

// Select returns a new Dataset containing the given rows, in the given
// order. Row indices may not repeat.
func (d *Dataset) Select(indices []int) *Dataset {
	out := New(d.schema)
	for name, col := range d.numeric {
		sub := make([]float64, len(indices))
		for i, idx := range indices {
			sub[i] = col[idx]
		}
		out.numeric[name] = sub
	}
	for name, col := range d.strings {
		sub := make([]string, len(indices))
		for i, idx := range indices {
			sub[i] = col[idx]
		}
		out.strings[name] = sub
	}
	out.rows = len(indices)
	return out
}

// FeatureNames returns the schema-ordered column names minus any excluded
// ones. This fixes the column order of Matrix, so positional feature
// indices (e.g. for categorical pass-through) can be derived from it.
func (d *Dataset) FeatureNames(exclude ...string) []string {
	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		skip[name] = true
	}
	var names []string
	for _, f := range d.schema {
		if !skip[f.Name] {
			names = append(names, f.Name)
		}
	}
	return names
}

// Matrix assembles the feature matrix over all non-excluded columns, in
// schema order. Every included column must already be numeric.
func (d *Dataset) Matrix(exclude ...string) (*mat.Dense, error) {
	names := d.FeatureNames(exclude...)
	if d.rows == 0 || len(names) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "Dataset.Matrix")
	}
	X := mat.NewDense(d.rows, len(names), nil)
	for j, name := range names {
		col, err := d.Floats(name)
		if err != nil {
			return nil, err
		}
		for i := 0; i < d.rows; i++ {
			X.Set(i, j, col[i])
		}
	}
	return X, nil
}

// Vector returns a numeric column as a vector.
func (d *Dataset) Vector(name string) (*mat.VecDense, error) {
	if d.rows == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "Dataset.Vector")
	}
	col, err := d.Floats(name)
	if err != nil {
		return nil, err
	}
	v := mat.NewVecDense(d.rows, nil)
	for i, val := range col {
		v.SetVec(i, val)
	}
	return v, nil
}

func parseCell(s string) float64 {
	f, err := toFloat(s)
	if err != nil || s == "" {
		return math.NaN()
	}
	return f
}
