package dataset

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/spf13/cast"

	"github.com/aviatorml/delaybench/pkg/errors"
)

// LoadCSV reads a delimited file and returns a Dataset holding exactly the
// schema's column subset, preserving row order as read. The source file may
// carry more columns than the schema declares; extra columns are ignored.
func LoadCSV(path string, schema Schema) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewDataAccessError("open", path, err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(bufio.NewReader(file))
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.NewDataAccessError("read header", path, err)
	}

	// Map each declared column to its position in the file.
	positions := make([]int, len(schema))
	for i, f := range schema {
		positions[i] = -1
		for j, name := range header {
			if strings.TrimSpace(name) == f.Name {
				positions[i] = j
				break
			}
		}
		if positions[i] < 0 {
			return nil, errors.NewSchemaError(f.Name, "column not found in header")
		}
	}

	ds := New(schema)
	cells := make([]string, len(schema))
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewDataAccessError("read", path, err)
		}
		for i, pos := range positions {
			cells[i] = strings.TrimSpace(rec[pos])
		}
		if err := ds.Append(cells); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// toFloat coerces a raw cell to float64.
func toFloat(s string) (float64, error) {
	return cast.ToFloat64E(s)
}
