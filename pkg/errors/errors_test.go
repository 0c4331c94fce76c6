package errors

import (
	"io/fs"
	"testing"
)

func TestDataAccessError(t *testing.T) {
	err := NewDataAccessError("open", "/missing/flights.csv", fs.ErrNotExist)

	var dataErr *DataAccessError
	if !As(err, &dataErr) {
		t.Fatalf("expected DataAccessError, got %T", err)
	}
	if dataErr.Path != "/missing/flights.csv" {
		t.Errorf("Path = %q", dataErr.Path)
	}
	if !Is(err, fs.ErrNotExist) {
		t.Error("wrapped cause should survive errors.Is")
	}
}

func TestSchemaError(t *testing.T) {
	err := NewSchemaError("ARRIVAL_DELAY", "column not found in header")

	var schemaErr *SchemaError
	if !As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %T", err)
	}
	want := `delaybench: column "ARRIVAL_DELAY": column not found in header`
	if schemaErr.Error() != want {
		t.Errorf("Error() = %q, want %q", schemaErr.Error(), want)
	}
}

func TestDegenerateLabelsError(t *testing.T) {
	err := NewDegenerateLabelsError("test", 1, 42)

	var degErr *DegenerateLabelsError
	if !As(err, &degErr) {
		t.Fatalf("expected DegenerateLabelsError, got %T", err)
	}
	if degErr.Partition != "test" || degErr.Count != 42 {
		t.Errorf("unexpected fields: %+v", degErr)
	}
}

func TestNotFittedError(t *testing.T) {
	err := NewNotFittedError("OrdinalEncoder", "Transform")

	var nfErr *NotFittedError
	if !As(err, &nfErr) {
		t.Fatalf("expected NotFittedError, got %T", err)
	}
}

func TestWrapPreservesType(t *testing.T) {
	base := NewValueError("Sample", "fraction must be in (0, 1]")
	wrapped := Wrap(base, "sampling failed")

	var valErr *ValueError
	if !As(wrapped, &valErr) {
		t.Fatal("ValueError should be reachable through the wrap chain")
	}
}
