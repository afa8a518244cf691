package workbook

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestReadTable(t *testing.T) {
	expected := Table{
		{"Name", "Amount", "Paid"},
		{"Ada", "100.00", "Y"},
		{"Babbage", "25.50", "N"},
	}

	csv := `Name,Amount,Paid
Ada,100.00,Y
Babbage,25.50,N
`

	table, err := ReadTable(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Unexpected error returned from ReadTable (%v)", err)
	}

	if !reflect.DeepEqual(table, expected) {
		t.Errorf("Incorrect table\n   expected: %v\n   got:      %v\n", expected, table)
	}
}

func TestReadTableWithQuotedFields(t *testing.T) {
	expected := Table{
		{"Name", "Notes"},
		{"Ada", "first, foremost"},
	}

	csv := `Name,Notes
Ada,"first, foremost"
`

	table, err := ReadTable(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Unexpected error returned from ReadTable (%v)", err)
	}

	if !reflect.DeepEqual(table, expected) {
		t.Errorf("Incorrect table\n   expected: %v\n   got:      %v\n", expected, table)
	}
}

func TestReadTableWithRaggedRows(t *testing.T) {
	csv := `Name,Amount
Ada,100.00,Y
`

	_, err := ReadTable(strings.NewReader(csv))
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("Expected shape mismatch error for ragged CSV, got %v", err)
	}
}

func TestReadTableWithEmptyFile(t *testing.T) {
	_, err := ReadTable(strings.NewReader(""))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Expected invalid argument error for empty CSV, got %v", err)
	}
}

func TestTableValues(t *testing.T) {
	table := Table{
		{"a", "b"},
		{"c", "d"},
	}

	expected := [][]any{
		{"a", "b"},
		{"c", "d"},
	}

	if values := table.Values(); !reflect.DeepEqual(values, expected) {
		t.Errorf("Incorrect values\n   expected: %v\n   got:      %v\n", expected, values)
	}
}
