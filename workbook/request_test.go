package workbook

import (
	"errors"
	"net/http"
	"reflect"
	"testing"
)

func TestUpdateRange(t *testing.T) {
	data := [][]any{
		{"a", "b"},
		{"c", "d"},
		{"e", "f"},
	}

	expected := Descriptor{
		Path:   "/me/drive/items/01BEQXWX/workbook/worksheets/Sheet1/range(address='A1:B3')",
		Method: http.MethodPatch,
		Body: map[string]any{
			"values": data,
		},
	}

	descriptor, err := UpdateRange("01BEQXWX", "Sheet1", "A1:B3", data, UpdateOptions{})
	if err != nil {
		t.Fatalf("Unexpected error returned from UpdateRange (%v)", err)
	}

	if !reflect.DeepEqual(descriptor, expected) {
		t.Errorf("Incorrect descriptor\n   expected: %+v\n   got:      %+v\n", expected, descriptor)
	}
}

func TestUpdateRangeWithOptions(t *testing.T) {
	data := [][]any{
		{"a", "b"},
		{"c", "d"},
	}

	formats := [][]any{
		{"0.00", "0.00"},
		{"0.00", "0.00"},
	}

	expected := Descriptor{
		Path:   "/me/drive/items/01BEQXWX/workbook/worksheets/Sheet1/range(address='A1:B2')",
		Method: http.MethodPatch,
		Body: map[string]any{
			"values":       data,
			"numberFormat": formats,
			"rowHidden":    false,
		},
	}

	descriptor, err := UpdateRange("01BEQXWX", "Sheet1", "A1:B2", data, UpdateOptions{
		NumberFormat: formats,
		RowHidden:    false,
	})

	if err != nil {
		t.Fatalf("Unexpected error returned from UpdateRange (%v)", err)
	}

	if !reflect.DeepEqual(descriptor, expected) {
		t.Errorf("Incorrect descriptor\n   expected: %+v\n   got:      %+v\n", expected, descriptor)
	}
}

func TestUpdateRangeWithNilData(t *testing.T) {
	_, err := UpdateRange("01BEQXWX", "Sheet1", "A1:B3", nil, UpdateOptions{})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Expected invalid argument error for nil data, got %v", err)
	}
}

func TestUpdateRangeWithRaggedData(t *testing.T) {
	data := [][]any{
		{"a", "b"},
		{"c"},
	}

	_, err := UpdateRange("01BEQXWX", "Sheet1", "A1:B2", data, UpdateOptions{})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("Expected shape mismatch error for ragged data, got %v", err)
	}
}

func TestUpdateRangeWithMismatchedFormulas(t *testing.T) {
	data := [][]any{
		{"a", "b"},
		{"c", "d"},
	}

	formulas := [][]any{
		{"=A1", "=B1"},
	}

	_, err := UpdateRange("01BEQXWX", "Sheet1", "A1:B2", data, UpdateOptions{Formulas: formulas})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("Expected shape mismatch error for mismatched formulas, got %v", err)
	}
}

func TestUpdateRangeWithInvalidColumnHidden(t *testing.T) {
	data := [][]any{
		{"a", "b"},
	}

	_, err := UpdateRange("01BEQXWX", "Sheet1", "A1:B1", data, UpdateOptions{ColumnHidden: "yes"})
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("Expected type mismatch error for non-boolean columnHidden, got %v", err)
	}
}

func TestUpdateRangeWithMissingFileID(t *testing.T) {
	data := [][]any{
		{"a"},
	}

	_, err := UpdateRange("", "Sheet1", "A1:A1", data, UpdateOptions{})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Expected invalid argument error for missing file id, got %v", err)
	}
}

func TestGetRange(t *testing.T) {
	expected := Descriptor{
		Path:   "/me/drive/items/01BEQXWX/workbook/worksheets/Sheet1/range(address='A1:B3')",
		Method: http.MethodGet,
	}

	descriptor, err := GetRange("01BEQXWX", "Sheet1", "A1:B3")
	if err != nil {
		t.Fatalf("Unexpected error returned from GetRange (%v)", err)
	}

	if !reflect.DeepEqual(descriptor, expected) {
		t.Errorf("Incorrect descriptor\n   expected: %+v\n   got:      %+v\n", expected, descriptor)
	}

	if descriptor.Body != nil {
		t.Errorf("Expected nil body for get range, got %v", descriptor.Body)
	}
}

func TestInsertEmptyCellsWithDefaultShift(t *testing.T) {
	expected := Descriptor{
		Path:   "/me/drive/items/01BEQXWX/workbook/worksheets/Sheet1/range(address='A1:B3')/insert",
		Method: http.MethodPost,
		Body: map[string]any{
			"shift": "Down",
		},
	}

	descriptor, err := InsertEmptyCells("01BEQXWX", "Sheet1", "A1:B3", "")
	if err != nil {
		t.Fatalf("Unexpected error returned from InsertEmptyCells (%v)", err)
	}

	if !reflect.DeepEqual(descriptor, expected) {
		t.Errorf("Incorrect descriptor\n   expected: %+v\n   got:      %+v\n", expected, descriptor)
	}
}

func TestInsertEmptyCellsWithInvalidShift(t *testing.T) {
	_, err := InsertEmptyCells("01BEQXWX", "Sheet1", "A1:B3", "Sideways")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Expected invalid argument error for invalid shift, got %v", err)
	}
}

func TestClearRangeWithDefaultApplyTo(t *testing.T) {
	expected := Descriptor{
		Path:   "/me/drive/items/01BEQXWX/workbook/worksheets/Sheet1/range(address='A1:B3')/clear",
		Method: http.MethodPost,
		Body: map[string]any{
			"applyTo": "All",
		},
	}

	descriptor, err := ClearRange("01BEQXWX", "Sheet1", "A1:B3", "")
	if err != nil {
		t.Fatalf("Unexpected error returned from ClearRange (%v)", err)
	}

	if !reflect.DeepEqual(descriptor, expected) {
		t.Errorf("Incorrect descriptor\n   expected: %+v\n   got:      %+v\n", expected, descriptor)
	}
}

func TestClearRangeWithFormats(t *testing.T) {
	descriptor, err := ClearRange("01BEQXWX", "Sheet1", "A1:B3", "Formats")
	if err != nil {
		t.Fatalf("Unexpected error returned from ClearRange (%v)", err)
	}

	if !reflect.DeepEqual(descriptor.Body, map[string]any{"applyTo": "Formats"}) {
		t.Errorf("Incorrect body\n   expected: %v\n   got:      %v\n", map[string]any{"applyTo": "Formats"}, descriptor.Body)
	}
}

func TestDeleteRange(t *testing.T) {
	expected := Descriptor{
		Path:   "/me/drive/items/X/workbook/worksheets/Sheet1/range(address='A1:B3')/delete",
		Method: http.MethodPost,
		Body: map[string]any{
			"shift": "Up",
		},
	}

	descriptor, err := DeleteRange("X", "Sheet1", "A1:B3", "")
	if err != nil {
		t.Fatalf("Unexpected error returned from DeleteRange (%v)", err)
	}

	if !reflect.DeepEqual(descriptor, expected) {
		t.Errorf("Incorrect descriptor\n   expected: %+v\n   got:      %+v\n", expected, descriptor)
	}
}

func TestGetRangeFormat(t *testing.T) {
	expected := Descriptor{
		Path:   "/me/drive/items/01BEQXWX/workbook/worksheets/Sheet1/range(address='A1:B3')/format",
		Method: http.MethodGet,
	}

	descriptor, err := GetRangeFormat("01BEQXWX", "Sheet1", "A1:B3")
	if err != nil {
		t.Fatalf("Unexpected error returned from GetRangeFormat (%v)", err)
	}

	if !reflect.DeepEqual(descriptor, expected) {
		t.Errorf("Incorrect descriptor\n   expected: %+v\n   got:      %+v\n", expected, descriptor)
	}
}
