package workbook

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Table is a row-major rectangular table of cell values, typically read from
// a CSV file. Every row is expected to have the same number of columns.
type Table [][]string

// ReadTable reads comma-separated records into a Table. A ragged file (rows
// of unequal length) fails with ErrShapeMismatch.
func ReadTable(f io.Reader) (Table, error) {
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	table := Table(records)
	if _, _, err := table.Shape(); err != nil {
		return nil, err
	}

	return table, nil
}

// LoadTable reads a CSV file into a Table.
func LoadTable(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	return ReadTable(f)
}

// Shape returns the row and column counts of the table. An empty table fails
// with ErrInvalidArgument and a ragged table with ErrShapeMismatch.
func (t Table) Shape() (int, int, error) {
	if len(t) == 0 {
		return 0, 0, fmt.Errorf("%w: empty table", ErrInvalidArgument)
	}

	cols := len(t[0])
	for i, row := range t {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrShapeMismatch, i+1, len(row), cols)
		}
	}

	return len(t), cols, nil
}

// Values converts the table to the row-major cell matrix used in request
// bodies.
func (t Table) Values() [][]any {
	values := make([][]any, len(t))
	for i, row := range t {
		values[i] = make([]any, len(row))
		for j, v := range row {
			values[i][j] = v
		}
	}

	return values
}
