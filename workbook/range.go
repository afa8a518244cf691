package workbook

import (
	"fmt"
)

// RangeOf returns the range address that a table occupies when written to a
// worksheet starting at the top-left cell, e.g. a 3x2 table yields "A1:B3".
func (t Table) RangeOf() (string, error) {
	rows, cols, err := t.Shape()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("A1:%s%d", columnLetters(cols), rows), nil
}

// columnLetters encodes a 1-based column count as spreadsheet column letters
// using bijective base-26 (A=1 .. Z=26, AA=27, AZ=52, ZZ=702, AAA=703).
func columnLetters(col int) string {
	letters := ""
	for col > 0 {
		letters = string(rune('A'+(col-1)%26)) + letters
		col = (col - 1) / 26
	}

	return letters
}
