package workbook

import (
	"fmt"
	"net/http"
	"strings"
)

// Descriptor is a complete, self-contained specification of one workbook API
// call - the path relative to the API version segment, the HTTP method and
// the request body (nil for GET requests). It is consumed by the transport,
// never cached or reused.
type Descriptor struct {
	Path   string
	Method string
	Body   map[string]any
}

// UpdateOptions holds the optional fields of an update range request. Unset
// fields are omitted from the request body entirely. The list-typed fields
// must have the same shape as the data being written. ColumnHidden and
// RowHidden are declared as any so that a non-boolean value can be rejected
// with ErrTypeMismatch rather than silently coerced.
type UpdateOptions struct {
	NumberFormat  [][]any
	Formulas      [][]any
	FormulasLocal [][]any
	FormulasR1C1  [][]any
	ColumnHidden  any
	RowHidden     any
}

// UpdateRange builds the PATCH descriptor that writes data (and any optional
// formats/formulas) to a worksheet range.
func UpdateRange(fileID, worksheet, area string, data [][]any, options UpdateOptions) (Descriptor, error) {
	if err := required("file id", fileID, "worksheet", worksheet, "range", area); err != nil {
		return Descriptor{}, err
	}

	if data == nil {
		return Descriptor{}, fmt.Errorf("%w: data", ErrInvalidArgument)
	}

	rows, cols, err := shapeOf(data)
	if err != nil {
		return Descriptor{}, fmt.Errorf("data: %w", err)
	}

	body := map[string]any{
		"values": data,
	}

	lists := map[string][][]any{
		"numberFormat":  options.NumberFormat,
		"formulas":      options.Formulas,
		"formulasLocal": options.FormulasLocal,
		"formulasR1C1":  options.FormulasR1C1,
	}

	for field, v := range lists {
		if v == nil {
			continue
		}

		r, c, err := shapeOf(v)
		if err != nil {
			return Descriptor{}, fmt.Errorf("%s: %w", field, err)
		}

		if r != rows || c != cols {
			return Descriptor{}, fmt.Errorf("%w: %s is %dx%d, data is %dx%d", ErrShapeMismatch, field, r, c, rows, cols)
		}

		body[field] = v
	}

	flags := map[string]any{
		"columnHidden": options.ColumnHidden,
		"rowHidden":    options.RowHidden,
	}

	for field, v := range flags {
		if v == nil {
			continue
		}

		if _, ok := v.(bool); !ok {
			return Descriptor{}, fmt.Errorf("%w: %s must be a boolean", ErrTypeMismatch, field)
		}

		body[field] = v
	}

	return Descriptor{
		Path:   rangePath(fileID, worksheet, area),
		Method: http.MethodPatch,
		Body:   body,
	}, nil
}

// GetRange builds the GET descriptor that retrieves the properties of a
// worksheet range.
func GetRange(fileID, worksheet, area string) (Descriptor, error) {
	if err := required("file id", fileID, "worksheet", worksheet, "range", area); err != nil {
		return Descriptor{}, err
	}

	return Descriptor{
		Path:   rangePath(fileID, worksheet, area),
		Method: http.MethodGet,
	}, nil
}

// InsertEmptyCells builds the POST descriptor that inserts empty cells in
// place of a range, shifting the existing cells "Down" or "Right". A blank
// shift defaults to "Down".
func InsertEmptyCells(fileID, worksheet, area, shift string) (Descriptor, error) {
	if err := required("file id", fileID, "worksheet", worksheet, "range", area); err != nil {
		return Descriptor{}, err
	}

	shift, err := pick(shift, "Down", "Right")
	if err != nil {
		return Descriptor{}, fmt.Errorf("shift: %w", err)
	}

	return Descriptor{
		Path:   rangePath(fileID, worksheet, area) + "/insert",
		Method: http.MethodPost,
		Body:   map[string]any{"shift": shift},
	}, nil
}

// ClearRange builds the POST descriptor that clears a range's values,
// formats or both ("Contents", "Formats" or "All"). A blank applyTo defaults
// to "All".
func ClearRange(fileID, worksheet, area, applyTo string) (Descriptor, error) {
	if err := required("file id", fileID, "worksheet", worksheet, "range", area); err != nil {
		return Descriptor{}, err
	}

	applyTo, err := pick(applyTo, "All", "Formats", "Contents")
	if err != nil {
		return Descriptor{}, fmt.Errorf("applyTo: %w", err)
	}

	return Descriptor{
		Path:   rangePath(fileID, worksheet, area) + "/clear",
		Method: http.MethodPost,
		Body:   map[string]any{"applyTo": applyTo},
	}, nil
}

// DeleteRange builds the POST descriptor that deletes the cells of a range,
// shifting the remaining cells "Up" or "Left". A blank shift defaults to
// "Up".
func DeleteRange(fileID, worksheet, area, shift string) (Descriptor, error) {
	if err := required("file id", fileID, "worksheet", worksheet, "range", area); err != nil {
		return Descriptor{}, err
	}

	shift, err := pick(shift, "Up", "Left")
	if err != nil {
		return Descriptor{}, fmt.Errorf("shift: %w", err)
	}

	return Descriptor{
		Path:   rangePath(fileID, worksheet, area) + "/delete",
		Method: http.MethodPost,
		Body:   map[string]any{"shift": shift},
	}, nil
}

// GetRangeFormat builds the GET descriptor that retrieves the format of a
// worksheet range.
func GetRangeFormat(fileID, worksheet, area string) (Descriptor, error) {
	if err := required("file id", fileID, "worksheet", worksheet, "range", area); err != nil {
		return Descriptor{}, err
	}

	return Descriptor{
		Path:   rangePath(fileID, worksheet, area) + "/format",
		Method: http.MethodGet,
	}, nil
}

func rangePath(fileID, worksheet, area string) string {
	return fmt.Sprintf("/me/drive/items/%s/workbook/worksheets/%s/range(address='%s')", fileID, worksheet, area)
}

// required checks name/value pairs for blank values.
func required(pairs ...string) error {
	for i := 0; i < len(pairs)-1; i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return fmt.Errorf("%w: %s", ErrInvalidArgument, pairs[i])
		}
	}

	return nil
}

// pick validates a mode string against its closed set of values, defaulting
// to the first value when blank.
func pick(v string, values ...string) (string, error) {
	if strings.TrimSpace(v) == "" {
		return values[0], nil
	}

	for _, candidate := range values {
		if v == candidate {
			return v, nil
		}
	}

	return "", fmt.Errorf("%w: '%s' is not one of %s", ErrInvalidArgument, v, strings.Join(values, "/"))
}

func shapeOf(data [][]any) (int, int, error) {
	if len(data) == 0 {
		return 0, 0, fmt.Errorf("%w: empty table", ErrInvalidArgument)
	}

	cols := len(data[0])
	for i, row := range data {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrShapeMismatch, i+1, len(row), cols)
		}
	}

	return len(data), cols, nil
}
