package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ScalingTable holds one delimited scaling-benchmark source: a monotonic
// independent variable (prefix count, thread count) plus one or more
// dependent columns (rates, memory, hit rates). Column order follows the
// source header.
type ScalingTable struct {
	Source  string
	XColumn string
	X       []float64
	Columns []ScalingColumn
}

// ScalingColumn is one dependent series of a ScalingTable.
type ScalingColumn struct {
	Name   string
	Values []float64
}

// Column returns the named dependent series.
func (t *ScalingTable) Column(name string) (ScalingColumn, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return ScalingColumn{}, false
}

// Len returns the number of data rows.
func (t *ScalingTable) Len() int { return len(t.X) }

// LoadScalingCSV reads a CSV with a header row. The xColumn must exist and
// be strictly increasing; every other column is parsed as a float series.
func LoadScalingCSV(r io.Reader, xColumn, source string) (*ScalingTable, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, &FormatError{Source: source, Reason: err.Error()}
	}
	if len(rows) < 2 {
		return nil, &FormatError{Source: source, Reason: "need a header and at least one data row"}
	}

	header := rows[0]
	xIdx := -1
	for i, name := range header {
		if name == xColumn {
			xIdx = i
			break
		}
	}
	if xIdx < 0 {
		return nil, &FormatError{Source: source, Reason: "missing column " + xColumn}
	}

	t := &ScalingTable{Source: source, XColumn: xColumn}
	for i, name := range header {
		if i != xIdx {
			t.Columns = append(t.Columns, ScalingColumn{Name: name})
		}
	}

	for rowNum, row := range rows[1:] {
		if len(row) != len(header) {
			return nil, &FormatError{
				Source: source,
				Reason: fmt.Sprintf("row %d has %d fields, want %d", rowNum+1, len(row), len(header)),
			}
		}
		ci := 0
		for i, field := range row {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &FormatError{
					Source: source,
					Reason: fmt.Sprintf("row %d: non-numeric %q in column %s", rowNum+1, field, header[i]),
				}
			}
			if i == xIdx {
				if n := len(t.X); n > 0 && v <= t.X[n-1] {
					return nil, &FormatError{
						Source: source,
						Reason: fmt.Sprintf("column %s must be strictly increasing (row %d)", xColumn, rowNum+1),
					}
				}
				t.X = append(t.X, v)
				continue
			}
			t.Columns[ci].Values = append(t.Columns[ci].Values, v)
			ci++
		}
	}
	return t, nil
}

// LoadScalingCSVFile is LoadScalingCSV on a file path.
func LoadScalingCSVFile(path, xColumn string) (*ScalingTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadScalingCSV(f, xColumn, path)
}
