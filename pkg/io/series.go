package io

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/datanate/pkg/metric"
)

// dateLayouts are tried in order when parsing the timestamp column.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"2006-01",
}

// timestampColumns and valueColumns are accepted header names (case-insensitive).
var (
	timestampColumns = []string{"timestamp", "date"}
	valueColumns     = []string{"value"}
)

// ParseDate parses a series date in any of the supported layouts.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q (want YYYY-MM-DD)", s)
}

// ReadSeries decodes a CSV time series from r. The first row must be a
// header naming the timestamp and value columns; other columns are ignored.
// The returned points are sorted by date with ties in file order.
//
// Errors name the line that failed. ReadSeries does not close r.
func ReadSeries(r io.Reader) ([]metric.DataPoint, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	tsCol, valCol := columnIndex(header, timestampColumns), columnIndex(header, valueColumns)
	if tsCol < 0 || valCol < 0 {
		return nil, fmt.Errorf("header %v must name a timestamp and a value column", header)
	}

	var points []metric.DataPoint
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		if tsCol >= len(rec) || valCol >= len(rec) {
			return nil, fmt.Errorf("line %d: expected at least %d fields, got %d", line, max(tsCol, valCol)+1, len(rec))
		}

		ts, err := ParseDate(rec[tsCol])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[valCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid value %q", line, rec[valCol])
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("line %d: non-finite value %q", line, rec[valCol])
		}
		points = append(points, metric.DataPoint{Timestamp: ts, Value: v})
	}

	metric.SortSeries(points)
	return points, nil
}

// LoadSeries reads a CSV time series from path.
func LoadSeries(path string) ([]metric.DataPoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSeries(f)
}

func columnIndex(header []string, names []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		for _, n := range names {
			if h == n {
				return i
			}
		}
	}
	return -1
}
