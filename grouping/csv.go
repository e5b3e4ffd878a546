package grouping

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadPartitionCSV reads a hard partition from CSV.
//
// Expected layout: a header row (its content is ignored) followed by
// records of the form
//
//	item,group
//
// Extra columns are rejected so typos surface instead of being dropped.
//
// Errors: ErrBadCSV on structural problems (wrapped with row context),
// plus any NewPartition validation error.
func ReadPartitionCSV(r io.Reader) (*Partition, error) {
	rows, err := readAll(r)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("need a header and at least one record: %w", ErrBadCSV)
	}

	assignments := make([]Assignment, 0, len(rows)-1)
	for n, rec := range rows[1:] {
		if len(rec) != 2 {
			return nil, fmt.Errorf("row %d: want 2 columns, got %d: %w", n+2, len(rec), ErrBadCSV)
		}
		assignments = append(assignments, Assignment{
			Item:  strings.TrimSpace(rec[0]),
			Group: strings.TrimSpace(rec[1]),
		})
	}

	return NewPartition(assignments)
}

// ReadLoadingsCSV reads a wide-format loading matrix from CSV.
//
// Expected layout: a header row naming the factors,
//
//	item,f1,f2,...
//
// (the first header cell labels the item column and is ignored), followed
// by one record per item with a numeric loading for every factor.
//
// Errors: ErrBadCSV on structural problems, ErrBadLoadingValue on a cell
// that does not parse as a float (both wrapped with row context), plus any
// NewLoadings validation error.
func ReadLoadingsCSV(r io.Reader) (*Loadings, error) {
	rows, err := readAll(r)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("need a header and at least one record: %w", ErrBadCSV)
	}

	header := rows[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("header needs an item column and at least one factor: %w", ErrBadCSV)
	}
	factors := make([]string, len(header)-1)
	for j, f := range header[1:] {
		factors[j] = strings.TrimSpace(f)
	}

	items := make([]string, 0, len(rows)-1)
	values := make([]float64, 0, (len(rows)-1)*len(factors))
	for n, rec := range rows[1:] {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("row %d: want %d columns, got %d: %w", n+2, len(header), len(rec), ErrBadCSV)
		}
		items = append(items, strings.TrimSpace(rec[0]))
		for j, cell := range rec[1:] {
			v, perr := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if perr != nil {
				return nil, fmt.Errorf("row %d, factor %q, cell %q: %w", n+2, factors[j], cell, ErrBadLoadingValue)
			}
			values = append(values, v)
		}
	}

	return NewLoadings(items, factors, values)
}

// readAll slurps all CSV records, normalizing reader errors onto ErrBadCSV.
func readAll(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // per-row column checks happen above, with row context
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrBadCSV)
	}

	return rows, nil
}
