package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lindbaek/peakscape/peaks"
)

// mode maps the --valleys flag onto the extraction mode.
func mode() peaks.Mode {
	if flagValleys {
		return peaks.Valley
	}

	return peaks.Peak
}

// readColumn extracts one numeric CSV column from the file named by
// args, or from stdin when no file (or "-") is given.
func readColumn(args []string) ([]float64, error) {
	var in io.Reader = os.Stdin
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	return parseColumn(in, flagDelimiter, flagField)
}

// parseColumn reads every record and converts column field (1-based)
// to a float64.
func parseColumn(in io.Reader, delimiter string, field int) ([]float64, error) {
	if field < 1 {
		return nil, fmt.Errorf("field must be positive, got %d", field)
	}
	reader := csv.NewReader(in)
	if delimiter != "" {
		reader.Comma = rune(delimiter[0])
	}
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	data := make([]float64, 0, len(records))
	for i, row := range records {
		if len(row) < field {
			return nil, fmt.Errorf("row %d has %d fields, need %d", i+1, len(row), field)
		}
		v, err := strconv.ParseFloat(row[field-1], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		data = append(data, v)
	}

	return data, nil
}
