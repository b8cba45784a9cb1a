package timeseries

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	XColumn   string // Column name for the time variable (default: "x")
	YColumn   string // Column name for the observed signal (default: "y")
	HasHeader bool   // Whether CSV has header row (default: true)
	Delimiter rune   // Field delimiter (default: ',')
	SkipRows  int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		XColumn:   "x",
		YColumn:   "y",
		HasHeader: true,
		Delimiter: ',',
	}
}

// LoadCSV loads an observation series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads an observation series from an io.Reader.
// Rows where either column is empty, NA, or non-numeric are skipped.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	xIdx, yIdx := 0, 1
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}

		xIdx, yIdx = -1, -1
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch {
			case h == opts.XColumn || (opts.XColumn == "" && (h == "x" || h == "time" || h == "t")):
				xIdx = i
			case h == opts.YColumn || (opts.YColumn == "" && (h == "y" || h == "signal" || h == "value")):
				yIdx = i
			}
		}

		// Fall back to the first two columns if names were not found.
		if xIdx == -1 {
			xIdx = 0
		}
		if yIdx == -1 {
			yIdx = 1
			if yIdx == xIdx {
				yIdx = 0
			}
		}
	}

	var xs, ys []float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if xIdx >= len(record) || yIdx >= len(record) {
			continue
		}

		xVal, ok := parseField(record[xIdx])
		if !ok {
			continue
		}
		yVal, ok := parseField(record[yIdx])
		if !ok {
			continue
		}
		xs = append(xs, xVal)
		ys = append(ys, yVal)
	}

	if len(ys) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	return &Series{X: xs, Y: ys}, nil
}

func parseField(field string) (float64, bool) {
	s := strings.TrimSpace(strings.Trim(field, "\""))
	if s == "" || s == "NA" || s == "NaN" || s == "null" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
