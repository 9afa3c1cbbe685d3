package reader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// MissingValues are CSV cell contents read as nil.
var MissingValues = []string{"", "NA", "N/A", "NaN", "null"}

// Compression identifies how a CSV file is encoded on disk.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionZstd
)

// CSVReader reads survey rows from a possibly compressed CSV file.
type CSVReader struct {
	file    *os.File
	decoder io.ReadCloser
	src     io.Reader
}

// NewCSVReader opens path, decompressing it as given.
func NewCSVReader(path string, compression Compression) (*CSVReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	r := &CSVReader{file: file, src: file}
	switch compression {
	case CompressionGzip:
		gz, err := gzip.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		r.decoder = gz
		r.src = gz
	case CompressionZstd:
		dec, err := zstd.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("failed to open zstd stream: %w", err)
		}
		rc := dec.IOReadCloser()
		r.decoder = rc
		r.src = rc
	}
	return r, nil
}

// ReadAll reads every row into memory
func (r *CSVReader) ReadAll() ([]map[string]interface{}, error) {
	return ReadCSV(r.src)
}

// Close releases the decompressor and the file. It is safe to call more than once.
func (r *CSVReader) Close() error {
	var err error
	if r.decoder != nil {
		err = r.decoder.Close()
		r.decoder = nil
	}
	if r.file != nil {
		if cerr := r.file.Close(); err == nil {
			err = cerr
		}
		r.file = nil
	}
	return err
}

// ReadCSV parses CSV with a header row from src.
//
// Missing cells become nil and columns whose present cells are all numeric
// become float64.
func ReadCSV(src io.Reader) ([]map[string]interface{}, error) {
	cr := csv.NewReader(src)
	cr.ReuseRecord = false

	header, err := cr.Read()
	if err == io.EOF {
		return []map[string]interface{}{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV records: %w", err)
	}

	numeric := inferNumeric(header, records)

	rows := make([]map[string]interface{}, len(records))
	for i, record := range records {
		row := make(map[string]interface{}, len(header))
		for j, col := range header {
			cell := record[j]
			switch {
			case isMissingCell(cell):
				row[col] = nil
			case numeric[j]:
				f, _ := strconv.ParseFloat(cell, 64)
				row[col] = f
			default:
				row[col] = cell
			}
		}
		rows[i] = row
	}

	return rows, nil
}

// inferNumeric reports, per column, whether every present cell is a number.
// Columns with no present cells stay textual.
func inferNumeric(header []string, records [][]string) []bool {
	numeric := make([]bool, len(header))
	for j := range header {
		seen := false
		ok := true
		for _, record := range records {
			cell := record[j]
			if isMissingCell(cell) {
				continue
			}
			seen = true
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				ok = false
				break
			}
		}
		numeric[j] = seen && ok
	}
	return numeric
}

func isMissingCell(cell string) bool {
	for _, m := range MissingValues {
		if cell == m {
			return true
		}
	}
	return false
}
