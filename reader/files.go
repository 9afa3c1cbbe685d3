package reader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFile is returned for paths whose extension has no reader
var ErrUnsupportedFile = errors.New("unsupported file type")

// maxFiles caps glob expansion to avoid exhausting file handles
const maxFiles = 1000

// TableReader reads a whole dataset into rows.
type TableReader interface {
	ReadAll() ([]map[string]interface{}, error)
	Close() error
}

// Format is the on-disk layout of a dataset file.
type Format int

const (
	FormatUnknown Format = iota
	FormatCSV
	FormatParquet
)

// DetectFormat returns the format and CSV compression implied by path's extension.
func DetectFormat(path string) (Format, Compression) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".parquet"):
		return FormatParquet, CompressionNone
	case strings.HasSuffix(lower, ".csv"):
		return FormatCSV, CompressionNone
	case strings.HasSuffix(lower, ".csv.gz"), strings.HasSuffix(lower, ".csv.gzip"):
		return FormatCSV, CompressionGzip
	case strings.HasSuffix(lower, ".csv.zst"), strings.HasSuffix(lower, ".csv.zstd"):
		return FormatCSV, CompressionZstd
	default:
		return FormatUnknown, CompressionNone
	}
}

// Open returns a reader for path chosen by its extension.
func Open(path string) (TableReader, error) {
	format, compression := DetectFormat(path)
	switch format {
	case FormatParquet:
		return NewParquetReader(path)
	case FormatCSV:
		return NewCSVReader(path, compression)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, filepath.Base(path))
	}
}

// ReadFile reads every row of a single dataset file.
func ReadFile(path string) ([]map[string]interface{}, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}

	rows, readErr := r.ReadAll()
	closeErr := r.Close()
	if readErr != nil {
		return nil, readErr
	}
	if closeErr != nil {
		return nil, fmt.Errorf("failed to close %s: %w", path, closeErr)
	}
	return rows, nil
}

// ReadMultipleFiles reads all rows from the files matching a glob pattern.
//
// A pattern without wildcards is read as a single file and its rows are
// returned unchanged. Otherwise each row is tagged with a "_file" column
// holding its source path. Returns an error if nothing matches, if more than
// 1000 files match, or if any file fails to read.
func ReadMultipleFiles(pattern string) ([]map[string]interface{}, error) {
	if !strings.ContainsAny(pattern, "*?[") {
		return ReadFile(pattern)
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match pattern: %s", pattern)
	}
	if len(matches) > maxFiles {
		return nil, fmt.Errorf("glob pattern matched too many files (%d), maximum is %d", len(matches), maxFiles)
	}

	var allRows []map[string]interface{}
	for _, path := range matches {
		rows, err := ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		for i := range rows {
			rows[i]["_file"] = path
		}
		allRows = append(allRows, rows...)
	}

	return allRows, nil
}
