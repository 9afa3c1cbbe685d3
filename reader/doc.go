// Package reader loads survey datasets into memory as rows.
//
// Rows are returned as []map[string]interface{} keyed by column name, the
// shape consumed by the survey package. Both CSV exports and Parquet files
// are supported, chosen by file extension:
//
//   - .csv: plain comma-separated values with a header row
//   - .csv.gz, .csv.gzip: gzip-compressed CSV
//   - .csv.zst, .csv.zstd: zstd-compressed CSV
//   - .parquet: Apache Parquet
//
// # Basic Usage
//
// Reading a single file:
//
//	rows, err := reader.ReadFile("data/survey_results_public-2022.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Opening a file explicitly to control its lifetime:
//
//	r, err := reader.Open("survey.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	rows, err := r.ReadAll()
//
// # Missing Values
//
// CSV cells that are empty or hold one of MissingValues ("NA", "N/A", ...)
// are returned as nil. Parquet nulls are nil as well.
//
// # Type Inference
//
// A CSV column becomes float64 when every non-missing cell parses as a
// number; any other column stays string. ConvertedCompYearly is therefore
// numeric while YearsCodePro, which holds values like "Less than 1 year",
// stays textual.
//
// # Multi-file Operations
//
// Several yearly exports can be read at once with a glob pattern:
//
//	rows, err := reader.ReadMultipleFiles("data/survey_results_public-*.csv")
//
// Each row then carries a "_file" column with its source path.
//
// # Schema Introspection
//
//	infos, err := reader.ExtractSchemaInfo("survey.csv.gz")
//	for _, info := range infos {
//	    fmt.Printf("%s: %s\n", info.Name, info.Type)
//	}
//
// Compressed CSV is decoded with github.com/klauspost/compress and Parquet
// with github.com/parquet-go/parquet-go.
package reader
