package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/require"
)

const surveyCSV = `ResponseId,DevType,LanguageHaveWorkedWith,YearsCodePro,ConvertedCompYearly
1,Data scientist,Python;SQL,5,100
2,"Developer, back-end",Python;JavaScript,Less than 1 year,200
3,Data scientist,SQL,NA,50
4,NA,Go,12,
`

// SurveyRow is a parquet fixture row with nullable survey columns
type SurveyRow struct {
	ResponseID          int64    `parquet:"ResponseId"`
	DevType             *string  `parquet:"DevType,optional"`
	LanguageHaveWorked  string   `parquet:"LanguageHaveWorkedWith"`
	ConvertedCompYearly *float64 `parquet:"ConvertedCompYearly,optional"`
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeGzipFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)

	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
	return path
}

func writeZstdFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)

	enc, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = enc.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())
	return path
}

func writeParquetFile(t *testing.T, dir, name string, rows []SurveyRow) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)

	writer := parquet.NewGenericWriter[SurveyRow](f)
	_, err = writer.Write(rows)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	require.NoError(t, f.Close())
	return path
}

func sampleParquetRows() []SurveyRow {
	return []SurveyRow{
		{ResponseID: 1, DevType: strPtr("Data scientist"), LanguageHaveWorked: "Python;SQL", ConvertedCompYearly: floatPtr(100)},
		{ResponseID: 2, DevType: strPtr("Developer, back-end"), LanguageHaveWorked: "Python;JavaScript", ConvertedCompYearly: floatPtr(200)},
		{ResponseID: 3, DevType: nil, LanguageHaveWorked: "SQL", ConvertedCompYearly: nil},
	}
}
