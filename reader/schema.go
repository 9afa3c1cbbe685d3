package reader

import (
	"fmt"
	"sort"

	"github.com/parquet-go/parquet-go"
)

// SchemaInfo describes a single column of a dataset file.
type SchemaInfo struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	PhysicalType string `json:"physical_type,omitempty"`
	LogicalType  string `json:"logical_type,omitempty"`
	Required     bool   `json:"required"`
	Optional     bool   `json:"optional"`
	Repeated     bool   `json:"repeated"`
	Missing      int    `json:"missing"`
}

// ExtractSchemaInfo returns the columns of a CSV or parquet file.
//
// Parquet schemas come from the file footer, nested fields use dot notation
// ("address.street"). CSV schemas are inferred from the data: a column is
// FLOAT64 when all present cells are numeric and STRING otherwise, and
// Missing counts its empty cells.
func ExtractSchemaInfo(path string) ([]SchemaInfo, error) {
	format, _ := DetectFormat(path)
	switch format {
	case FormatParquet:
		return extractParquetSchema(path)
	case FormatCSV:
		return extractCSVSchema(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}
}

func extractCSVSchema(path string) ([]SchemaInfo, error) {
	rows, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	missing := make(map[string]int)
	numeric := make(map[string]bool)
	textual := make(map[string]bool)
	for _, row := range rows {
		for col, v := range row {
			switch v.(type) {
			case nil:
				missing[col]++
			case float64:
				numeric[col] = true
			default:
				textual[col] = true
			}
			if _, ok := missing[col]; !ok {
				missing[col] = 0
			}
		}
	}

	names := make([]string, 0, len(missing))
	for col := range missing {
		names = append(names, col)
	}
	sort.Strings(names)

	infos := make([]SchemaInfo, 0, len(names))
	for _, col := range names {
		typ := "STRING"
		if numeric[col] && !textual[col] {
			typ = "FLOAT64"
		}
		infos = append(infos, SchemaInfo{
			Name:     col,
			Type:     typ,
			Required: missing[col] == 0,
			Optional: missing[col] > 0,
			Missing:  missing[col],
		})
	}
	return infos, nil
}

func extractParquetSchema(path string) ([]SchemaInfo, error) {
	r, err := NewParquetReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	var infos []SchemaInfo
	for _, field := range r.Schema().Fields() {
		infos = append(infos, fieldInfo(field, "", false)...)
	}
	return infos, nil
}

// fieldInfo flattens a parquet field into leaf columns. Repetition of a
// parent group propagates to its children.
func fieldInfo(field parquet.Field, prefix string, parentRepeated bool) []SchemaInfo {
	name := field.Name()
	if prefix != "" {
		name = prefix + "." + name
	}
	repeated := parentRepeated || field.Repeated()

	if children := field.Fields(); len(children) > 0 {
		var infos []SchemaInfo
		for _, child := range children {
			infos = append(infos, fieldInfo(child, name, repeated)...)
		}
		return infos
	}

	return []SchemaInfo{{
		Name:         name,
		Type:         friendlyType(field),
		PhysicalType: physicalType(field),
		LogicalType:  logicalType(field),
		Required:     field.Required(),
		Optional:     field.Optional(),
		Repeated:     repeated,
	}}
}

func physicalType(field parquet.Field) string {
	if field.Type() == nil {
		return "GROUP"
	}
	switch field.Type().Kind() {
	case parquet.Boolean:
		return "BOOLEAN"
	case parquet.Int32:
		return "INT32"
	case parquet.Int64:
		return "INT64"
	case parquet.Int96:
		return "INT96"
	case parquet.Float:
		return "FLOAT"
	case parquet.Double:
		return "DOUBLE"
	case parquet.ByteArray:
		return "BYTE_ARRAY"
	case parquet.FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}

func logicalType(field parquet.Field) string {
	if field.Type() == nil || field.Type().LogicalType() == nil {
		return ""
	}
	return field.Type().LogicalType().String()
}

// friendlyType maps the parquet types onto the names used for CSV schemas
func friendlyType(field parquet.Field) string {
	if field.Type() == nil {
		return "GROUP"
	}
	switch logicalType(field) {
	case "STRING", "UTF8", "ENUM", "JSON":
		return "STRING"
	case "DATE":
		return "DATE"
	case "TIMESTAMP":
		return "TIMESTAMP"
	case "DECIMAL":
		return "DECIMAL"
	}
	switch field.Type().Kind() {
	case parquet.Boolean:
		return "BOOLEAN"
	case parquet.Int32:
		return "INT32"
	case parquet.Int64:
		return "INT64"
	case parquet.Float:
		return "FLOAT32"
	case parquet.Double:
		return "FLOAT64"
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return "BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}
