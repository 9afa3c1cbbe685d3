package survey

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// respondent returns a row with every required column set, overridden by fields
func respondent(fields map[string]interface{}) map[string]interface{} {
	row := map[string]interface{}{
		ColumnDevType:              "Developer, back-end",
		ColumnLanguageHave:         "Go",
		ColumnLanguageWant:         "Go",
		ColumnYearsCodePro:         "5",
		ColumnDatabaseHave:         "PostgreSQL",
		ColumnDatabaseWant:         "PostgreSQL",
		ColumnPlatformHave:         "AWS",
		ColumnPlatformWant:         "AWS",
		ColumnWebframeHave:         "Gin",
		ColumnWebframeWant:         "Gin",
		ColumnToolsTechHave:        "Docker",
		ColumnToolsTechWant:        "Docker",
		ColumnVersionControlSystem: "Git",
		ColumnConvertedCompYearly:  float64(50000),
	}
	for k, v := range fields {
		row[k] = v
	}
	return row
}

// exampleRows is the three-respondent table used across tests
func exampleRows() []map[string]interface{} {
	return []map[string]interface{}{
		respondent(map[string]interface{}{
			ColumnLanguageHave:        "Python;SQL",
			ColumnDevType:             "Data scientist",
			ColumnConvertedCompYearly: float64(100),
		}),
		respondent(map[string]interface{}{
			ColumnLanguageHave:        "Python;JavaScript",
			ColumnDevType:             "Developer, back-end",
			ColumnConvertedCompYearly: float64(200),
		}),
		respondent(map[string]interface{}{
			ColumnLanguageHave:        "SQL",
			ColumnDevType:             "Data scientist",
			ColumnConvertedCompYearly: float64(50),
		}),
	}
}

func mustSurvey(t *testing.T, rows []map[string]interface{}, keep []string) *Survey {
	t.Helper()
	s, err := New(rows, keep)
	require.NoError(t, err)
	return s
}
