// Command generate writes a small sample survey in every supported format:
// sample.parquet, sample.csv and sample.csv.gz.
package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"

	"github.com/klauspost/compress/gzip"
	"github.com/parquet-go/parquet-go"
)

// Respondent is one survey answer sheet. ConvertedCompYearly is optional so the
// sample carries a respondent that cleaning drops.
type Respondent struct {
	DevType                 string   `parquet:"DevType"`
	LanguageHaveWorkedWith  string   `parquet:"LanguageHaveWorkedWith"`
	LanguageWantToWorkWith  string   `parquet:"LanguageWantToWorkWith"`
	YearsCodePro            string   `parquet:"YearsCodePro"`
	DatabaseHaveWorkedWith  string   `parquet:"DatabaseHaveWorkedWith"`
	DatabaseWantToWorkWith  string   `parquet:"DatabaseWantToWorkWith"`
	PlatformHaveWorkedWith  string   `parquet:"PlatformHaveWorkedWith"`
	PlatformWantToWorkWith  string   `parquet:"PlatformWantToWorkWith"`
	WebframeHaveWorkedWith  string   `parquet:"WebframeHaveWorkedWith"`
	WebframeWantToWorkWith  string   `parquet:"WebframeWantToWorkWith"`
	ToolsTechHaveWorkedWith string   `parquet:"ToolsTechHaveWorkedWith"`
	ToolsTechWantToWorkWith string   `parquet:"ToolsTechWantToWorkWith"`
	VersionControlSystem    string   `parquet:"VersionControlSystem"`
	ConvertedCompYearly     *float64 `parquet:"ConvertedCompYearly,optional"`
}

func salary(v float64) *float64 {
	return &v
}

var respondents = []Respondent{
	{
		DevType: "Developer, back-end", LanguageHaveWorkedWith: "Go;Python;SQL", LanguageWantToWorkWith: "Go;Rust",
		YearsCodePro: "7", DatabaseHaveWorkedWith: "PostgreSQL;Redis", DatabaseWantToWorkWith: "PostgreSQL",
		PlatformHaveWorkedWith: "AWS", PlatformWantToWorkWith: "AWS;Google Cloud", WebframeHaveWorkedWith: "Flask",
		WebframeWantToWorkWith: "FastAPI", ToolsTechHaveWorkedWith: "Docker;Kubernetes", ToolsTechWantToWorkWith: "Kubernetes",
		VersionControlSystem: "Git", ConvertedCompYearly: salary(120000),
	},
	{
		DevType: "Developer, front-end;Developer, full-stack", LanguageHaveWorkedWith: "JavaScript;TypeScript;HTML/CSS", LanguageWantToWorkWith: "TypeScript",
		YearsCodePro: "3", DatabaseHaveWorkedWith: "MongoDB", DatabaseWantToWorkWith: "PostgreSQL",
		PlatformHaveWorkedWith: "Vercel", PlatformWantToWorkWith: "Vercel", WebframeHaveWorkedWith: "React;Next.js",
		WebframeWantToWorkWith: "Svelte", ToolsTechHaveWorkedWith: "npm;Yarn", ToolsTechWantToWorkWith: "npm",
		VersionControlSystem: "Git", ConvertedCompYearly: salary(65000),
	},
	{
		DevType: "Data scientist or machine learning specialist", LanguageHaveWorkedWith: "Python;R;SQL", LanguageWantToWorkWith: "Python;Julia",
		YearsCodePro: "Less than 1 year", DatabaseHaveWorkedWith: "SQLite", DatabaseWantToWorkWith: "DuckDB",
		PlatformHaveWorkedWith: "Google Cloud", PlatformWantToWorkWith: "Google Cloud", WebframeHaveWorkedWith: "Django",
		WebframeWantToWorkWith: "FastAPI", ToolsTechHaveWorkedWith: "Docker", ToolsTechWantToWorkWith: "Docker",
		VersionControlSystem: "Git;SVN", ConvertedCompYearly: salary(90000),
	},
	{
		DevType: "Developer, back-end;DevOps specialist", LanguageHaveWorkedWith: "Go;Bash/Shell", LanguageWantToWorkWith: "Go;Zig",
		YearsCodePro: "12", DatabaseHaveWorkedWith: "PostgreSQL;Cassandra", DatabaseWantToWorkWith: "PostgreSQL",
		PlatformHaveWorkedWith: "AWS;Microsoft Azure", PlatformWantToWorkWith: "AWS", WebframeHaveWorkedWith: "Express",
		WebframeWantToWorkWith: "Express", ToolsTechHaveWorkedWith: "Terraform;Kubernetes", ToolsTechWantToWorkWith: "Terraform",
		VersionControlSystem: "Git",
	},
}

func main() {
	if err := parquet.WriteFile("sample.parquet", respondents); err != nil {
		log.Fatal(err)
	}

	records := [][]string{{
		"DevType", "LanguageHaveWorkedWith", "LanguageWantToWorkWith", "YearsCodePro",
		"DatabaseHaveWorkedWith", "DatabaseWantToWorkWith", "PlatformHaveWorkedWith", "PlatformWantToWorkWith",
		"WebframeHaveWorkedWith", "WebframeWantToWorkWith", "ToolsTechHaveWorkedWith", "ToolsTechWantToWorkWith",
		"VersionControlSystem", "ConvertedCompYearly",
	}}
	for _, r := range respondents {
		comp := "NA"
		if r.ConvertedCompYearly != nil {
			comp = strconv.FormatFloat(*r.ConvertedCompYearly, 'f', -1, 64)
		}
		records = append(records, []string{
			r.DevType, r.LanguageHaveWorkedWith, r.LanguageWantToWorkWith, r.YearsCodePro,
			r.DatabaseHaveWorkedWith, r.DatabaseWantToWorkWith, r.PlatformHaveWorkedWith, r.PlatformWantToWorkWith,
			r.WebframeHaveWorkedWith, r.WebframeWantToWorkWith, r.ToolsTechHaveWorkedWith, r.ToolsTechWantToWorkWith,
			r.VersionControlSystem, comp,
		})
	}

	plain, err := os.Create("sample.csv")
	if err != nil {
		log.Fatal(err)
	}
	defer plain.Close()
	if err := csv.NewWriter(plain).WriteAll(records); err != nil {
		log.Fatal(err)
	}

	compressed, err := os.Create("sample.csv.gz")
	if err != nil {
		log.Fatal(err)
	}
	defer compressed.Close()
	gz := gzip.NewWriter(compressed)
	if err := csv.NewWriter(gz).WriteAll(records); err != nil {
		log.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		log.Fatal(err)
	}

	log.Printf("Generated sample.parquet, sample.csv and sample.csv.gz with %d respondents", len(respondents))
}
