// Package config loads batch query files.
//
// A file names one input dataset and any number of queries against it:
//
//	input: survey_results_public-2022.csv
//	keep: [LanguageHaveWorkedWith, DevType, ConvertedCompYearly]
//	queries:
//	  - name: languages
//	    kind: distribution
//	    column: LanguageHaveWorkedWith
//	    top: 10
//	    percent: true
//	    chart:
//	      path: languages.png
//
// YAML (.yaml, .yml) and TOML (.toml) files are accepted. Unknown keys are
// rejected.
package config
