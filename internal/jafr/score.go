// File path: internal/jafr/score.go

// Package jafr implements traditional Arabic letter-numerology: Abjad
// letter-value tables, text scoring, digit reduction and wafq grid sizing.
package jafr

// Detail records one counted character and its table value, in input order.
type Detail struct {
	Char  string `json:"char"`
	Value int    `json:"value"`
}

// Result is the outcome of scoring a single text against a letter table.
type Result struct {
	Total   int      `json:"total"`
	Details []Detail `json:"details"`
}

// Score sums the table values of every recognized character in text.
// Characters without a non-zero table value (foreign letters, punctuation,
// digits, the space) contribute nothing and are omitted from the details.
// Scoring never fails; a text with no recognized characters totals zero.
func Score(text string, table map[rune]int) Result {
	result := Result{Details: []Detail{}}
	for _, r := range text {
		value := table[r]
		if value == 0 {
			continue
		}
		result.Total += value
		result.Details = append(result.Details, Detail{Char: string(r), Value: value})
	}
	return result
}
