// File path: internal/jafr/traditional.go
package jafr

// Traditional aggregates the three per-field scorings with the derived
// total, digital root and wafq grid size. TotalValue is always the exact sum
// of the three component totals.
type Traditional struct {
	Name         Result `json:"nameAnalysis"`
	Mother       Result `json:"motherAnalysis"`
	Question     Result `json:"questionAnalysis"`
	TotalValue   int    `json:"totalValue"`
	ReducedValue int    `json:"reducedValue"`
	WafqSize     int    `json:"wafqSize"`
}

// ComputeTraditional scores the three inputs against the standard table and
// derives the aggregate values. It never fails.
func ComputeTraditional(name, mother, question string) Traditional {
	result := Traditional{
		Name:     Score(name, StandardTable),
		Mother:   Score(mother, StandardTable),
		Question: Score(question, StandardTable),
	}
	result.TotalValue = result.Name.Total + result.Mother.Total + result.Question.Total
	result.ReducedValue = DigitalRoot(result.TotalValue)
	result.WafqSize = WafqSize(result.TotalValue)
	return result
}
