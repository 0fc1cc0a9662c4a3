// File path: internal/jafr/score_test.go
package jafr

import "testing"

func TestScoreMuhammad(t *testing.T) {
	result := Score("محمد", StandardTable)
	if result.Total != 92 {
		t.Fatalf("expected total 92, got %d", result.Total)
	}
	if len(result.Details) != 4 {
		t.Fatalf("expected 4 details, got %d", len(result.Details))
	}
	expected := []Detail{
		{Char: "م", Value: 40},
		{Char: "ح", Value: 8},
		{Char: "م", Value: 40},
		{Char: "د", Value: 4},
	}
	for i, detail := range expected {
		if result.Details[i] != detail {
			t.Fatalf("detail %d: expected %+v, got %+v", i, detail, result.Details[i])
		}
	}
}

func TestScoreSkipsUnrecognizedCharacters(t *testing.T) {
	result := Score("abc 123 محمد!؟", StandardTable)
	if result.Total != 92 {
		t.Fatalf("expected total 92, got %d", result.Total)
	}
	for _, detail := range result.Details {
		if detail.Value == 0 {
			t.Fatalf("zero-valued detail leaked: %+v", detail)
		}
	}
}

func TestScoreEmptyAndForeignText(t *testing.T) {
	for _, text := range []string{"", "hello world", "12345", "   "} {
		result := Score(text, StandardTable)
		if result.Total != 0 {
			t.Fatalf("text %q: expected total 0, got %d", text, result.Total)
		}
		if result.Details == nil {
			t.Fatalf("text %q: details must be non-nil", text)
		}
		if len(result.Details) != 0 {
			t.Fatalf("text %q: expected no details, got %d", text, len(result.Details))
		}
	}
}

func TestScoreLesserTable(t *testing.T) {
	// م=13 ح=8 م=13 د=4 in the saghir ordering.
	result := Score("محمد", LesserTable)
	if result.Total != 38 {
		t.Fatalf("expected lesser total 38, got %d", result.Total)
	}
}

func TestOrthographicVariantsShareValues(t *testing.T) {
	variants := map[rune]rune{'أ': 'ا', 'إ': 'ا', 'آ': 'ا', 'ء': 'ا', 'ة': 'ه', 'ؤ': 'و', 'ى': 'ي', 'ئ': 'ي'}
	for variant, base := range variants {
		if StandardTable[variant] != StandardTable[base] {
			t.Fatalf("standard: %c (%d) should match %c (%d)", variant, StandardTable[variant], base, StandardTable[base])
		}
		if LesserTable[variant] != LesserTable[base] {
			t.Fatalf("lesser: %c (%d) should match %c (%d)", variant, LesserTable[variant], base, LesserTable[base])
		}
	}
}
