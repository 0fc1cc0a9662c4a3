// File path: internal/jafr/reduce_test.go
package jafr

import "testing"

func TestDigitalRoot(t *testing.T) {
	cases := map[int]int{
		0:    0,
		5:    5,
		9:    9,
		10:   1,
		92:   2,
		99:   9,
		100:  1,
		1234: 1,
	}
	for input, expected := range cases {
		if got := DigitalRoot(input); got != expected {
			t.Fatalf("DigitalRoot(%d): expected %d, got %d", input, expected, got)
		}
	}
}

func TestDigitalRootIdempotentAndBounded(t *testing.T) {
	for n := 1; n <= 5000; n++ {
		root := DigitalRoot(n)
		if root < 1 || root > 9 {
			t.Fatalf("DigitalRoot(%d) = %d out of [1,9]", n, root)
		}
		if again := DigitalRoot(root); again != root {
			t.Fatalf("DigitalRoot not idempotent at %d: %d vs %d", n, root, again)
		}
	}
}

func TestWafqSizeBoundsAndMonotonicity(t *testing.T) {
	previous := 0
	for total := 0; total <= 5000; total++ {
		size := WafqSize(total)
		if size < 3 || size > 9 {
			t.Fatalf("WafqSize(%d) = %d out of [3,9]", total, size)
		}
		if size < previous {
			t.Fatalf("WafqSize not monotone at %d: %d < %d", total, size, previous)
		}
		previous = size
	}
}

func TestWafqSizeKnownValues(t *testing.T) {
	cases := map[int]int{
		0:    3,
		9:    3,
		10:   4,
		90:   6,
		360:  9,
		5000: 9,
	}
	for total, expected := range cases {
		if got := WafqSize(total); got != expected {
			t.Fatalf("WafqSize(%d): expected %d, got %d", total, expected, got)
		}
	}
}

func TestMeaning(t *testing.T) {
	if got := Meaning(92); got != "توازن وشراكة" {
		t.Fatalf("unexpected meaning for 92: %q", got)
	}
	if got := Meaning(0); got != genericMeaning {
		t.Fatalf("expected generic meaning for 0, got %q", got)
	}
}

func TestLetterMeaning(t *testing.T) {
	if got := LetterMeaning(40); got == genericMeaning || got == "" {
		t.Fatalf("expected a specific label for 40, got %q", got)
	}
	if got := LetterMeaning(37); got != genericMeaning {
		t.Fatalf("expected generic label for 37, got %q", got)
	}
}

func TestComputeTraditionalInvariants(t *testing.T) {
	trad := ComputeTraditional("محمد", "فاطمة", "هل أتزوج هذا العام؟")
	sum := trad.Name.Total + trad.Mother.Total + trad.Question.Total
	if trad.TotalValue != sum {
		t.Fatalf("total %d does not equal component sum %d", trad.TotalValue, sum)
	}
	if trad.ReducedValue != DigitalRoot(trad.TotalValue) {
		t.Fatalf("reduced %d does not match digital root %d", trad.ReducedValue, DigitalRoot(trad.TotalValue))
	}
	if trad.WafqSize != WafqSize(trad.TotalValue) {
		t.Fatalf("wafq %d does not match sizing %d", trad.WafqSize, WafqSize(trad.TotalValue))
	}
	if trad.WafqSize < 3 || trad.WafqSize > 9 {
		t.Fatalf("wafq size %d out of range", trad.WafqSize)
	}
}

func TestComputeTraditionalAllForeignInput(t *testing.T) {
	trad := ComputeTraditional("John", "Jane", "what does tomorrow hold?")
	if trad.TotalValue != 0 {
		t.Fatalf("expected zero total, got %d", trad.TotalValue)
	}
	if trad.ReducedValue != 0 {
		t.Fatalf("expected zero reduced value, got %d", trad.ReducedValue)
	}
	if trad.WafqSize != 3 {
		t.Fatalf("expected minimum wafq size 3, got %d", trad.WafqSize)
	}
}
