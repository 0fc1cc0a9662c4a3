// File path: internal/analysis/service_test.go
package analysis

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/jafrlab/jafr/internal/llm"
	"github.com/jafrlab/jafr/internal/narrative"
	"github.com/jafrlab/jafr/internal/sqlite"
)

type mockProvider struct {
	response  string
	err       error
	chatCalls int
}

func (m *mockProvider) Chat(ctx context.Context, req llm.ChatRequest) (string, error) {
	m.chatCalls++
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockProvider) Name() string { return "mock" }

type recordingArchive struct {
	saved []sqlite.Analysis
	err   error
}

func (a *recordingArchive) SaveAnalysis(ctx context.Context, analysis sqlite.Analysis) (int64, error) {
	if a.err != nil {
		return 0, a.err
	}
	a.saved = append(a.saved, analysis)
	return int64(len(a.saved)), nil
}

func newTestService(provider llm.Provider, archive Archive) *Service {
	return NewService(narrative.NewGeneratorWithProvider(llm.Config{}, provider), archive)
}

func validRequest() Request {
	return Request{
		Name:     "محمد",
		Mother:   "فاطمة",
		Question: "هل أجد عملاً جديداً قريباً؟",
	}
}

func TestAnalyzeValidation(t *testing.T) {
	service := newTestService(&mockProvider{err: errors.New("unused")}, nil)
	cases := []struct {
		name     string
		req      Request
		expected int
	}{
		{"all missing", Request{}, 3},
		{"name missing", Request{Mother: "فاطمة", Question: "هل أجد عملاً جديداً قريباً؟"}, 1},
		{"whitespace name", Request{Name: "   ", Mother: "فاطمة", Question: "هل أجد عملاً جديداً قريباً؟"}, 1},
		{"short question", Request{Name: "محمد", Mother: "فاطمة", Question: "قصير"}, 1},
	}
	for _, tc := range cases {
		_, err := service.Analyze(context.Background(), tc.req)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
		if len(verr.Errors) != tc.expected {
			t.Fatalf("%s: expected %d messages, got %d (%v)", tc.name, tc.expected, len(verr.Errors), verr.Errors)
		}
	}
}

func TestAnalyzeQuestionLengthCountsRunes(t *testing.T) {
	service := newTestService(&mockProvider{err: errors.New("offline")}, nil)
	// Ten Arabic letters occupy more than ten bytes but must pass.
	req := Request{Name: "محمد", Mother: "فاطمة", Question: "هل سأنجح غداً"}
	if _, err := service.Analyze(context.Background(), req); err != nil {
		t.Fatalf("rune-length question rejected: %v", err)
	}
}

func TestAnalyzeAbsorbsProviderFailure(t *testing.T) {
	provider := &mockProvider{err: errors.New("http 500")}
	service := newTestService(provider, nil)
	resp, err := service.Analyze(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("provider failure must not surface: %v", err)
	}
	if strings.TrimSpace(resp.AIAnalysis.SpiritualInterpretation) == "" {
		t.Fatalf("fallback narrative missing")
	}
	if !strings.Contains(resp.CombinedInterpretation, "الخلاصة المتكاملة") {
		t.Fatalf("expected canned combined interpretation")
	}
}

func TestAnalyzeTotalsInvariant(t *testing.T) {
	service := newTestService(&mockProvider{err: errors.New("offline")}, nil)
	resp, err := service.Analyze(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	trad := resp.Traditional
	if trad.TotalValue != trad.Name.Total+trad.Mother.Total+trad.Question.Total {
		t.Fatalf("total %d does not equal component sum", trad.TotalValue)
	}
	if trad.WafqSize < 3 || trad.WafqSize > 9 {
		t.Fatalf("wafq size %d out of range", trad.WafqSize)
	}
}

func TestAnalyzeDeepAnalysisDisabled(t *testing.T) {
	provider := &mockProvider{err: errors.New("must not be called for narrative")}
	service := newTestService(provider, nil)
	disabled := false
	req := validRequest()
	req.Options = &Options{DeepAnalysis: &disabled}
	resp, err := service.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !strings.Contains(resp.AIAnalysis.SpiritualInterpretation, "تم تعطيل التحليل العميق") {
		t.Fatalf("expected disabled-state narrative, got %q", resp.AIAnalysis.SpiritualInterpretation)
	}
	// Only the combined step may reach the provider.
	if provider.chatCalls > 1 {
		t.Fatalf("expected at most one provider call, got %d", provider.chatCalls)
	}
}

func TestAnalyzePersistsRecord(t *testing.T) {
	archive := &recordingArchive{}
	service := newTestService(&mockProvider{err: errors.New("offline")}, archive)
	resp, err := service.Analyze(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if len(archive.saved) != 1 {
		t.Fatalf("expected one archived record, got %d", len(archive.saved))
	}
	record := archive.saved[0]
	if !reflect.DeepEqual(record.Traditional, resp.Traditional) {
		t.Fatalf("archived traditional results differ from response")
	}
	if !record.AIEnabled {
		t.Fatalf("expected aiEnabled true by default")
	}
}

func TestAnalyzeSwallowsArchiveFailure(t *testing.T) {
	archive := &recordingArchive{err: errors.New("disk full")}
	service := newTestService(&mockProvider{err: errors.New("offline")}, archive)
	resp, err := service.Analyze(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("archive failure must not surface: %v", err)
	}
	if resp == nil || resp.Traditional.TotalValue == 0 {
		t.Fatalf("expected a complete response despite archive failure")
	}
}

func TestAnalyzeForwardsCallerKey(t *testing.T) {
	base := &mockProvider{err: errors.New("must not be called with a caller key")}
	keyed := &mockProvider{response: `{"spiritualInterpretation": "مخصص"}`}
	var derived []llm.Config
	gen := narrative.NewGeneratorWithFactory(llm.Config{APIKey: "server-key"}, base, func(c llm.Config) llm.Provider {
		derived = append(derived, c)
		return keyed
	})
	service := NewService(gen, nil)
	req := validRequest()
	req.APIKey = "caller-key"
	resp, err := service.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if resp.AIAnalysis.SpiritualInterpretation != "مخصص" {
		t.Fatalf("caller key must reach the narrative provider, got %+v", resp.AIAnalysis)
	}
	// Both the narrative and the combined call carry the caller key.
	if base.chatCalls != 0 || keyed.chatCalls != 2 {
		t.Fatalf("expected two keyed calls and none on the default provider, base=%d keyed=%d", base.chatCalls, keyed.chatCalls)
	}
	for _, c := range derived {
		if c.APIKey != "caller-key" {
			t.Fatalf("derived config lost the caller key: %+v", c)
		}
	}
}
