// File path: internal/analysis/service.go

// Package analysis orchestrates one jafr request end to end: validation,
// traditional scoring, narrative generation and archival.
package analysis

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/jafrlab/jafr/internal/common"
	"github.com/jafrlab/jafr/internal/jafr"
	"github.com/jafrlab/jafr/internal/narrative"
	"github.com/jafrlab/jafr/internal/sqlite"
)

const minQuestionLength = 10

// Options mirror the caller's analysis switches; nil pointers mean the
// defaults (all true). Only DeepAnalysis changes server behavior;
// NumerologyDetails and ContextualInterpretation are accepted for payload
// compatibility and have no server-side effect.
type Options struct {
	DeepAnalysis             *bool `json:"deepAnalysis,omitempty"`
	NumerologyDetails        *bool `json:"numerologyDetails,omitempty"`
	ContextualInterpretation *bool `json:"contextualInterpretation,omitempty"`
}

// DeepAnalysisEnabled reports whether the AI narrative should be requested.
func (o *Options) DeepAnalysisEnabled() bool {
	return o == nil || o.DeepAnalysis == nil || *o.DeepAnalysis
}

type Request struct {
	Name     string   `json:"name"`
	Mother   string   `json:"mother"`
	Question string   `json:"question"`
	Options  *Options `json:"options,omitempty"`
	APIKey   string   `json:"apiKey,omitempty"`
}

type Response struct {
	Traditional            jafr.Traditional   `json:"traditionalResults"`
	AIAnalysis             narrative.Analysis `json:"aiAnalysis"`
	CombinedInterpretation string             `json:"combinedInterpretation"`
}

// ValidationError carries one message per violated request rule. No
// computation runs when validation fails.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "بيانات غير صحيحة"
}

func validateRequest(req *Request) *ValidationError {
	req.Name = strings.TrimSpace(req.Name)
	req.Mother = strings.TrimSpace(req.Mother)
	req.Question = strings.TrimSpace(req.Question)

	var errs []string
	if req.Name == "" {
		errs = append(errs, "الاسم مطلوب")
	}
	if req.Mother == "" {
		errs = append(errs, "اسم الأم مطلوب")
	}
	if utf8.RuneCountInString(req.Question) < minQuestionLength {
		errs = append(errs, "السؤال يجب أن يكون أكثر تفصيلاً")
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Archive is the subset of the persistence gateway the orchestrator needs.
type Archive interface {
	SaveAnalysis(ctx context.Context, analysis sqlite.Analysis) (int64, error)
}

type Service struct {
	generator *narrative.Generator
	archive   Archive
}

func NewService(generator *narrative.Generator, archive Archive) *Service {
	return &Service{generator: generator, archive: archive}
}

// Analyze runs the full pipeline. Validation failure is the only error the
// caller sees; provider failures are absorbed into deterministic fallback
// content and a persistence failure is logged and swallowed so it never
// affects the response.
func (s *Service) Analyze(ctx context.Context, req Request) (*Response, error) {
	logger := common.Logger()
	if verr := validateRequest(&req); verr != nil {
		return nil, verr
	}

	trad := jafr.ComputeTraditional(req.Name, req.Mother, req.Question)
	deep := req.Options.DeepAnalysisEnabled()

	var aiAnalysis narrative.Analysis
	if deep {
		aiAnalysis = s.generator.Generate(ctx, req.Name, req.Mother, req.Question, trad, req.APIKey)
	} else {
		aiAnalysis = narrative.Disabled(trad)
	}

	combined := s.generator.Combined(ctx, trad, aiAnalysis, req.APIKey)

	if s.archive != nil {
		record := sqlite.Analysis{
			Name:        req.Name,
			Mother:      req.Mother,
			Question:    req.Question,
			Traditional: trad,
			AIAnalysis:  &aiAnalysis,
			Combined:    combined,
			AIEnabled:   deep,
		}
		if _, err := s.archive.SaveAnalysis(ctx, record); err != nil {
			logger.Warn("analysis: failed to archive result", "error", err)
		}
	}

	return &Response{
		Traditional:            trad,
		AIAnalysis:             aiAnalysis,
		CombinedInterpretation: combined,
	}, nil
}
