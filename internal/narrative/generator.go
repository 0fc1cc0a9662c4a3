// File path: internal/narrative/generator.go

// Package narrative produces the AI-sourced interpretation of a jafr
// analysis, with a deterministic offline fallback for every remote failure.
package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jafrlab/jafr/internal/common"
	"github.com/jafrlab/jafr/internal/jafr"
	"github.com/jafrlab/jafr/internal/llm"
)

// Analysis is the four-part narrative returned to the caller. Every field is
// always populated; a missing reply field is replaced with a placeholder
// naming it, never left empty.
type Analysis struct {
	SpiritualInterpretation string `json:"spiritualInterpretation"`
	NumericalInsights       string `json:"numericalInsights"`
	Guidance                string `json:"guidance"`
	EnergyAnalysis          string `json:"energyAnalysis"`
}

const systemPrompt = `أنت خبير متخصص في علم الجفر والأعداد والتحليل الروحي الإسلامي. مهمتك تقديم إجابات واضحة ومباشرة وصريحة للسائل بناءً على حساباته العددية وسؤاله المحدد.

المطلوب منك:
1. فهم السؤال المطروح بدقة والإجابة عليه مباشرة
2. ربط الحسابات العددية بالسؤال المحدد
3. تقديم إجابة صريحة ومفيدة عملياً
4. تجنب العموميات والكلام المبهم
5. التركيز على الجواب العملي للسؤال

يجب أن تكون إجابتك في صيغة JSON مع الحقول التالية:
{
  "spiritualInterpretation": "إجابة مباشرة وصريحة على السؤال المطروح مع التفسير الروحي",
  "numericalInsights": "كيف تدعم الأرقام المحسوبة الإجابة على السؤال",
  "guidance": "توجيه عملي محدد للسائل حول سؤاله",
  "energyAnalysis": "تحليل الطاقات المرتبطة بالسؤال والوضع الحالي"
}`

// Generator builds narratives via the configured provider and synthesizes
// fallbacks when the provider fails. A caller-supplied credential builds a
// one-off provider that takes precedence over the process default.
type Generator struct {
	cfg     llm.Config
	base    llm.Provider
	factory func(llm.Config) llm.Provider
}

func NewGenerator(cfg llm.Config) *Generator {
	return &Generator{cfg: cfg, base: llm.NewProvider(cfg), factory: llm.NewProvider}
}

// NewGeneratorWithProvider pins the base provider, bypassing environment
// selection. Used by tests.
func NewGeneratorWithProvider(cfg llm.Config, provider llm.Provider) *Generator {
	return &Generator{cfg: cfg, base: provider, factory: func(llm.Config) llm.Provider { return provider }}
}

// NewGeneratorWithFactory pins the base provider and the per-request
// provider factory. Used by tests.
func NewGeneratorWithFactory(cfg llm.Config, base llm.Provider, factory func(llm.Config) llm.Provider) *Generator {
	return &Generator{cfg: cfg, base: base, factory: factory}
}

func (g *Generator) provider(apiKey string) llm.Provider {
	if strings.TrimSpace(apiKey) != "" {
		return g.factory(g.cfg.WithKey(apiKey))
	}
	return g.base
}

// Generate asks the remote model to answer the stated question from the
// computed numbers. The call is attempted exactly once; transport failure,
// a non-object reply or empty content all route to the offline fallback.
func (g *Generator) Generate(ctx context.Context, name, mother, question string, trad jafr.Traditional, apiKey string) Analysis {
	logger := common.Logger()
	reply, err := g.provider(apiKey).Chat(ctx, llm.ChatRequest{
		Messages: []llm.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildAnalysisPrompt(name, mother, question, trad)},
		},
		Temperature: 0.3,
		MaxTokens:   3000,
		JSONObject:  true,
	})
	if err != nil {
		logger.Warn("narrative: analysis call failed, using fallback", "error", err)
		return Fallback(name, mother, question, trad)
	}
	// A reply of "null" unmarshals into a zero Analysis without error, so
	// require an actual JSON object before trusting the field-level decode.
	var object map[string]json.RawMessage
	if err := json.Unmarshal([]byte(reply), &object); err != nil || object == nil {
		logger.Warn("narrative: non-object analysis reply, using fallback", "error", err)
		return Fallback(name, mother, question, trad)
	}
	var analysis Analysis
	if err := json.Unmarshal([]byte(reply), &analysis); err != nil {
		logger.Warn("narrative: unparseable analysis reply, using fallback", "error", err)
		return Fallback(name, mother, question, trad)
	}
	fillMissingFields(&analysis)
	return analysis
}

// Disabled is the static narrative used when deep analysis is switched off;
// no network call is made.
func Disabled(trad jafr.Traditional) Analysis {
	return Analysis{
		SpiritualInterpretation: "تم تعطيل التحليل العميق. النتائج مبنية على الحسابات التقليدية فقط.",
		NumericalInsights:       fmt.Sprintf("القيمة الإجمالية %d تشير إلى معاني مهمة في حياتك.", trad.TotalValue),
		Guidance:                "استخدم النتائج العددية للتأمل والتفكير في سؤالك.",
		EnergyAnalysis:          "الطاقات محايدة، اعتمد على حدسك الشخصي.",
	}
}

func buildAnalysisPrompt(name, mother, question string, trad jafr.Traditional) string {
	return fmt.Sprintf(`السؤال المطروح: "%s"

بيانات السائل:
- الاسم: %s (قيمة عددية: %d)
- اسم الأم: %s (قيمة عددية: %d)
- قيمة السؤال العددية: %d
- المجموع الكلي: %d
- الرقم المختزل: %d

مطلوب منك:
1. فهم السؤال المطروح والإجابة عليه بوضوح وصراحة
2. ربط الأرقام المحسوبة بالإجابة على السؤال المحدد
3. تقديم توجيه عملي ومفيد للسائل
4. تجنب الكلام العام وركز على السؤال المطروح

أجب على السؤال مباشرة باستخدام علم الجفر والأرقام، واجعل إجابتك:
- صريحة ومباشرة
- مرتبطة بالسؤال المطروح
- مبنية على الحسابات العددية
- عملية ومفيدة للسائل
- متوافقة مع القيم الإسلامية

لا تعط إجابات عامة، بل أجب على السؤال المحدد الذي طرحه السائل.`,
		question,
		name, trad.Name.Total,
		mother, trad.Mother.Total,
		trad.Question.Total,
		trad.TotalValue,
		trad.ReducedValue,
	)
}

func fillMissingFields(analysis *Analysis) {
	if strings.TrimSpace(analysis.SpiritualInterpretation) == "" {
		analysis.SpiritualInterpretation = missingFieldText("spiritualInterpretation")
	}
	if strings.TrimSpace(analysis.NumericalInsights) == "" {
		analysis.NumericalInsights = missingFieldText("numericalInsights")
	}
	if strings.TrimSpace(analysis.Guidance) == "" {
		analysis.Guidance = missingFieldText("guidance")
	}
	if strings.TrimSpace(analysis.EnergyAnalysis) == "" {
		analysis.EnergyAnalysis = missingFieldText("energyAnalysis")
	}
}

func missingFieldText(field string) string {
	return fmt.Sprintf("تعذر الحصول على تحليل %s. يرجى المحاولة مرة أخرى.", field)
}
