// File path: internal/narrative/combined.go
package narrative

import (
	"context"
	"fmt"
	"strings"

	"github.com/jafrlab/jafr/internal/common"
	"github.com/jafrlab/jafr/internal/jafr"
	"github.com/jafrlab/jafr/internal/llm"
)

// Combined asks the remote model to merge the traditional results with the
// narrative into one HTML block. A single attempt; any failure returns the
// canned summary so the caller never sees a degraded state.
func (g *Generator) Combined(ctx context.Context, trad jafr.Traditional, analysis Analysis, apiKey string) string {
	logger := common.Logger()
	reply, err := g.provider(apiKey).Chat(ctx, llm.ChatRequest{
		Messages:    []llm.Message{{Role: "user", Content: buildCombinedPrompt(trad, analysis)}},
		Temperature: 0.6,
		MaxTokens:   1500,
	})
	if err != nil || strings.TrimSpace(reply) == "" {
		logger.Warn("narrative: combined call failed, using fallback", "error", err)
		return fallbackCombined
	}
	return reply
}

func buildCombinedPrompt(trad jafr.Traditional, analysis Analysis) string {
	return fmt.Sprintf(`بناء على النتائج التقليدية والتحليل الذكي التالي، قم بإنشاء تفسير متكامل بصيغة HTML:

النتائج التقليدية:
- القيمة الإجمالية: %d
- القيمة المختزلة: %d
- حجم الوفق: %d×%d

التحليل الذكي:
- التفسير الروحي: %s
- تحليل الأرقام: %s
- التوجيه: %s
- تحليل الطاقات: %s

اكتب تفسيراً متكاملاً بصيغة HTML يدمج بين النتائج التقليدية والتحليل الذكي، مع التركيز على:
1. الخلاصة المتكاملة
2. التوصيات العملية
3. استخدام العناصر HTML المناسبة (div, h4, p, ul, li) مع الفئات المناسبة

يجب أن يكون التفسير باللغة العربية ومناسب للثقافة الإسلامية.`,
		trad.TotalValue, trad.ReducedValue, trad.WafqSize, trad.WafqSize,
		analysis.SpiritualInterpretation,
		analysis.NumericalInsights,
		analysis.Guidance,
		analysis.EnergyAnalysis,
	)
}

const fallbackCombined = `<div class="space-y-6">
  <div class="bg-white rounded-xl p-6 border border-purple-200">
    <h4 class="font-bold text-purple-800 mb-3 flex items-center">
      <i class="fas fa-infinity mr-2"></i>
      الخلاصة المتكاملة
    </h4>
    <p class="text-gray-700 leading-relaxed">
      من خلال دمج النتائج التقليدية مع التحليل الذكي، نجد أن الإجابة على سؤالك تكمن في التوازن بين الصبر والعمل.
      القيم العددية تدعم هذا التوجه، والتحليل الذكي يؤكد على أهمية الوقت الحالي كفترة نمو وتطور روحي.
    </p>
  </div>

  <div class="bg-white rounded-xl p-6 border border-purple-200">
    <h4 class="font-bold text-purple-800 mb-3 flex items-center">
      <i class="fas fa-lightbulb mr-2"></i>
      التوصيات العملية
    </h4>
    <ul class="space-y-2 text-gray-700">
      <li class="flex items-start">
        <i class="fas fa-check-circle text-green-500 mt-1 mr-2"></i>
        استخدم الوفق المحسوب للتأمل والتركيز الروحي يومياً
      </li>
      <li class="flex items-start">
        <i class="fas fa-check-circle text-green-500 mt-1 mr-2"></i>
        اعتمد على الصبر والحكمة في اتخاذ القرارات المهمة
      </li>
      <li class="flex items-start">
        <i class="fas fa-check-circle text-green-500 mt-1 mr-2"></i>
        ابحث عن التوازن بين الجوانب المادية والروحية في حياتك
      </li>
      <li class="flex items-start">
        <i class="fas fa-check-circle text-green-500 mt-1 mr-2"></i>
        استمر في الدعاء والتوكل على الله في جميع أمورك
      </li>
    </ul>
  </div>
</div>`
