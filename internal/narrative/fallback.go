// File path: internal/narrative/fallback.go
package narrative

import (
	"fmt"
	"strings"

	"github.com/jafrlab/jafr/internal/jafr"
)

// topicProfile carries the canned phrases for one question topic.
type topicProfile struct {
	keywords        []string
	interpretation  string
	numericalAdvice string
	directAnswer    string
	practicalAdvice string
	subject         string
	energyReading   string
}

// topicProfiles is evaluated in order; the first profile whose keyword
// matches the question wins and the last entry, with no keywords, is the
// default. The order is part of the observable behavior.
var topicProfiles = []topicProfile{
	{
		keywords:        []string{"زواج", "زوج", "عريس"},
		interpretation:  "الارتباط والزواج",
		numericalAdvice: "التوقيت المناسب للخطوات الجادة في العلاقات",
		directAnswer:    "الصبر والدعاء مع اتخاذ الأسباب المناسبة",
		practicalAdvice: "ابحث عن الشخص المناسب واستشر أهل الخبرة.",
		subject:         "الزواج",
		energyReading:   "تشير إلى فرص إيجابية في المستقبل القريب",
	},
	{
		keywords:        []string{"عمل", "وظيف", "مهن"},
		interpretation:  "المسار المهني والعمل",
		numericalAdvice: "الوقت المناسب للتطوير المهني",
		directAnswer:    "التركيز على تطوير المهارات والسعي للفرص",
		practicalAdvice: "استثمر في تعلم مهارات جديدة وتوسيع شبكة علاقاتك المهنية.",
		subject:         "العمل",
		energyReading:   "تدعم النمو والتقدم المهني",
	},
	{
		keywords:        []string{"مال", "رزق", "ثرو"},
		interpretation:  "الرزق والحالة المالية",
		numericalAdvice: "إمكانية تحسن الوضع المالي",
		directAnswer:    "الاجتهاد في العمل مع التوكل على الله",
		practicalAdvice: "وضع خطة مالية واضحة والادخار بانتظام.",
		subject:         "المال والرزق",
		energyReading:   "تشير إلى فرص للتحسن المالي",
	},
	{
		keywords:        []string{"صح", "مرض", "علاج"},
		interpretation:  "الصحة والعافية",
		numericalAdvice: "الاهتمام بالصحة الجسدية والنفسية",
		directAnswer:    "الالتزام بنمط حياة صحي والمتابعة الطبية",
		practicalAdvice: "اهتم بالتغذية السليمة والرياضة المنتظمة.",
		subject:         "الصحة",
		energyReading:   "تدعم التعافي والحفاظ على الصحة",
	},
	{
		interpretation:  "الموضوع المطروح",
		numericalAdvice: "النظر بعين الحكمة والصبر",
		directAnswer:    "التأني والاستخارة قبل اتخاذ القرارات المهمة",
		practicalAdvice: "استشر أهل الخبرة واطلب الهداية من الله.",
		subject:         "الأمر المسؤول عنه",
		energyReading:   "متوازنة وتدعو للتفكير العميق",
	},
}

type digitGuidance struct {
	meaning string
	insight string
	action  string
	timing  string
}

var digitGuidances = map[int]digitGuidance{
	1: {
		meaning: "بداية جديدة وقيادة",
		insight: "وقت للمبادرة والخطوات الجديدة",
		action:  "الثقة بالنفس واتخاذ زمام المبادرة",
		timing:  "مناسب",
	},
	2: {
		meaning: "التعاون والشراكة",
		insight: "أهمية العمل مع الآخرين",
		action:  "البحث عن الشراكات والتعاون",
		timing:  "يتطلب صبراً",
	},
	3: {
		meaning: "الإبداع والتواصل",
		insight: "فرص للتعبير والإبداع",
		action:  "استخدام المهارات الإبداعية",
		timing:  "مثمر للمشاريع الإبداعية",
	},
	4: {
		meaning: "النظام والاستقرار",
		insight: "الحاجة للتنظيم والعمل المنهجي",
		action:  "وضع خطط واضحة والالتزام بها",
		timing:  "يتطلب صبراً ومثابرة",
	},
	5: {
		meaning: "التغيير والحرية",
		insight: "وقت للتغييرات الإيجابية",
		action:  "الانفتاح على الفرص الجديدة",
		timing:  "مناسب للتغيير",
	},
	6: {
		meaning: "المسؤولية والانسجام",
		insight: "أهمية العائلة والعلاقات",
		action:  "الاهتمام بالعلاقات الأسرية",
		timing:  "مناسب للقرارات العائلية",
	},
	7: {
		meaning: "الحكمة والروحانية",
		insight: "وقت للتأمل والبحث عن المعنى",
		action:  "الاستعانة بالصلاة والتأمل",
		timing:  "يتطلب تفكيراً عميقاً",
	},
	8: {
		meaning: "القوة والإنجاز",
		insight: "فرص للنجاح المادي",
		action:  "التركيز على الأهداف الكبيرة",
		timing:  "مناسب للمشاريع الطموحة",
	},
	9: {
		meaning: "الاكتمال والخدمة",
		insight: "وقت لإنهاء المراحل وبداية جديدة",
		action:  "خدمة الآخرين والعطاء",
		timing:  "نهاية مرحلة وبداية أخرى",
	},
}

// classifyQuestion picks the first topic whose keyword occurs in the
// question; the default profile matches everything.
func classifyQuestion(question string) topicProfile {
	lowered := strings.ToLower(question)
	for _, profile := range topicProfiles {
		if len(profile.keywords) == 0 {
			return profile
		}
		for _, keyword := range profile.keywords {
			if strings.Contains(lowered, keyword) {
				return profile
			}
		}
	}
	return topicProfiles[len(topicProfiles)-1]
}

func guidanceFor(reduced int) digitGuidance {
	if guidance, ok := digitGuidances[reduced]; ok {
		return guidance
	}
	return digitGuidances[1]
}

// Fallback synthesizes the four narrative fields offline. The output is
// deterministic for identical inputs and every field is non-empty for any
// question text, including empty or non-Arabic text.
func Fallback(name, mother, question string, trad jafr.Traditional) Analysis {
	topic := classifyQuestion(question)
	guidance := guidanceFor(trad.ReducedValue)
	return Analysis{
		SpiritualInterpretation: fmt.Sprintf(
			"بخصوص سؤالك: \"%s\" - الحسابات العددية تُظهر أن اسمك \"%s\" بقيمة %d واسم أمك \"%s\" بقيمة %d يشكلان توليفة عددية تدعم %s. الرقم المختزل %d يشير إلى %s.",
			question, name, trad.Name.Total, mother, trad.Mother.Total,
			topic.interpretation, trad.ReducedValue, guidance.meaning),
		NumericalInsights: fmt.Sprintf(
			"المجموع الكلي %d والرقم المختزل %d يدلان على %s. هذا الرقم في سياق سؤالك يعني %s.",
			trad.TotalValue, trad.ReducedValue, guidance.insight, topic.numericalAdvice),
		Guidance: fmt.Sprintf(
			"الإجابة على سؤالك تكمن في %s. الأرقام تنصحك بـ%s. %s",
			topic.directAnswer, guidance.action, topic.practicalAdvice),
		EnergyAnalysis: fmt.Sprintf(
			"الطاقة المحيطة بـ%s %s. الوقت الحالي %s لاتخاذ خطوات في هذا الاتجاه.",
			topic.subject, topic.energyReading, guidance.timing),
	}
}
