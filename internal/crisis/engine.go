// Package crisis turns one text entry's classifier output into a
// crisis/emergency verdict.
package crisis

import (
	"strings"

	"github.com/itsAryan-devop09/mindspace-backend2/internal/classifier"
)

// DefaultPhrases is the built-in crisis phrase set, used when the config does
// not override it. Matching is case-insensitive substring.
var DefaultPhrases = []string{
	"hopeless",
	"worthless",
	"suicidal",
	"kill myself",
	"give up",
	"end it all",
	"can't go on",
	"no purpose",
	"don't want to be here",
	"everything is meaningless",
	"better off without me",
	"i want to disappear",
	"i hate living",
	"i'm done with life",
	"i want it to end",
}

// DefaultNegativeLabels are the risk labels that can trigger a model-based
// crisis when confidence exceeds the threshold.
var DefaultNegativeLabels = []string{"sadness", "anger", "fear"}

// DefaultRiskThreshold is the confidence cutoff for a model-based crisis.
// Strictly greater-than: a confidence of exactly this value does not trigger.
const DefaultRiskThreshold = 0.85

// Decision is the verdict for a single entry. The two flags are independent:
// a code word triggers emergency escalation whether or not a crisis was detected.
type Decision struct {
	Crisis           bool
	TriggerEmergency bool
}

// Engine combines keyword matching, model-based risk thresholds and the user's
// emergency code word. It holds no per-request state and is safe for concurrent use.
type Engine struct {
	phrases        []string
	negativeLabels map[string]struct{}
	riskThreshold  float64
}

// NewEngine builds an engine from the configured phrase set, negative label set
// and risk threshold. Empty slices fall back to the defaults.
func NewEngine(phrases []string, negativeLabels []string, riskThreshold float64) *Engine {
	if len(phrases) == 0 {
		phrases = DefaultPhrases
	}
	if len(negativeLabels) == 0 {
		negativeLabels = DefaultNegativeLabels
	}
	if riskThreshold <= 0 {
		riskThreshold = DefaultRiskThreshold
	}

	lowered := make([]string, len(phrases))
	for i, p := range phrases {
		lowered[i] = strings.ToLower(p)
	}

	labels := make(map[string]struct{}, len(negativeLabels))
	for _, l := range negativeLabels {
		labels[strings.ToLower(l)] = struct{}{}
	}

	return &Engine{
		phrases:        lowered,
		negativeLabels: labels,
		riskThreshold:  riskThreshold,
	}
}

// Evaluate produces the crisis/emergency verdict for one entry. Either signal
// alone is sufficient for a crisis; the policy favors false positives over
// missed crises. codeWord is the user's configured code word, lowercased, or
// empty when no settings exist — an empty code word never triggers.
func (e *Engine) Evaluate(text string, risk classifier.Result, codeWord string) Decision {
	lowered := strings.ToLower(text)

	keywordCrisis := false
	if lowered != "" {
		for _, phrase := range e.phrases {
			if strings.Contains(lowered, phrase) {
				keywordCrisis = true
				break
			}
		}
	}

	_, negative := e.negativeLabels[strings.ToLower(risk.Label)]
	modelCrisis := negative && risk.Confidence > e.riskThreshold

	triggerEmergency := codeWord != "" && strings.Contains(lowered, strings.ToLower(codeWord))

	return Decision{
		Crisis:           keywordCrisis || modelCrisis,
		TriggerEmergency: triggerEmergency,
	}
}
