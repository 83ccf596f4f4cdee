package evaluator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// leading list markers and emphasis around a label, e.g. "- **Feedback:**"
	labelDecoration = regexp.MustCompile(`^(?:[-*•]\s+|\d+[.)]\s+|#+\s*)?[*_]*`)
	scorePattern    = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:/|out of)\s*(\d+(?:\.\d+)?)`)
	bareScore       = regexp.MustCompile(`^(\d+(?:\.\d+)?)`)
	riskPattern     = regexp.MustCompile(`(?i)^\W*(low|medium|high)\b\W*(.*)$`)
)

var labels = []string{ClarityLabel, FeedbackLabel, HallucinationLabel, SuggestionsLabel}

// Parse reads the labeled evaluation answer into an Assessment.
// Labels are matched case-insensitively at the start of a line; lines without a
// label continue the previous field. Fields missing from raw keep their placeholders.
func Parse(raw string) (*Assessment, error) {
	fields := make(map[string]string, len(labels))
	var current string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if label, value, ok := matchLabel(line); ok {
			current = label
			fields[label] = value
			continue
		}
		if current != "" {
			fields[current] = strings.TrimSpace(fields[current] + "\n" + line)
		}
	}

	ret := NewAssessment()
	if v := fields[ClarityLabel]; v != "" {
		ret.ClarityScore = v
		if score, max, ok := parseScore(v); ok {
			ret.Clarity = score
			ret.ClarityMax = max
			ret.Grade = gradeFor(score, max)
		}
	}
	if v := fields[FeedbackLabel]; v != "" {
		ret.Feedback = v
	}
	if v := fields[HallucinationLabel]; v != "" {
		ret.HallucinationRisk, ret.RiskReason = parseRisk(v)
	}
	if v := fields[SuggestionsLabel]; v != "" {
		ret.Suggestions = v
	}
	if err := assessmentValidator().Struct(ret); err != nil {
		return ret, fmt.Errorf("evaluator: invalid assessment: %w", err)
	}
	return ret, nil
}

func matchLabel(line string) (string, string, bool) {
	stripped := labelDecoration.ReplaceAllString(line, "")
	lower := strings.ToLower(stripped)
	for _, label := range labels {
		if !strings.HasPrefix(lower, strings.ToLower(label)) {
			continue
		}
		rest := strings.TrimLeft(stripped[len(label):], "*_ ")
		if !strings.HasPrefix(rest, ":") {
			continue
		}
		value := strings.TrimLeft(rest[1:], "*_ ")
		return label, strings.TrimSpace(value), true
	}
	return "", "", false
}

func parseScore(v string) (float64, float64, bool) {
	if m := scorePattern.FindStringSubmatch(v); m != nil {
		score, err1 := strconv.ParseFloat(m[1], 64)
		max, err2 := strconv.ParseFloat(m[2], 64)
		if err1 != nil || err2 != nil || max <= 0 || score > max {
			return 0, 0, false
		}
		return score, max, true
	}
	if m := bareScore.FindStringSubmatch(strings.TrimSpace(v)); m != nil {
		score, err := strconv.ParseFloat(m[1], 64)
		if err != nil || score > DefaultClarityScale {
			return 0, 0, false
		}
		return score, DefaultClarityScale, true
	}
	return 0, 0, false
}

func parseRisk(v string) (Risk, string) {
	m := riskPattern.FindStringSubmatch(v)
	if m == nil {
		return RiskUnknown, v
	}
	level := strings.ToUpper(m[1][:1]) + strings.ToLower(m[1][1:])
	reason := strings.TrimSpace(strings.TrimLeft(m[2], "-–:; "))
	return level, reason
}
