package evaluator

import "encoding/json"

// Risk is the estimated hallucination risk of a prompt
type Risk = string

const (
	RiskLow     Risk = "Low"
	RiskMedium  Risk = "Medium"
	RiskHigh    Risk = "High"
	RiskUnknown Risk = "N/A"
)

// Placeholder values of fields the model did not report
const (
	NoScore       = "N/A"
	NoFeedback    = "No feedback yet."
	NoSuggestions = "No suggestions."
)

// DefaultClarityScale is the scale clarity scores are requested on
const DefaultClarityScale = 10

// Assessment is the structured result of a prompt evaluation
type Assessment struct {
	// ClarityScore is the raw score text, e.g. "8/10"
	ClarityScore string `json:"clarity_score"`
	// Clarity is the parsed score, zero when ClarityScore is not numeric
	Clarity float64 `json:"clarity" validate:"gte=0,ltefield=ClarityMax"`
	// ClarityMax is the scale of Clarity
	ClarityMax float64 `json:"clarity_max" validate:"gt=0"`
	// Feedback points on ambiguity and areas for improvement
	Feedback string `json:"feedback" validate:"required"`
	// HallucinationRisk is Low, Medium, High or N/A
	HallucinationRisk Risk `json:"hallucination_risk" validate:"oneof=Low Medium High N/A"`
	// RiskReason explains HallucinationRisk
	RiskReason string `json:"risk_reason,omitempty"`
	// Suggestions are specific actionable enhancements
	Suggestions string `json:"suggestions" validate:"required"`
	// Grade is the letter grade derived from the clarity score
	Grade string `json:"grade,omitempty" validate:"omitempty,validGrade"`
}

// NewAssessment returns an Assessment holding the "not reported" placeholders
func NewAssessment() *Assessment {
	return &Assessment{
		ClarityScore:      NoScore,
		ClarityMax:        DefaultClarityScale,
		Feedback:          NoFeedback,
		HallucinationRisk: RiskUnknown,
		Suggestions:       NoSuggestions,
	}
}

// Scored reports whether the model returned a numeric clarity score
func (a Assessment) Scored() bool {
	return a.Grade != ""
}

func (a Assessment) String() string {
	bs, _ := json.Marshal(a)
	return string(bs)
}
