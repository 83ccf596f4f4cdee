package evaluator

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Rating defines the interface for the rating systems used to judge an assessment.
type Rating interface {
	// IsGoalMet determines if the quality goal has been achieved
	IsGoalMet() bool
	// String returns a string representation of the rating
	String() string
}

// NumericalRating implements Rating using a numerical score system.
// It evaluates prompts on a scale from 0 to Max.
type NumericalRating struct {
	Score     float64 // Current score
	Max       float64 // Maximum possible score
	Threshold float64 // Fraction of Max required, 0.9 when unset
}

// IsGoalMet checks if the numerical score meets the goal.
func (nr NumericalRating) IsGoalMet() bool {
	threshold := nr.Threshold
	if threshold <= 0 {
		threshold = 0.9
	}
	return nr.Max > 0 && nr.Score >= nr.Max*threshold
}

// String formats the numerical rating as a string in the form "score/max".
func (nr NumericalRating) String() string {
	return fmt.Sprintf("%.1f/%.1f", nr.Score, nr.Max)
}

// LetterRating implements Rating using a letter grade system.
type LetterRating struct {
	Grade string // Letter grade (A+, A, B, etc.)
}

// IsGoalMet returns true for A- or better
func (lr LetterRating) IsGoalMet() bool {
	v, ok := gradeValues[lr.Grade]
	return ok && v >= gradeValues["A-"]
}

// String returns the letter grade as a string.
func (lr LetterRating) String() string {
	return lr.Grade
}

var gradeValues = map[string]float64{
	"A+": 4.3, "A": 4.0, "A-": 3.7,
	"B+": 3.3, "B": 3.0, "B-": 2.7,
	"C+": 2.3, "C": 2.0, "C-": 1.7,
	"D+": 1.3, "D": 1.0, "D-": 0.7,
	"F": 0.0,
}

// validGrade validates if a given grade string is a valid letter grade.
func validGrade(fl validator.FieldLevel) bool {
	_, ok := gradeValues[fl.Field().String()]
	return ok
}

// normalizeGrade converts a letter grade or a numeric score on a 0-20 scale
// to a letter grade.
//
// Conversion rules:
// - A+: >= 19/20 (95%)
// - A:  >= 17/20 (85%)
// - A-: >= 15/20 (75%)
// - B+: >= 13/20 (65%)
// - B:  >= 11/20 (55%)
// - B-: >= 9/20  (45%)
// - C+: >= 7/20  (35%)
// - C:  >= 5/20  (25%)
// - C-: >= 3/20  (15%)
// - D+: >= 2/20  (10%)
// - D:  >= 1/20  (5%)
// - F:  < 1/20   (<5%)
func normalizeGrade(grade string) (string, error) {
	grade = strings.ToUpper(strings.TrimSpace(grade))
	if _, ok := gradeValues[grade]; ok {
		return grade, nil
	}
	numericGrade, err := strconv.ParseFloat(grade, 64)
	if err != nil {
		return "", err
	}
	switch {
	case numericGrade >= 19:
		return "A+", nil
	case numericGrade >= 17:
		return "A", nil
	case numericGrade >= 15:
		return "A-", nil
	case numericGrade >= 13:
		return "B+", nil
	case numericGrade >= 11:
		return "B", nil
	case numericGrade >= 9:
		return "B-", nil
	case numericGrade >= 7:
		return "C+", nil
	case numericGrade >= 5:
		return "C", nil
	case numericGrade >= 3:
		return "C-", nil
	case numericGrade >= 2:
		return "D+", nil
	case numericGrade >= 1:
		return "D", nil
	default:
		return "F", nil
	}
}

// gradeFor scales score out of max to 0-20 and returns its letter grade
func gradeFor(score float64, max float64) string {
	if max <= 0 {
		return ""
	}
	grade, _ := normalizeGrade(strconv.FormatFloat(score*20/max, 'f', -1, 64))
	return grade
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func assessmentValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		if err := validate.RegisterValidation("validGrade", validGrade); err != nil {
			panic(fmt.Sprintf("register validation validGrade: %v", err))
		}
	})
	return validate
}
