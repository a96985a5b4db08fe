// file: internals/features/school/risk_assessment/service/evaluator.go
package service

import "math"

// Evaluator confidence. Informational passthrough only: it never adjusts
// scores and never gates persistence.
const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

// Issue tags emitted by the evaluators. Downstream consumers (issue flags,
// intervention plan rules) match on these exact strings.
const (
	TagAttendance          = "attendance"
	TagChronicAbsenteeism  = "chronic_absenteeism"
	TagTardiness           = "tardiness"
	TagDecliningAttendance = "declining_attendance"
	TagCriticalAttendance  = "critical_attendance"

	TagFailingGrades      = "failing_grades"
	TagLowGrades          = "low_grades"
	TagGradeDecline       = "grade_decline"
	TagCriticalGrades     = "critical_grades"
	TagMissingAssignments = "missing_assignments"
	TagLateAssignments    = "late_assignments"
	TagUnstableGrades     = "unstable_grades"

	TagFrequentDiscipline = "frequent_discipline"
	TagDiscipline         = "discipline"
	TagMajorDiscipline    = "major_discipline"
	TagChronicDiscipline  = "chronic_discipline"

	TagLimitedEngagement     = "limited_engagement"
	TagMissingEmergencyInfo  = "missing_emergency_info"
	TagMedicalSocialConcerns = "medical_social_concerns"
	TagNoContactInfo         = "no_contact_info"
)

// EvaluatorResult is the transient output of one evaluator run. It is built
// fresh on every call and never cached. Issue order is insertion order and
// is meaningful for display.
type EvaluatorResult struct {
	Score      float64        `json:"score"`
	Issues     []string       `json:"issues"`
	Confidence string         `json:"confidence"`
	Details    map[string]any `json:"details"`
}

func hasIssue(r EvaluatorResult, tag string) bool {
	for _, t := range r.Issues {
		if t == tag {
			return true
		}
	}
	return false
}

// clampScore bounds a sub-score to [0,100].
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// round2 rounds to 2 decimals, the precision persisted for scores.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// errorResult is the shared failure fallback: evaluators never abort the
// assessment, they degrade to a zero-score low-confidence result carrying
// the error text for diagnostics.
func errorResult(err error) EvaluatorResult {
	return EvaluatorResult{
		Score:      0,
		Issues:     []string{},
		Confidence: ConfidenceLow,
		Details:    map[string]any{"error": err.Error()},
	}
}
