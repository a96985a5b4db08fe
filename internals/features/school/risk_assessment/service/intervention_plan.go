// file: internals/features/school/risk_assessment/service/intervention_plan.go
package service

// Intervention priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

// Intervention types, in rule-table order.
const (
	InterventionAcademicSupport   = "academic_support"
	InterventionAttendanceSupport = "attendance_support"
	InterventionBehavioralSupport = "behavioral_support"
	InterventionSocialSupport     = "social_support"
)

// InterventionEntry is one recommended support action. The in-process
// representation stays typed; serialization to JSONB happens only at the
// persistence boundary.
type InterventionEntry struct {
	Type        string   `json:"type"`
	Priority    string   `json:"priority"`
	Description string   `json:"description"`
	Actions     []string `json:"actions"`
}

// BuildInterventionPlan maps the evaluators' issue tags to recommended
// interventions. Pure function; output order always follows the rule-table
// order below and each category emits at most one entry.
func BuildInterventionPlan(attendance, academic, behavioral, social EvaluatorResult) []InterventionEntry {
	plan := []InterventionEntry{}

	if hasIssue(academic, TagGradeDecline) {
		plan = append(plan, InterventionEntry{
			Type:        InterventionAcademicSupport,
			Priority:    PriorityHigh,
			Description: "Academic support for declining grade performance",
			Actions: []string{
				"Schedule tutoring sessions",
				"Notify subject teachers",
				"Create an academic improvement plan",
			},
		})
	}

	if hasIssue(attendance, TagAttendance) {
		plan = append(plan, InterventionEntry{
			Type:        InterventionAttendanceSupport,
			Priority:    PriorityHigh,
			Description: "Attendance support for low attendance rate",
			Actions: []string{
				"Contact parent/guardian",
				"Schedule an attendance conference",
				"Set up a daily check-in",
			},
		})
	}

	if hasIssue(behavioral, TagDiscipline) {
		plan = append(plan, InterventionEntry{
			Type:        InterventionBehavioralSupport,
			Priority:    PriorityMedium,
			Description: "Behavioral support for repeated discipline incidents",
			Actions: []string{
				"Refer to the school counselor",
				"Schedule a behavioral assessment",
				"Create a behavior support plan",
			},
		})
	}

	if hasIssue(social, TagLimitedEngagement) {
		plan = append(plan, InterventionEntry{
			Type:        InterventionSocialSupport,
			Priority:    PriorityMedium,
			Description: "Social support for limited school engagement",
			Actions: []string{
				"Encourage club or activity enrollment",
				"Schedule a counselor check-in",
				"Review family contact information",
			},
		})
	}

	return plan
}
