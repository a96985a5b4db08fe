package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issuesOnly(tags ...string) EvaluatorResult {
	return EvaluatorResult{Issues: tags}
}

func TestBuildInterventionPlan_Empty(t *testing.T) {
	plan := BuildInterventionPlan(issuesOnly(), issuesOnly(), issuesOnly(), issuesOnly())
	assert.Empty(t, plan)
}

func TestBuildInterventionPlan_FixedOrder(t *testing.T) {
	// academic fires via grade_decline, attendance via its base tag; the
	// output must stay in rule-table order regardless of inputs
	plan := BuildInterventionPlan(
		issuesOnly(TagAttendance),
		issuesOnly(TagGradeDecline),
		issuesOnly(),
		issuesOnly(),
	)

	require.Len(t, plan, 2)
	assert.Equal(t, InterventionAcademicSupport, plan[0].Type)
	assert.Equal(t, PriorityHigh, plan[0].Priority)
	assert.Equal(t, InterventionAttendanceSupport, plan[1].Type)
	assert.Equal(t, PriorityHigh, plan[1].Priority)
}

func TestBuildInterventionPlan_OnlyNamedTagsTrigger(t *testing.T) {
	// failing_grades is an academic issue but not the tag the academic
	// rule matches on
	plan := BuildInterventionPlan(
		issuesOnly(TagAttendance),
		issuesOnly(TagFailingGrades),
		issuesOnly(),
		issuesOnly(),
	)

	require.Len(t, plan, 1)
	assert.Equal(t, InterventionAttendanceSupport, plan[0].Type)
}

func TestBuildInterventionPlan_BehavioralAndSocial(t *testing.T) {
	plan := BuildInterventionPlan(
		issuesOnly(),
		issuesOnly(),
		issuesOnly(TagDiscipline),
		issuesOnly(TagLimitedEngagement),
	)

	require.Len(t, plan, 2)
	assert.Equal(t, InterventionBehavioralSupport, plan[0].Type)
	assert.Equal(t, PriorityMedium, plan[0].Priority)
	assert.Equal(t, InterventionSocialSupport, plan[1].Type)
	assert.Equal(t, PriorityMedium, plan[1].Priority)
}

func TestBuildInterventionPlan_OneEntryPerCategory(t *testing.T) {
	// several attendance tags still yield a single attendance entry
	plan := BuildInterventionPlan(
		issuesOnly(TagAttendance, TagChronicAbsenteeism, TagTardiness),
		issuesOnly(),
		issuesOnly(),
		issuesOnly(),
	)

	require.Len(t, plan, 1)
	assert.Equal(t, InterventionAttendanceSupport, plan[0].Type)
	assert.NotEmpty(t, plan[0].Actions)
}
