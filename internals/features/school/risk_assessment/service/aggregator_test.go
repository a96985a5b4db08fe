package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	model "schoolsis_backend/internals/features/school/risk_assessment/model"
)

func TestOverallScore_WeightedSum(t *testing.T) {
	// 0.35*40 + 0.40*35 = 14 + 14 = 28
	assert.Equal(t, 28.0, OverallScore(40, 35, 0, 0))

	// all maxed stays at 100
	assert.Equal(t, 100.0, OverallScore(100, 100, 100, 100))

	assert.Equal(t, 0.0, OverallScore(0, 0, 0, 0))
}

func TestOverallScore_RoundsToTwoDecimals(t *testing.T) {
	// 0.35*33.33 = 11.6655 → 11.67
	assert.Equal(t, 11.67, OverallScore(33.33, 0, 0, 0))
}

func TestRiskLevelFor_StepFunction(t *testing.T) {
	cases := map[float64]string{
		0:   model.RiskLevelLow,
		39:  model.RiskLevelLow,
		40:  model.RiskLevelMedium,
		59:  model.RiskLevelMedium,
		60:  model.RiskLevelHigh,
		79:  model.RiskLevelHigh,
		80:  model.RiskLevelCritical,
		100: model.RiskLevelCritical,
	}
	for score, want := range cases {
		assert.Equal(t, want, RiskLevelFor(score), "score %.0f", score)
	}
}

func TestInterventionRequired_HighLevelAlone(t *testing.T) {
	empty := EvaluatorResult{Issues: []string{}}

	// overall exactly at the high threshold with zero issues still requires intervention
	assert.True(t, InterventionRequired(RiskLevelFor(60), empty, empty))
	assert.True(t, InterventionRequired(model.RiskLevelCritical, empty, empty))
	assert.False(t, InterventionRequired(model.RiskLevelLow, empty, empty))
	assert.False(t, InterventionRequired(model.RiskLevelMedium, empty, empty))
}

func TestInterventionRequired_IssueListsForceIt(t *testing.T) {
	empty := EvaluatorResult{Issues: []string{}}
	withAttendance := EvaluatorResult{Issues: []string{TagAttendance}}
	withAcademic := EvaluatorResult{Issues: []string{TagFailingGrades}}

	assert.True(t, InterventionRequired(model.RiskLevelLow, withAttendance, empty))
	assert.True(t, InterventionRequired(model.RiskLevelLow, empty, withAcademic))
}

func TestWeightsSumToOne(t *testing.T) {
	assert.InDelta(t, 1.0, WeightAttendance+WeightAcademic+WeightBehavioral+WeightSocial, 1e-9)
}
